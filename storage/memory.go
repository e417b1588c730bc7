package storage

import (
	"bytes"
	"sync"

	"github.com/ipfs/go-cid"

	"xdao.co/rinchi/rinchi"
)

// Memory is an in-process Store. The zero value is ready to use.
type Memory struct {
	mu   sync.RWMutex
	docs map[cid.Cid][]byte
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Put(doc *rinchi.Document) (cid.Cid, error) {
	id, err := Key(doc)
	if err != nil {
		return cid.Undef, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.docs[id]; ok {
		if !bytes.Equal(existing, doc.Bytes) {
			return cid.Undef, ErrImmutable
		}
		return id, nil
	}
	if m.docs == nil {
		m.docs = make(map[cid.Cid][]byte)
	}
	m.docs[id] = append([]byte(nil), doc.Bytes...)
	return id, nil
}

func (m *Memory) Get(id cid.Cid) (*rinchi.Document, error) {
	if !id.Defined() {
		return nil, ErrInvalidCID
	}
	m.mu.RLock()
	b, ok := m.docs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return rinchi.NewDocument(b)
}

func (m *Memory) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.docs[id]
	return ok
}

// Len reports how many documents are held.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}
