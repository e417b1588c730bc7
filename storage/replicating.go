package storage

import (
	"fmt"

	"github.com/ipfs/go-cid"

	"xdao.co/rinchi/rinchi"
)

// Named associates a Store with a stable name used in reports.
type Named struct {
	Name  string
	Store Store
}

// Replicating writes every document to all configured stores and reads
// from them in slice order.
//
// Callers MUST supply a fixed order; the first store holding a document
// answers Get.
type Replicating struct {
	Stores []Named
}

var _ Store = Replicating{}

// PutAll writes doc to every store and returns the canonical CID together
// with the CID each store reported. A store returning a different CID
// fails the write with ErrCIDMismatch.
func (r Replicating) PutAll(doc *rinchi.Document) (cid.Cid, map[string]cid.Cid, error) {
	want, err := Key(doc)
	if err != nil {
		return cid.Undef, nil, err
	}
	if len(r.Stores) == 0 {
		return cid.Undef, nil, fmt.Errorf("storage: Replicating has no stores")
	}

	out := make(map[string]cid.Cid, len(r.Stores))
	for _, s := range r.Stores {
		if s.Store == nil {
			return cid.Undef, nil, fmt.Errorf("storage: nil store %q", s.Name)
		}
		got, err := s.Store.Put(doc)
		if err != nil {
			return cid.Undef, out, fmt.Errorf("storage: %s: %w", s.Name, err)
		}
		out[s.Name] = got
		if !got.Equals(want) {
			return cid.Undef, out, ErrCIDMismatch
		}
	}
	return want, out, nil
}

func (r Replicating) Put(doc *rinchi.Document) (cid.Cid, error) {
	id, _, err := r.PutAll(doc)
	return id, err
}

func (r Replicating) Get(id cid.Cid) (*rinchi.Document, error) {
	if !id.Defined() {
		return nil, ErrInvalidCID
	}
	for _, s := range r.Stores {
		if s.Store == nil {
			continue
		}
		doc, err := s.Store.Get(id)
		if err == nil {
			return doc, nil
		}
		if IsNotFound(err) {
			continue
		}
		return nil, err
	}
	return nil, ErrNotFound
}

func (r Replicating) Has(id cid.Cid) bool {
	for _, s := range r.Stores {
		if s.Store != nil && s.Store.Has(id) {
			return true
		}
	}
	return false
}
