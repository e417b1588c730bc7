package storage

import (
	"github.com/ipfs/go-cid"

	"xdao.co/rinchi/cidutil"
	"xdao.co/rinchi/rinchi"
)

// Key checks that doc holds a well-formed encoded reaction and returns the
// CID recomputed from its bytes. A non-empty doc.CID must agree with it.
// Stores call Key before writing.
func Key(doc *rinchi.Document) (cid.Cid, error) {
	if doc == nil {
		return cid.Undef, ErrNilDocument
	}
	checked, err := rinchi.NewDocument(doc.Bytes)
	if err != nil {
		return cid.Undef, err
	}
	if doc.CID != "" && doc.CID != checked.CID {
		return cid.Undef, ErrCIDMismatch
	}
	id, err := cidutil.Parse(checked.CID)
	if err != nil {
		return cid.Undef, ErrInvalidCID
	}
	return id, nil
}
