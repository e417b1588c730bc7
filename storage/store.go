// Package storage archives encoded reactions by content identifier.
package storage

import (
	"github.com/ipfs/go-cid"

	"xdao.co/rinchi/rinchi"
)

// Store is a content-addressed archive of encoded reactions.
//
// Contract:
// - Put MUST be idempotent.
// - Stored documents MUST be immutable.
// - The key MUST be the CID of the document bytes, recomputed by the store.
// - Get MUST return ErrNotFound when the CID is absent.
type Store interface {
	Put(doc *rinchi.Document) (cid.Cid, error)
	Get(id cid.Cid) (*rinchi.Document, error)
	Has(id cid.Cid) bool
}
