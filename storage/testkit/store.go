// Package testkit holds the conformance suite every storage.Store runs.
package testkit

import (
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xdao.co/rinchi/cidutil"
	"xdao.co/rinchi/rinchi"
	"xdao.co/rinchi/storage"
)

// NewStore constructs a fresh, empty store for one subtest.
// The returned store MUST be isolated from other tests.
type NewStore func(t *testing.T) storage.Store

// Document returns a well-formed encoded reaction for use in store tests.
func Document(t *testing.T, line string) *rinchi.Document {
	t.Helper()
	doc, err := rinchi.NewDocument([]byte(line))
	require.NoError(t, err)
	return doc
}

func RunStoreConformance(t *testing.T, newStore NewStore) {
	t.Helper()

	t.Run("PutGetRoundTrip", func(t *testing.T) {
		s := newStore(t)
		want := Document(t, "RInChI=1.00.1S/C2H4O/c1-2-3/h2H,1H3<>C2H6O/c1-2-3/h3H,2H2,1H3<>\n")

		id, err := s.Put(want)
		require.NoError(t, err)
		assert.Equal(t, want.CID, id.String())

		got, err := s.Get(id)
		require.NoError(t, err)
		assert.Equal(t, want.Bytes, got.Bytes)
		assert.Equal(t, want.CID, got.CID)
		require.NoError(t, cidutil.Verify(id, got.Bytes))
	})

	t.Run("PutIdempotent", func(t *testing.T) {
		s := newStore(t)
		doc := Document(t, "RInChI=1.00.1S/<><>\n")

		id1, err := s.Put(doc)
		require.NoError(t, err)
		id2, err := s.Put(doc)
		require.NoError(t, err)
		assert.True(t, id1.Equals(id2), "Put not idempotent: %s vs %s", id1, id2)
	})

	t.Run("HasAndNotFound", func(t *testing.T) {
		s := newStore(t)
		doc := Document(t, "RInChI=1.00.1S/H2O/h1H2<><>\n")
		id, err := cidutil.Parse(doc.CID)
		require.NoError(t, err)

		assert.False(t, s.Has(id))
		_, err = s.Get(id)
		assert.True(t, storage.IsNotFound(err), "Get missing: got err=%v want ErrNotFound", err)

		_, err = s.Put(doc)
		require.NoError(t, err)
		assert.True(t, s.Has(id))
	})

	t.Run("RejectUndefCID", func(t *testing.T) {
		s := newStore(t)
		var undef cid.Cid
		assert.False(t, s.Has(undef))
		_, err := s.Get(undef)
		assert.Error(t, err)
	})

	t.Run("RejectForeignCID", func(t *testing.T) {
		s := newStore(t)
		doc := Document(t, "RInChI=1.00.1S/<><>\n")
		doc.CID = cidutil.String([]byte("something else"))
		_, err := s.Put(doc)
		assert.ErrorIs(t, err, storage.ErrCIDMismatch)
	})

	t.Run("RejectMalformed", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Put(&rinchi.Document{Bytes: []byte("not a reaction")})
		assert.Error(t, err)
		_, err = s.Put(nil)
		assert.Error(t, err)
	})
}
