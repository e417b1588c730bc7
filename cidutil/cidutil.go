// Package cidutil derives content identifiers for encoded reactions.
//
// Every identifier in this module is a CIDv1 using the "raw" multicodec and
// a sha2-256 multihash, so archived reactions can be moved into IPFS
// unchanged.
package cidutil

import (
	"errors"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

var (
	ErrUndefined = errors.New("cidutil: undefined cid")
	ErrMismatch  = errors.New("cidutil: cid does not match bytes")
)

// Sum returns the CIDv1 (raw + sha2-256) of data.
func Sum(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// String is Sum rendered in the default CIDv1 base (base32).
// It returns "" only if hashing fails, which sha2-256 with default length does not.
func String(data []byte) string {
	id, err := Sum(data)
	if err != nil {
		return ""
	}
	return id.String()
}

// Parse decodes s and rejects undefined identifiers.
func Parse(s string) (cid.Cid, error) {
	id, err := cid.Decode(s)
	if err != nil {
		return cid.Undef, err
	}
	if !id.Defined() {
		return cid.Undef, ErrUndefined
	}
	return id, nil
}

// Verify checks that id was derived from data.
func Verify(id cid.Cid, data []byte) error {
	if !id.Defined() {
		return ErrUndefined
	}
	got, err := Sum(data)
	if err != nil {
		return err
	}
	if !got.Equals(id) {
		return ErrMismatch
	}
	return nil
}
