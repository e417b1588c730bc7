package rinchi

import (
	"bytes"

	"xdao.co/rinchi/cidutil"
)

// Document is an encoded reaction together with its content identifier.
//
// Bytes are the exact encoded RInChI including the trailing LF. CID is an
// IPFS-compatible CIDv1 (raw + sha2-256) derived from Bytes.
type Document struct {
	Bytes []byte
	CID   string
}

// NewDocument wraps encoded RInChI bytes and computes their CID.
//
// It only checks the outer shape (header, one line, LF terminated); the
// groups themselves are not parsed.
func NewDocument(b []byte) (*Document, error) {
	if !bytes.HasPrefix(b, []byte(Header)) {
		return nil, newError(KindFormat, RuleMalformedDocument, "missing "+Header+" header")
	}
	if !bytes.HasSuffix(b, []byte(Terminator)) {
		return nil, newError(KindFormat, RuleMalformedDocument, "missing trailing newline")
	}
	if bytes.IndexByte(b, '\n') != len(b)-1 || bytes.IndexByte(b, '\r') >= 0 {
		return nil, newError(KindFormat, RuleMalformedDocument, "encoded reaction must be a single line")
	}
	id := cidutil.String(b)
	if id == "" {
		return nil, newError(KindInternal, RuleDocumentCIDFailure, "cid computation failed")
	}
	return &Document{Bytes: append([]byte(nil), b...), CID: id}, nil
}

// String returns the encoded reaction text.
func (d *Document) String() string {
	if d == nil {
		return ""
	}
	return string(d.Bytes)
}
