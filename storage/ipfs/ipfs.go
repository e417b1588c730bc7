// Package ipfs archives encoded reactions as raw blocks in a local IPFS
// repository through the Kubo "ipfs" CLI.
//
// Block CIDs are CIDv1 raw + sha2-256, the same identifiers cidutil
// computes, so a reaction archived here can be fetched from any IPFS node by
// the CID the encoder reported. The store operates offline on the local
// repository and does not need a running daemon.
package ipfs

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ipfs/go-cid"
	"go.uber.org/zap"

	"xdao.co/rinchi/cidutil"
	"xdao.co/rinchi/rinchi"
	"xdao.co/rinchi/storage"
)

// Store is not authoritative: every block read back is re-hashed.
type Store struct {
	bin string
	env []string
	log *zap.Logger
}

var _ storage.Store = (*Store)(nil)

type Options struct {
	// Bin is the path to the ipfs binary. If empty, "ipfs" is used.
	Bin string
	// Env optionally overrides the command environment (e.g. to set IPFS_PATH).
	// If nil, the process environment is used.
	Env []string
	// Logger receives one debug event per command. nil disables logging.
	Logger *zap.Logger
}

func New(opts Options) *Store {
	bin := opts.Bin
	if bin == "" {
		bin = "ipfs"
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{bin: bin, env: opts.Env, log: log}
}

func (s *Store) Put(doc *rinchi.Document) (cid.Cid, error) {
	id, err := storage.Key(doc)
	if err != nil {
		return cid.Undef, err
	}

	// Explicit parameters keep the block CID equal to cidutil's.
	out, err := s.run(doc.Bytes,
		"block", "put",
		"--quiet",
		"--cid-codec=raw",
		"--mhtype=sha2-256",
		"--mhlen=32",
		"/dev/stdin",
	)
	if err != nil {
		return cid.Undef, err
	}

	got, err := cid.Decode(strings.TrimSpace(string(out)))
	if err != nil {
		return cid.Undef, fmt.Errorf("ipfs: unexpected block put output: %w", err)
	}
	if !got.Equals(id) {
		return cid.Undef, storage.ErrCIDMismatch
	}
	return id, nil
}

func (s *Store) Get(id cid.Cid) (*rinchi.Document, error) {
	if !id.Defined() {
		return nil, storage.ErrInvalidCID
	}

	out, err := s.run(nil, "block", "get", id.String())
	if err != nil {
		if isLikelyNotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	if err := cidutil.Verify(id, out); err != nil {
		return nil, storage.ErrCIDMismatch
	}
	return rinchi.NewDocument(out)
}

func (s *Store) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	_, err := s.run(nil, "block", "stat", "--offline", id.String())
	return err == nil
}

func (s *Store) run(stdin []byte, args ...string) ([]byte, error) {
	cmd := exec.Command(s.bin, args...)
	if s.env != nil {
		cmd.Env = s.env
	}
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	out, err := cmd.Output()
	s.log.Debug("ipfs", zap.Strings("args", args[:2]), zap.Error(err))
	if err == nil {
		return out, nil
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		msg := strings.TrimSpace(string(ee.Stderr))
		if msg == "" {
			return nil, fmt.Errorf("ipfs: %v", err)
		}
		return nil, fmt.Errorf("ipfs: %s", msg)
	}
	return nil, err
}

func isLikelyNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found")
}
