package model

import (
	"github.com/ipfs/go-cid"
	"go.uber.org/zap"

	"xdao.co/rinchi/cidutil"
	"xdao.co/rinchi/compliance"
	"xdao.co/rinchi/rinchi"
	"xdao.co/rinchi/storage"
)

type EncodeOptions struct {
	Identifier  rinchi.Identifier
	Parallelism int
	Logger      *zap.Logger

	// Store, when set, archives every successfully encoded reaction.
	Store storage.Store
}

// Encode runs the encoder on req and returns its JSON view. Errors are
// always *CodedError.
func Encode(req EncodeRequest, opts EncodeOptions) (*EncodeResult, error) {
	if opts.Identifier == nil {
		return nil, NewError(ErrInvalidRequest, "missing identifier")
	}
	mode, err := toCompliance(req.Compliance)
	if err != nil {
		return nil, err
	}

	enc := rinchi.NewEncoder(opts.Identifier, rinchi.Options{
		Mode:        mode,
		Parallelism: opts.Parallelism,
		Logger:      opts.Logger,
	})
	l, err := enc.Layout(req.reaction())
	if err != nil {
		return nil, AsCodedError(err)
	}
	doc, err := rinchi.NewDocument([]byte(l.String()))
	if err != nil {
		return nil, AsCodedError(err)
	}
	if opts.Store != nil {
		if _, err := opts.Store.Put(doc); err != nil {
			return nil, NewError(ErrInternal, "archive: "+err.Error())
		}
	}

	return &EncodeResult{
		RInChI:         doc.String(),
		CID:            doc.CID,
		ReactantsFirst: l.ReactantsFirst,
		Reactants:      nonNil(l.Reactants),
		Products:       nonNil(l.Products),
		Agents:         nonNil(l.Agents),
	}, nil
}

// Lookup fetches an archived reaction by its CID string.
func Lookup(s storage.Store, id string) (*Archived, error) {
	if s == nil {
		return nil, NewError(ErrInvalidRequest, "missing store")
	}
	c, err := cidutil.Parse(id)
	if err != nil {
		return nil, NewError(ErrInvalidRequest, "invalid cid: "+err.Error())
	}
	return lookup(s, c)
}

func lookup(s storage.Store, c cid.Cid) (*Archived, error) {
	doc, err := s.Get(c)
	if err != nil {
		return nil, AsCodedError(err)
	}
	return &Archived{CID: doc.CID, RInChI: doc.String()}, nil
}

func (r EncodeRequest) reaction() rinchi.Reaction {
	return rinchi.Reaction{
		Reactants: molecules(r.Reactants),
		Products:  molecules(r.Products),
		Agents:    molecules(r.Agents),
	}
}

func molecules(in []string) []rinchi.Molecule {
	out := make([]rinchi.Molecule, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func toCompliance(m ComplianceMode) (compliance.Mode, error) {
	mode, err := compliance.ParseMode(string(m))
	if err != nil {
		return compliance.Permissive, NewError(ErrInvalidRequest, err.Error())
	}
	return mode, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
