package rinchi

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"xdao.co/rinchi/compliance"
)

// Options configures an Encoder. The zero value is a sequential,
// permissive, silent encoder.
type Options struct {
	// Mode selects how strictly input is checked. Strict mode rejects empty
	// reactions and identifier bodies containing reserved separators.
	Mode compliance.Mode

	// Parallelism bounds concurrent Identify calls. Values <= 1 identify
	// molecules one at a time in input order.
	Parallelism int

	// Logger receives debug events. nil means no logging.
	Logger *zap.Logger
}

// Encoder turns reactions into RInChI strings using one Identifier.
//
// An Encoder holds no per-call state and is safe for concurrent use when
// its Identifier is.
type Encoder struct {
	id   Identifier
	opts Options
	log  *zap.Logger
}

// NewEncoder returns an Encoder backed by id.
func NewEncoder(id Identifier, opts Options) *Encoder {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Encoder{id: id, opts: opts, log: log}
}

// Encode is a convenience for NewEncoder(id, Options{}).Encode(r).
func Encode(id Identifier, r Reaction) (string, error) {
	return NewEncoder(id, Options{}).Encode(r)
}

// Layout is the canonical form of a reaction just before rendering.
// All three groups are sorted.
type Layout struct {
	Reactants      []string
	Products       []string
	Agents         []string
	ReactantsFirst bool
}

// String renders the layout.
func (l *Layout) String() string {
	if l.ReactantsFirst {
		return Render(l.Reactants, l.Products, l.Agents)
	}
	return Render(l.Products, l.Reactants, l.Agents)
}

// Encode returns the RInChI string for r, terminated by a single LF.
//
// Any failure aborts the whole call; no partial output is returned.
func (e *Encoder) Encode(r Reaction) (string, error) {
	l, err := e.Layout(r)
	if err != nil {
		return "", err
	}
	return l.String(), nil
}

// EncodeDocument encodes r and derives the content identifier of the result.
func (e *Encoder) EncodeDocument(r Reaction) (*Document, error) {
	s, err := e.Encode(r)
	if err != nil {
		return nil, err
	}
	doc, err := NewDocument([]byte(s))
	if err != nil {
		return nil, err
	}
	e.log.Debug("encoded reaction", zap.String("cid", doc.CID), zap.Int("molecules", r.Len()))
	return doc, nil
}

// Layout identifies, groups and sorts every molecule of r and resolves the
// direction, without rendering.
func (e *Encoder) Layout(r Reaction) (*Layout, error) {
	if e == nil || e.id == nil {
		return nil, newError(KindInternal, RuleMissingIdentifier, "nil Identifier")
	}
	if r.Len() == 0 && e.opts.Mode == compliance.Strict {
		return nil, newError(KindEmptyReaction, RuleEmptyReaction, "reaction has no molecules")
	}

	ss := slots(r)
	bodies, err := e.identifyAll(ss)
	if err != nil {
		return nil, err
	}

	var groups [3][]string
	for i, s := range ss {
		groups[s.role] = append(groups[s.role], bodies[i])
	}
	l := &Layout{
		Reactants: SortGroup(groups[Reactant]),
		Products:  SortGroup(groups[Product]),
		Agents:    SortGroup(groups[Agent]),
	}
	l.ReactantsFirst = ReactantsFirst(l.Reactants, l.Products)
	e.log.Debug("resolved direction",
		zap.Bool("reactants_first", l.ReactantsFirst),
		zap.Int("reactants", len(l.Reactants)),
		zap.Int("products", len(l.Products)),
		zap.Int("agents", len(l.Agents)),
	)
	return l, nil
}

type slot struct {
	role  Role
	index int
	m     Molecule
}

// slots flattens r in input order: reactants, products, agents.
func slots(r Reaction) []slot {
	out := make([]slot, 0, r.Len())
	for role, ms := range [][]Molecule{r.Reactants, r.Products, r.Agents} {
		for i, m := range ms {
			out = append(out, slot{role: Role(role), index: i, m: m})
		}
	}
	return out
}

// identifyAll extracts one body per slot. The error returned is always the
// first failure in input order, whether or not the calls ran concurrently.
func (e *Encoder) identifyAll(ss []slot) ([]string, error) {
	bodies := make([]string, len(ss))
	errs := make([]*Error, len(ss))

	if e.opts.Parallelism > 1 && len(ss) > 1 {
		var g errgroup.Group
		g.SetLimit(e.opts.Parallelism)
		for i := range ss {
			i := i
			g.Go(func() error {
				bodies[i], errs[i] = e.extract(ss[i])
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range ss {
			bodies[i], errs[i] = e.extract(ss[i])
			if errs[i] != nil {
				break
			}
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return bodies, nil
}

func (e *Encoder) extract(s slot) (string, *Error) {
	body, err := extractBody(e.id, s.m)
	if err != nil {
		e.log.Debug("identify failed", zap.Stringer("role", s.role), zap.Int("index", s.index), zap.String("rule", err.RuleID))
		return "", err.at(s.role, s.index)
	}
	if e.opts.Mode == compliance.Strict {
		if err := checkReserved(body); err != nil {
			return "", err.at(s.role, s.index)
		}
	}
	e.log.Debug("identified molecule", zap.Stringer("role", s.role), zap.Int("index", s.index))
	return body, nil
}
