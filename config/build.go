package config

import (
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/uniformity/completion"
	"github.com/katalvlaran/uniformity/laws"
	"github.com/katalvlaran/uniformity/rel"
	"github.com/katalvlaran/uniformity/set"
	"github.com/katalvlaran/uniformity/uniform"
)

// Registry holds the spaces and completions built from a Document, by name.
type Registry struct {
	spaces          map[string]*uniform.Space[string]
	completions     map[string]*completion.Package[string, string]
	sources         map[string]string // completion name -> source space name
	spaceNames      []string
	completionNames []string
}

// Build constructs every space, then every completion, in document order.
// A nil logger disables logging.
func (d *Document) Build(log *zap.Logger) (*Registry, error) {
	if log == nil {
		log = zap.NewNop()
	}
	uopts := []uniform.Option{uniform.WithLogger(log)}
	if d.Fuel > 0 {
		uopts = append(uopts, uniform.WithFuel(d.Fuel))
	}

	r := &Registry{
		spaces:      make(map[string]*uniform.Space[string], len(d.Spaces)),
		completions: make(map[string]*completion.Package[string, string], len(d.Completions)),
		sources:     make(map[string]string, len(d.Completions)),
	}
	for _, s := range d.Spaces {
		if _, dup := r.spaces[s.Name]; dup {
			return nil, fmt.Errorf("%w: space %q", ErrDuplicateName, s.Name)
		}
		u, err := buildSpace(s, uopts)
		if err != nil {
			return nil, fmt.Errorf("config: space %q: %w", s.Name, err)
		}
		log.Debug("config: space built", zap.String("space", s.Name), zap.Int("entourages", u.BasisLen()))
		r.spaces[s.Name] = u
		r.spaceNames = append(r.spaceNames, s.Name)
	}
	for _, c := range d.Completions {
		if _, dup := r.completions[c.Name]; dup {
			return nil, fmt.Errorf("%w: completion %q", ErrDuplicateName, c.Name)
		}
		pkg, err := r.buildCompletion(c, log)
		if err != nil {
			return nil, fmt.Errorf("config: completion %q: %w", c.Name, err)
		}
		r.completions[c.Name] = pkg
		r.sources[c.Name] = c.Source
		r.completionNames = append(r.completionNames, c.Name)
	}

	return r, nil
}

func buildSpace(s SpaceSpec, opts []uniform.Option) (*uniform.Space[string], error) {
	carrier := set.Of(s.Points...)
	if carrier.Len() != len(s.Points) {
		return nil, fmt.Errorf("%w: repeated point", ErrDuplicateName)
	}

	switch s.Kind {
	case KindDiscrete:
		return uniform.Discrete(carrier, opts...), nil
	case KindIndiscrete:
		return uniform.Indiscrete(carrier, opts...), nil
	case KindBasis:
		basis, err := relations(s, carrier)
		if err != nil {
			return nil, err
		}
		return uniform.FromBasis(carrier, slices.Values(basis), opts...)
	case KindMetric:
		dist, err := distance(s)
		if err != nil {
			return nil, err
		}
		r0 := s.Radius
		if r0 == 0 {
			r0 = 1
		}
		if !(r0 > 0) || math.IsInf(r0, 1) {
			return nil, fmt.Errorf("%w: radius %g", ErrMalformed, s.Radius)
		}
		return uniform.FromMetric(carrier, dist, uniform.Halving(r0), opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
}

// relations turns the entourage lists into relations, closing them as asked.
func relations(s SpaceSpec, carrier set.Finite[string]) ([]rel.Rel[string], error) {
	out := make([]rel.Rel[string], 0, len(s.Entourages))
	for i, e := range s.Entourages {
		var pairs []set.Pair[string, string]
		for _, p := range e {
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: entourage #%d: pair %v", ErrMalformed, i, p)
			}
			for _, x := range p {
				if !carrier.Contains(x) {
					return nil, fmt.Errorf("%w: entourage #%d: %q", ErrUnknownPoint, i, x)
				}
			}
			pairs = append(pairs, set.P(p[0], p[1]))
			if s.Symmetric {
				pairs = append(pairs, set.P(p[1], p[0]))
			}
		}
		if s.Reflexive {
			for x := range carrier.All() {
				pairs = append(pairs, set.P(x, x))
			}
		}
		out = append(out, set.Of(pairs...))
	}

	return out, nil
}

// distance reads the square distance table.
func distance(s SpaceSpec) (func(a, b string) float64, error) {
	n := len(s.Points)
	if len(s.Distances) != n {
		return nil, fmt.Errorf("%w: %d distance rows for %d points", ErrMalformed, len(s.Distances), n)
	}
	for i, row := range s.Distances {
		if len(row) != n {
			return nil, fmt.Errorf("%w: distance row %d has %d columns", ErrMalformed, i, len(row))
		}
	}
	index := make(map[string]int, n)
	for i, p := range s.Points {
		index[p] = i
	}

	return func(a, b string) float64 { return s.Distances[index[a]][index[b]] }, nil
}

func (r *Registry) buildCompletion(c CompletionSpec, log *zap.Logger) (*completion.Package[string, string], error) {
	src, err := r.Space(c.Source)
	if err != nil {
		return nil, err
	}
	dst, err := r.Space(c.Target)
	if err != nil {
		return nil, err
	}
	for x := range src.Carrier().All() {
		y, ok := c.Embed[x]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no image", ErrUnknownPoint, x)
		}
		if !dst.Carrier().Contains(y) {
			return nil, fmt.Errorf("%w: %q is not in %q", ErrUnknownPoint, y, c.Target)
		}
	}
	for x := range c.Embed {
		if !src.Carrier().Contains(x) {
			return nil, fmt.Errorf("%w: %q is not in %q", ErrUnknownPoint, x, c.Source)
		}
	}

	target, err := completion.CarrierTarget(dst)
	if err != nil {
		return nil, err
	}
	table := c.Embed

	return completion.New(src, target, func(x string) string { return table[x] }, completion.WithLogger(log))
}

// Space returns the named space or ErrUnknownSpace.
func (r *Registry) Space(name string) (*uniform.Space[string], error) {
	u, ok := r.spaces[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
	}

	return u, nil
}

// Completion returns the named completion or ErrUnknownCompletion.
func (r *Registry) Completion(name string) (*completion.Package[string, string], error) {
	p, ok := r.completions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompletion, name)
	}

	return p, nil
}

// Source returns the source space name of a completion, "" if unknown.
func (r *Registry) Source(completionName string) string { return r.sources[completionName] }

// SpaceNames lists the spaces in document order.
func (r *Registry) SpaceNames() []string { return slices.Clone(r.spaceNames) }

// CompletionNames lists the completions in document order.
func (r *Registry) CompletionNames() []string { return slices.Clone(r.completionNames) }

// Checks returns the law battery of every space and completion.
func (r *Registry) Checks() []laws.Check {
	var out []laws.Check
	for _, name := range r.spaceNames {
		out = append(out, laws.SpaceChecks(name, r.spaces[name])...)
	}
	for _, name := range r.completionNames {
		out = append(out, laws.CompletionChecks(name, r.completions[name])...)
	}

	return out
}
