package parsers

import (
	"fmt"

	"github.com/samber/lo"

	"human/internal/errors"
)

// Result is the outcome of running one handler against one input
type Result struct {
	Format    string    `json:"format" yaml:"format"`
	Direction Direction `json:"direction" yaml:"direction"`
	Input     string    `json:"input" yaml:"input"`
	Output    string    `json:"output,omitempty" yaml:"output,omitempty"`
	Error     string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Registry is an ordered collection of handlers. Order is priority: the
// first handler whose predicate accepts an input wins.
type Registry struct {
	parsers []Parser
}

// NewRegistry creates a registry holding ps in the given order
func NewRegistry(ps ...Parser) *Registry {
	r := &Registry{}
	for _, p := range ps {
		r.Register(p)
	}
	return r
}

// DefaultRegistry returns the handlers human ships with. NumberGroup comes
// first so that a bare digit string is grouped, as the CLI promises.
func DefaultRegistry() *Registry {
	return NewRegistry(NewNumberGroup(), NewNumberWord(), NewSize(UnitsIEC))
}

// Register appends p to the registry. A handler with the same name replaces
// the existing one in place so priority is preserved.
func (r *Registry) Register(p Parser) {
	for i, existing := range r.parsers {
		if existing.Name() == p.Name() {
			r.parsers[i] = p
			return
		}
	}
	r.parsers = append(r.parsers, p)
}

// Parsers returns the registered handlers in priority order
func (r *Registry) Parsers() []Parser {
	out := make([]Parser, len(r.parsers))
	copy(out, r.parsers)
	return out
}

// Names returns the handler names in priority order
func (r *Registry) Names() []string {
	return lo.Map(r.parsers, func(p Parser, _ int) string { return p.Name() })
}

// Lookup finds a handler by name
func (r *Registry) Lookup(name string) (Parser, error) {
	p, ok := lo.Find(r.parsers, func(p Parser) bool { return p.Name() == name })
	if !ok {
		return nil, errors.NewHumanError(errors.UnknownFormat,
			fmt.Sprintf("unknown format '%s'", name), nil)
	}
	return p, nil
}

// Match returns the first handler that accepts s for direction d
func (r *Registry) Match(d Direction, s string) (Parser, bool) {
	return lo.Find(r.parsers, func(p Parser) bool { return CanParse(p, d, s) })
}

// Matches returns every handler that accepts s for direction d
func (r *Registry) Matches(d Direction, s string) []Parser {
	return lo.Filter(r.parsers, func(p Parser, _ int) bool { return CanParse(p, d, s) })
}

// Convert dispatches s to the first matching handler. When nothing matches
// it returns a NO_MATCH error, which callers treat as "no output".
func (r *Registry) Convert(d Direction, s string) (Result, error) {
	p, ok := r.Match(d, s)
	if !ok {
		return Result{Direction: d, Input: s}, errors.NewHumanError(errors.NoMatch,
			"no format accepts this input", nil).WithInput(s)
	}
	return Run(p, d, s)
}

// ConvertAll runs every matching handler against s. Per-handler failures are
// recorded on the Result rather than aborting the rest.
func (r *Registry) ConvertAll(d Direction, s string) []Result {
	matches := r.Matches(d, s)
	results := make([]Result, 0, len(matches))
	for _, p := range matches {
		res, err := Run(p, d, s)
		if err != nil {
			res.Error = err.Error()
		}
		results = append(results, res)
	}
	return results
}

// Run applies a specific handler in direction d
func Run(p Parser, d Direction, s string) (Result, error) {
	res := Result{Format: p.Name(), Direction: d, Input: s}
	out, err := Do(p, d, s)
	if err != nil {
		return res, err
	}
	res.Output = out
	return res, nil
}
