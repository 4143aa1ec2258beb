package sparql

import (
	"context"

	"github.com/knakk/rdf"
)

// Binding is one solution row of a query: a mapping from variable name
// (without the leading "?") to the bound term. Variables left unbound by
// an OPTIONAL group are absent from the map.
type Binding map[string]rdf.Term

// Literal returns the literal bound to the named variable, or ok=false if
// the variable is unbound or bound to a non-literal term.
func (b Binding) Literal(name string) (rdf.Literal, bool) {
	lit, ok := b[name].(rdf.Literal)
	return lit, ok
}

// IRI returns the IRI bound to the named variable, or ok=false if the
// variable is unbound or bound to a non-IRI term.
func (b Binding) IRI(name string) (rdf.IRI, bool) {
	iri, ok := b[name].(rdf.IRI)
	return iri, ok
}

// Client executes SELECT queries. Row order within a result is not
// guaranteed by any implementation; callers must fold rows with
// order-independent merges.
type Client interface {
	Select(ctx context.Context, p Pattern) ([]Binding, error)
}
