package sparql

import (
	"context"

	"github.com/knakk/rdf"

	"github.com/c360studio/skos2jskos/store"
)

// StoreClient evaluates query patterns against an in-memory triple store.
// It implements the subset of SPARQL the converter issues: basic graph
// patterns joined by shared variables, plus OPTIONAL groups whose branches
// are alternated with UNION.
type StoreClient struct {
	store *store.Store
}

// NewStoreClient creates a client over the given store.
func NewStoreClient(s *store.Store) *StoreClient {
	return &StoreClient{store: s}
}

// Select evaluates the pattern and returns all solution rows.
func (c *StoreClient) Select(ctx context.Context, p Pattern) ([]Binding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := []Binding{{}}
	for _, tp := range p.Where {
		rows = c.extend(rows, tp)
	}

	for _, group := range p.Optional {
		var next []Binding
		for _, row := range rows {
			var matches []Binding
			for _, branch := range group.Branches {
				branchRows := []Binding{row}
				for _, tp := range branch {
					branchRows = c.extend(branchRows, tp)
				}
				matches = append(matches, branchRows...)
			}
			if len(matches) == 0 {
				// OPTIONAL keeps the row with its variables unbound.
				next = append(next, row)
				continue
			}
			next = append(next, matches...)
		}
		rows = next
	}

	return rows, nil
}

// extend joins each row against all triples matching the pattern under
// that row's bindings.
func (c *StoreClient) extend(rows []Binding, tp TriplePattern) []Binding {
	var out []Binding
	for _, row := range rows {
		subj := resolveNode(tp.S, row)
		pred := resolveNode(tp.P, row)
		obj := resolveNode(tp.O, row)

		for _, t := range c.store.Match(subj, pred, obj) {
			next := row.clone()
			bindNode(next, tp.S, t.Subj)
			bindNode(next, tp.P, t.Pred)
			bindNode(next, tp.O, t.Obj)
			out = append(out, next)
		}
	}
	return out
}

// resolveNode turns a pattern node into a concrete term for matching:
// constants and already-bound variables become terms, unbound variables
// become nil wildcards.
func resolveNode(n Node, row Binding) rdf.Term {
	if n.IsVar() {
		if t, ok := row[n.Var]; ok {
			return t
		}
		return nil
	}
	iri, err := rdf.NewIRI(n.IRI)
	if err != nil {
		return nil
	}
	return iri
}

// bindNode records the matched term for an unbound variable node.
func bindNode(row Binding, n Node, t rdf.Term) {
	if !n.IsVar() {
		return
	}
	if _, ok := row[n.Var]; !ok {
		row[n.Var] = t
	}
}

func (b Binding) clone() Binding {
	out := make(Binding, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
