// Package store provides an in-memory RDF triple store for graphs loaded
// from local files or remote documents. It holds the full triple multiset
// and answers simple pattern matches; query planning and joins live in the
// sparql package.
package store

import (
	"fmt"
	"io"

	"github.com/knakk/rdf"
)

// Store is an append-only collection of RDF triples. It is not safe for
// concurrent use; the converter runs a single synchronous pass.
type Store struct {
	triples []rdf.Triple
}

// New creates an empty triple store.
func New() *Store {
	return &Store{}
}

// Add appends a triple to the store. Exact duplicates are dropped so that
// repeated statements across source files do not inflate query results.
func (s *Store) Add(t rdf.Triple) {
	for _, have := range s.triples {
		if TermEqual(have.Subj, t.Subj) && TermEqual(have.Pred, t.Pred) && TermEqual(have.Obj, t.Obj) {
			return
		}
	}
	s.triples = append(s.triples, t)
}

// Load decodes triples from r in the given serialization format and adds
// them to the store. It returns the number of triples read.
func (s *Store) Load(r io.Reader, format rdf.Format) (int, error) {
	dec := rdf.NewTripleDecoder(r, format)
	count := 0
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("decode triple: %w", err)
		}
		s.Add(t)
		count++
	}
	return count, nil
}

// Len returns the number of distinct triples in the store.
func (s *Store) Len() int {
	return len(s.triples)
}

// Match returns all triples matching the given subject, predicate, and
// object. A nil term is a wildcard.
func (s *Store) Match(subj, pred, obj rdf.Term) []rdf.Triple {
	var out []rdf.Triple
	for _, t := range s.triples {
		if subj != nil && !TermEqual(t.Subj, subj) {
			continue
		}
		if pred != nil && !TermEqual(t.Pred, pred) {
			continue
		}
		if obj != nil && !TermEqual(t.Obj, obj) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TermEqual reports whether two RDF terms are the same node. Terms of
// different kinds never compare equal, even when their string forms match
// (an IRI is not the literal spelling the same characters).
func TermEqual(a, b rdf.Term) bool {
	switch at := a.(type) {
	case rdf.IRI:
		bt, ok := b.(rdf.IRI)
		return ok && at.String() == bt.String()
	case rdf.Literal:
		bt, ok := b.(rdf.Literal)
		return ok && at.String() == bt.String() && at.Lang() == bt.Lang() &&
			at.DataType.String() == bt.DataType.String()
	case rdf.Blank:
		bt, ok := b.(rdf.Blank)
		return ok && at.String() == bt.String()
	}
	return false
}

