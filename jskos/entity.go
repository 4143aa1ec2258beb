package jskos

import (
	"sort"

	"github.com/c360studio/skos2jskos/vocabulary/skos"
)

// Context is the JSKOS context URL carried by exported scheme documents.
const Context = "https://gbv.github.io/jskos/context.json"

// Ref is a bare URI reference to another entity.
type Ref struct {
	URI string `json:"uri"`
}

// Entity is one JSKOS record, either a concept scheme or a concept.
// Fields are declared in canonical key order so the marshalled document
// has lexicographically sorted keys without post-processing; map values
// are sorted by encoding/json itself.
type Entity struct {
	Context     string              `json:"@context,omitempty"`
	Definition  map[string][]string `json:"definition,omitempty"`
	InScheme    []string            `json:"inScheme,omitempty"`
	Narrower    []Ref               `json:"narrower,omitempty"`
	Notation    []string            `json:"notation,omitempty"`
	PrefLabel   map[string]string   `json:"prefLabel,omitempty"`
	TopConcepts []Ref               `json:"topConcepts,omitempty"`
	Type        []string            `json:"type"`
	URI         string              `json:"uri"`
}

// NewScheme creates an empty concept scheme entity for the given URI.
func NewScheme(uri string) *Entity {
	return &Entity{
		Context: Context,
		Type:    []string{skos.ClassConceptScheme},
		URI:     uri,
	}
}

// NewConcept creates an empty concept entity belonging to the given scheme.
func NewConcept(uri, schemeURI string) *Entity {
	return &Entity{
		InScheme: []string{schemeURI},
		Type:     []string{skos.ClassConcept},
		URI:      uri,
	}
}

// Finalize puts the entity into export form. Top concept references are
// sorted by URI for reproducible output; narrower references keep their
// first-seen order.
func (e *Entity) Finalize() {
	sort.Slice(e.TopConcepts, func(i, j int) bool {
		return e.TopConcepts[i].URI < e.TopConcepts[j].URI
	})
}

// hasRef reports whether refs already contains the URI.
func hasRef(refs []Ref, uri string) bool {
	for _, r := range refs {
		if r.URI == uri {
			return true
		}
	}
	return false
}

// hasString reports whether values already contains v.
func hasString(values []string, v string) bool {
	for _, have := range values {
		if have == v {
			return true
		}
	}
	return false
}
