package convert

import (
	"github.com/c360studio/skos2jskos/sparql"
	"github.com/c360studio/skos2jskos/vocabulary/dct"
	"github.com/c360studio/skos2jskos/vocabulary/skos"
	"github.com/c360studio/skos2jskos/vocabulary/vann"
)

// schemesQuery finds all resources typed as concept schemes.
func schemesQuery() sparql.Pattern {
	return sparql.Pattern{
		Where: []sparql.TriplePattern{
			{S: sparql.V("scheme"), P: sparql.I(sparql.RDFType), O: sparql.I(skos.ClassConceptScheme)},
		},
	}
}

// schemeMetadataQuery binds the scheme's required title plus optional
// notation (or VANN namespace prefix) and description.
func schemeMetadataQuery(schemeURI string) sparql.Pattern {
	s := sparql.I(schemeURI)
	return sparql.Pattern{
		Where: []sparql.TriplePattern{
			{S: s, P: sparql.I(dct.Title), O: sparql.V("title")},
		},
		Optional: []sparql.OptionalGroup{
			{Branches: [][]sparql.TriplePattern{
				{{S: s, P: sparql.I(skos.Notation), O: sparql.V("notation")}},
				{{S: s, P: sparql.I(vann.PreferredNamespacePrefix), O: sparql.V("notation")}},
			}},
			{Branches: [][]sparql.TriplePattern{
				{{S: s, P: sparql.I(dct.Description), O: sparql.V("description")}},
			}},
		},
	}
}

// topConceptsQuery binds the scheme's top concept links.
func topConceptsQuery(schemeURI string) sparql.Pattern {
	return sparql.Pattern{
		Where: []sparql.TriplePattern{
			{S: sparql.I(schemeURI), P: sparql.I(skos.HasTopConcept), O: sparql.V("topConcept")},
		},
	}
}

// conceptsQuery binds every concept in the scheme, left-joined with its
// optional label, notation, and narrower links.
func conceptsQuery(schemeURI string) sparql.Pattern {
	c := sparql.V("concept")
	return sparql.Pattern{
		Where: []sparql.TriplePattern{
			{S: c, P: sparql.I(skos.InScheme), O: sparql.I(schemeURI)},
		},
		Optional: []sparql.OptionalGroup{
			{Branches: [][]sparql.TriplePattern{
				{{S: c, P: sparql.I(skos.PrefLabel), O: sparql.V("prefLabel")}},
			}},
			{Branches: [][]sparql.TriplePattern{
				{{S: c, P: sparql.I(skos.Notation), O: sparql.V("notation")}},
			}},
			{Branches: [][]sparql.TriplePattern{
				{{S: c, P: sparql.I(skos.Narrower), O: sparql.V("narrower")}},
			}},
		},
	}
}
