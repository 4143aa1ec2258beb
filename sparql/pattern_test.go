package sparql

import (
	"strings"
	"testing"
)

func TestPatternRendersPrefixEnvelope(t *testing.T) {
	p := Pattern{
		Where: []TriplePattern{
			{S: V("scheme"), P: I(RDFType), O: I("http://www.w3.org/2004/02/skos/core#ConceptScheme")},
		},
	}

	q := p.String()

	for _, want := range []string{
		"PREFIX dct: <http://purl.org/dc/terms/>",
		"PREFIX skos: <http://www.w3.org/2004/02/skos/core#>",
		"PREFIX vann: <http://purl.org/vocab/vann/>",
		"SELECT * WHERE {",
		"?scheme a skos:ConceptScheme .",
	} {
		if !strings.Contains(q, want) {
			t.Errorf("query missing %q:\n%s", want, q)
		}
	}
}

func TestPatternRendersOptionalUnion(t *testing.T) {
	s := I("http://example.org/S")
	p := Pattern{
		Where: []TriplePattern{
			{S: s, P: I("http://purl.org/dc/terms/title"), O: V("title")},
		},
		Optional: []OptionalGroup{
			{Branches: [][]TriplePattern{
				{{S: s, P: I("http://www.w3.org/2004/02/skos/core#notation"), O: V("notation")}},
				{{S: s, P: I("http://purl.org/vocab/vann/preferredNamespacePrefix"), O: V("notation")}},
			}},
			{Branches: [][]TriplePattern{
				{{S: s, P: I("http://purl.org/dc/terms/description"), O: V("description")}},
			}},
		},
	}

	q := p.String()

	if !strings.Contains(q, "<http://example.org/S> dct:title ?title .") {
		t.Errorf("missing required pattern:\n%s", q)
	}
	if !strings.Contains(q, "OPTIONAL { { <http://example.org/S> skos:notation ?notation } UNION { <http://example.org/S> vann:preferredNamespacePrefix ?notation } }") {
		t.Errorf("missing union optional:\n%s", q)
	}
	if !strings.Contains(q, "OPTIONAL { <http://example.org/S> dct:description ?description }") {
		t.Errorf("missing plain optional:\n%s", q)
	}
}

func TestRenderNodeCompactsKnownNamespaces(t *testing.T) {
	tests := []struct {
		name string
		node Node
		pred bool
		want string
	}{
		{"variable", V("x"), false, "?x"},
		{"rdf type keyword", I(RDFType), true, "a"},
		{"rdf type as object", I(RDFType), false, "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type>"},
		{"skos term", I("http://www.w3.org/2004/02/skos/core#prefLabel"), true, "skos:prefLabel"},
		{"dct term", I("http://purl.org/dc/terms/title"), true, "dct:title"},
		{"unknown namespace", I("http://example.org/S"), false, "<http://example.org/S>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderNode(tt.node, tt.pred)
			if got != tt.want {
				t.Errorf("renderNode = %q, want %q", got, tt.want)
			}
		})
	}
}
