package sparql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/skos2jskos/vocabulary/dct"
	"github.com/c360studio/skos2jskos/vocabulary/skos"
	"github.com/c360studio/skos2jskos/vocabulary/vann"
)

// RDFType is the rdf:type predicate IRI, rendered as the "a" keyword.
const RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// prefixes is the fixed namespace envelope wrapped around every query.
var prefixes = map[string]string{
	"dct":  dct.Namespace,
	"skos": skos.Namespace,
	"vann": vann.Namespace,
}

// Node is one position of a triple pattern: either a variable or a
// constant IRI. Exactly one of the two fields is set.
type Node struct {
	Var string
	IRI string
}

// V creates a variable node. The name carries no leading "?".
func V(name string) Node { return Node{Var: name} }

// I creates a constant IRI node.
func I(iri string) Node { return Node{IRI: iri} }

// IsVar reports whether the node is a variable.
func (n Node) IsVar() bool { return n.Var != "" }

// TriplePattern is a single subject/predicate/object pattern.
type TriplePattern struct {
	S, P, O Node
}

// OptionalGroup is an OPTIONAL block. Multiple branches are joined with
// UNION, so a group can bind one variable from alternative predicates.
type OptionalGroup struct {
	Branches [][]TriplePattern
}

// Pattern is the basic graph pattern of one SELECT query: required triple
// patterns followed by optional groups.
type Pattern struct {
	Where    []TriplePattern
	Optional []OptionalGroup
}

// String renders the full SELECT query: the fixed prefix envelope, a
// SELECT * projection, and the pattern body.
func (p Pattern) String() string {
	var sb strings.Builder

	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "PREFIX %s: <%s>\n", name, prefixes[name])
	}

	sb.WriteString("SELECT * WHERE {\n")
	for _, tp := range p.Where {
		sb.WriteString("  ")
		writeTriplePattern(&sb, tp)
		sb.WriteString(" .\n")
	}
	for _, group := range p.Optional {
		sb.WriteString("  OPTIONAL { ")
		for i, branch := range group.Branches {
			if i > 0 {
				sb.WriteString(" UNION ")
			}
			if len(group.Branches) > 1 {
				sb.WriteString("{ ")
			}
			for j, tp := range branch {
				if j > 0 {
					sb.WriteString(" . ")
				}
				writeTriplePattern(&sb, tp)
			}
			if len(group.Branches) > 1 {
				sb.WriteString(" }")
			}
		}
		sb.WriteString(" }\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

func writeTriplePattern(sb *strings.Builder, tp TriplePattern) {
	sb.WriteString(renderNode(tp.S, false))
	sb.WriteString(" ")
	sb.WriteString(renderNode(tp.P, true))
	sb.WriteString(" ")
	sb.WriteString(renderNode(tp.O, false))
}

// renderNode writes a node in SPARQL syntax, compacting known namespaces
// to their prefixed form.
func renderNode(n Node, predicate bool) string {
	if n.IsVar() {
		return "?" + n.Var
	}
	if predicate && n.IRI == RDFType {
		return "a"
	}
	for name, ns := range prefixes {
		if local, ok := strings.CutPrefix(n.IRI, ns); ok && local != "" && !strings.ContainsAny(local, "/#") {
			return name + ":" + local
		}
	}
	return "<" + n.IRI + ">"
}
