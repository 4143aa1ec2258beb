package skos

// Namespace is the base IRI prefix for SKOS vocabulary terms.
const Namespace = "http://www.w3.org/2004/02/skos/core#"

// Class IRIs identify the entity types the converter produces.
const (
	// ClassConceptScheme represents a controlled vocabulary as a whole.
	ClassConceptScheme = Namespace + "ConceptScheme"

	// ClassConcept represents one entry within a concept scheme.
	ClassConcept = Namespace + "Concept"
)

// Property IRIs define the SKOS relations and attributes read from input.
const (
	// PrefLabel is the preferred lexical label, one per language.
	PrefLabel = Namespace + "prefLabel"

	// Notation is a typed code or short identifier for a resource.
	Notation = Namespace + "notation"

	// Narrower links a concept to a more specific concept.
	Narrower = Namespace + "narrower"

	// InScheme links a concept to the scheme it belongs to.
	InScheme = Namespace + "inScheme"

	// HasTopConcept links a scheme to its top-level concepts.
	HasTopConcept = Namespace + "hasTopConcept"
)
