package dct

// Namespace is the base IRI prefix for Dublin Core terms.
const Namespace = "http://purl.org/dc/terms/"

const (
	// Title is the name given to a resource.
	Title = Namespace + "title"

	// Description is an account of a resource.
	Description = Namespace + "description"
)
