package convert

import "errors"

// Fatal conversion errors.
var (
	// ErrNoScheme is returned when the input contains no resource typed
	// skos:ConceptScheme and no scheme URI was configured.
	ErrNoScheme = errors.New("RDF contains no ConceptScheme")

	// ErrAmbiguousScheme is returned when several concept schemes exist
	// and none was configured; the wrapped message lists all candidates.
	ErrAmbiguousScheme = errors.New("multiple concept schemes found")

	// ErrSchemeIncomplete is returned when the resolved scheme has no
	// title binding.
	ErrSchemeIncomplete = errors.New("concept scheme not found or incomplete")
)
