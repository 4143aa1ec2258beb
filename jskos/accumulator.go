package jskos

import (
	"log/slog"
	"strings"

	"github.com/knakk/rdf"
)

// DefaultLanguage is the fallback language tag applied to literals that
// carry none, when no other default is configured.
const DefaultLanguage = "en"

// URIRefField selects which URI-reference list of an entity a merge
// targets.
type URIRefField int

const (
	// FieldTopConcepts targets the scheme's top concept links, sorted by
	// URI at finalization.
	FieldTopConcepts URIRefField = iota

	// FieldNarrower targets a concept's narrower links, kept in first-seen
	// order.
	FieldNarrower
)

// Accumulator folds query result rows into entities. Every merge is a
// no-op when the term is absent (an OPTIONAL clause that did not bind) or
// of the wrong kind, deduplicates against the current entity state, and
// keeps the final state independent of row order.
type Accumulator struct {
	defaultLanguage string
	logger          *slog.Logger

	// CleanNote post-processes note values before merging. The default
	// cleaner trims every line and strips one pair of double quotes
	// wrapping the whole value, an escaping artifact of one known data
	// provider. Set to nil to merge note values verbatim.
	CleanNote func(string) string
}

// NewAccumulator creates an accumulator with the given default language
// tag. An empty tag falls back to DefaultLanguage.
func NewAccumulator(defaultLanguage string, logger *slog.Logger) *Accumulator {
	if defaultLanguage == "" {
		defaultLanguage = DefaultLanguage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Accumulator{
		defaultLanguage: defaultLanguage,
		logger:          logger,
		CleanNote:       CleanNote,
	}
}

// ResolveLiteral extracts the value and effective language tag of a
// literal. A missing tag resolves to the configured default, with a
// warning.
func (a *Accumulator) ResolveLiteral(lit rdf.Literal) (value, language string) {
	value = lit.String()
	language = lit.Lang()
	if language == "" {
		a.logger.Warn("missing language tag", "value", value, "default", a.defaultLanguage)
		language = a.defaultLanguage
	}
	return value, language
}

// MergeLabel folds a preferred label literal into the entity. Each
// language holds exactly one value; a second, different value for an
// already-populated language is discarded with a conflict warning, so the
// first writer wins regardless of row order within one language.
func (a *Accumulator) MergeLabel(e *Entity, term rdf.Term) {
	lit, ok := term.(rdf.Literal)
	if !ok {
		return
	}
	value, language := a.ResolveLiteral(lit)
	if existing, ok := e.PrefLabel[language]; ok {
		if existing != value {
			a.logger.Warn("conflicting prefLabel",
				"uri", e.URI, "language", language,
				"kept", existing, "discarded", value)
		}
		return
	}
	if e.PrefLabel == nil {
		e.PrefLabel = make(map[string]string)
	}
	e.PrefLabel[language] = value
}

// MergeNotation appends a notation literal if not already present.
// Notations are plain strings; no language resolution applies.
func (a *Accumulator) MergeNotation(e *Entity, term rdf.Term) {
	lit, ok := term.(rdf.Literal)
	if !ok {
		return
	}
	value := lit.String()
	if hasString(e.Notation, value) {
		return
	}
	e.Notation = append(e.Notation, value)
}

// MergeURIRef appends a URI reference to the selected field if no entry
// with that URI exists yet.
func (a *Accumulator) MergeURIRef(e *Entity, field URIRefField, term rdf.Term) {
	iri, ok := term.(rdf.IRI)
	if !ok {
		return
	}
	uri := iri.String()
	switch field {
	case FieldTopConcepts:
		if !hasRef(e.TopConcepts, uri) {
			e.TopConcepts = append(e.TopConcepts, Ref{URI: uri})
		}
	case FieldNarrower:
		if !hasRef(e.Narrower, uri) {
			e.Narrower = append(e.Narrower, Ref{URI: uri})
		}
	}
}

// MergeNote folds a note literal into the entity's definition map,
// appending to the language's list unless the cleaned value is already
// present.
func (a *Accumulator) MergeNote(e *Entity, term rdf.Term) {
	lit, ok := term.(rdf.Literal)
	if !ok {
		return
	}
	value, language := a.ResolveLiteral(lit)
	if a.CleanNote != nil {
		value = a.CleanNote(value)
	}
	if hasString(e.Definition[language], value) {
		return
	}
	if e.Definition == nil {
		e.Definition = make(map[string][]string)
	}
	e.Definition[language] = append(e.Definition[language], value)
}

// CleanNote trims leading and trailing whitespace from every line and
// strips a single pair of double quotes wrapping the entire value.
func CleanNote(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) &&
		!strings.Contains(s[1:len(s)-1], `"`) {
		s = s[1 : len(s)-1]
	}
	return s
}
