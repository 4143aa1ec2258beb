package jskos

import (
	"context"
	"log/slog"
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler captures log records so tests can assert on emitted
// warnings.
type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) warnings() []slog.Record {
	var out []slog.Record
	for _, r := range h.records {
		if r.Level == slog.LevelWarn {
			out = append(out, r)
		}
	}
	return out
}

func newTestAccumulator(t *testing.T, language string) (*Accumulator, *recordingHandler) {
	t.Helper()
	handler := &recordingHandler{}
	return NewAccumulator(language, slog.New(handler)), handler
}

func langLiteral(t *testing.T, value, lang string) rdf.Literal {
	t.Helper()
	lit, err := rdf.NewLangLiteral(value, lang)
	require.NoError(t, err)
	return lit
}

func plainLiteral(t *testing.T, value string) rdf.Literal {
	t.Helper()
	lit, err := rdf.NewLiteral(value)
	require.NoError(t, err)
	return lit
}

func iri(t *testing.T, value string) rdf.IRI {
	t.Helper()
	term, err := rdf.NewIRI(value)
	require.NoError(t, err)
	return term
}

func TestResolveLiteralKeepsExplicitTag(t *testing.T) {
	acc, handler := newTestAccumulator(t, "de")

	value, language := acc.ResolveLiteral(langLiteral(t, "Begriff", "de"))

	assert.Equal(t, "Begriff", value)
	assert.Equal(t, "de", language)
	assert.Empty(t, handler.warnings())
}

func TestResolveLiteralDefaultsMissingTag(t *testing.T) {
	acc, handler := newTestAccumulator(t, "de")

	value, language := acc.ResolveLiteral(plainLiteral(t, "Begriff"))

	assert.Equal(t, "Begriff", value)
	assert.Equal(t, "de", language)
	require.Len(t, handler.warnings(), 1)
	assert.Equal(t, "missing language tag", handler.warnings()[0].Message)
}

func TestAccumulatorFallsBackToEnglish(t *testing.T) {
	acc, _ := newTestAccumulator(t, "")

	_, language := acc.ResolveLiteral(plainLiteral(t, "value"))

	assert.Equal(t, "en", language)
}

func TestMergeLabelConflictKeepsFirst(t *testing.T) {
	acc, handler := newTestAccumulator(t, "en")
	e := NewConcept("uri:C", "uri:S")

	acc.MergeLabel(e, langLiteral(t, "A", "en"))
	acc.MergeLabel(e, langLiteral(t, "B", "en"))

	assert.Equal(t, map[string]string{"en": "A"}, e.PrefLabel)
	require.Len(t, handler.warnings(), 1)
	assert.Equal(t, "conflicting prefLabel", handler.warnings()[0].Message)
}

func TestMergeLabelIdempotent(t *testing.T) {
	acc, handler := newTestAccumulator(t, "en")
	e := NewConcept("uri:C", "uri:S")

	acc.MergeLabel(e, langLiteral(t, "A", "en"))
	acc.MergeLabel(e, langLiteral(t, "A", "en"))

	assert.Equal(t, map[string]string{"en": "A"}, e.PrefLabel)
	assert.Empty(t, handler.warnings())
}

func TestMergeLabelSeparateLanguages(t *testing.T) {
	acc, handler := newTestAccumulator(t, "en")
	e := NewConcept("uri:C", "uri:S")

	acc.MergeLabel(e, langLiteral(t, "Dog", "en"))
	acc.MergeLabel(e, langLiteral(t, "Hund", "de"))

	assert.Equal(t, map[string]string{"en": "Dog", "de": "Hund"}, e.PrefLabel)
	assert.Empty(t, handler.warnings())
}

func TestMergeNotationDeduplicates(t *testing.T) {
	acc, _ := newTestAccumulator(t, "en")
	e := NewScheme("uri:S")

	acc.MergeNotation(e, plainLiteral(t, "X"))
	acc.MergeNotation(e, plainLiteral(t, "X"))
	acc.MergeNotation(e, plainLiteral(t, "Y"))

	assert.Equal(t, []string{"X", "Y"}, e.Notation)
}

func TestMergeURIRefDeduplicates(t *testing.T) {
	acc, _ := newTestAccumulator(t, "en")
	e := NewConcept("uri:C", "uri:S")

	acc.MergeURIRef(e, FieldNarrower, iri(t, "http://example.org/a"))
	acc.MergeURIRef(e, FieldNarrower, iri(t, "http://example.org/a"))
	acc.MergeURIRef(e, FieldNarrower, iri(t, "http://example.org/b"))

	assert.Equal(t, []Ref{{URI: "http://example.org/a"}, {URI: "http://example.org/b"}}, e.Narrower)
}

func TestMergeNarrowerKeepsFirstSeenOrder(t *testing.T) {
	acc, _ := newTestAccumulator(t, "en")
	e := NewConcept("uri:C", "uri:S")

	acc.MergeURIRef(e, FieldNarrower, iri(t, "http://example.org/b"))
	acc.MergeURIRef(e, FieldNarrower, iri(t, "http://example.org/a"))
	e.Finalize()

	assert.Equal(t, []Ref{{URI: "http://example.org/b"}, {URI: "http://example.org/a"}}, e.Narrower)
}

func TestMergeNoteCleansAndDeduplicates(t *testing.T) {
	acc, _ := newTestAccumulator(t, "en")
	e := NewScheme("uri:S")

	acc.MergeNote(e, langLiteral(t, "  a vocabulary  ", "en"))
	acc.MergeNote(e, langLiteral(t, "a vocabulary", "en"))
	acc.MergeNote(e, langLiteral(t, "ein Vokabular", "de"))

	assert.Equal(t, map[string][]string{
		"en": {"a vocabulary"},
		"de": {"ein Vokabular"},
	}, e.Definition)
}

func TestMergeOperationsIgnoreAbsentTerms(t *testing.T) {
	acc, handler := newTestAccumulator(t, "en")
	e := NewConcept("uri:C", "uri:S")

	acc.MergeLabel(e, nil)
	acc.MergeNotation(e, nil)
	acc.MergeURIRef(e, FieldNarrower, nil)
	acc.MergeNote(e, nil)

	assert.Empty(t, e.PrefLabel)
	assert.Empty(t, e.Notation)
	assert.Empty(t, e.Narrower)
	assert.Empty(t, e.Definition)
	assert.Empty(t, handler.warnings())
}

func TestMergeOperationsIgnoreWrongTermKind(t *testing.T) {
	acc, _ := newTestAccumulator(t, "en")
	e := NewConcept("uri:C", "uri:S")

	acc.MergeLabel(e, iri(t, "http://example.org/x"))
	acc.MergeNotation(e, iri(t, "http://example.org/x"))
	acc.MergeURIRef(e, FieldNarrower, plainLiteral(t, "not a uri"))

	assert.Empty(t, e.PrefLabel)
	assert.Empty(t, e.Notation)
	assert.Empty(t, e.Narrower)
}

func TestCleanNote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims lines", "  first line  \n  second line ", "first line\nsecond line"},
		{"strips spanning quotes", `"quoted value"`, "quoted value"},
		{"keeps inner quotes", `say "hi" now`, `say "hi" now`},
		{"quote only at start", `"half quoted`, `"half quoted`},
		{"trim then strip", `  "quoted"  `, "quoted"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanNote(tt.in))
		})
	}
}
