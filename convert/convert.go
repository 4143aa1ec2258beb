// Package convert orchestrates the queries and row folds that turn a SKOS
// graph into JSKOS scheme and concept entities.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/c360studio/skos2jskos/jskos"
	"github.com/c360studio/skos2jskos/sparql"
)

// Converter runs the aggregation passes against one query client.
type Converter struct {
	client sparql.Client
	acc    *jskos.Accumulator
	logger *slog.Logger

	// SchemeURI pins the concept scheme to convert. When empty, the
	// scheme is discovered from the graph and must be unique.
	SchemeURI string
}

// New creates a converter. The default language tag applies to literals
// without one.
func New(client sparql.Client, defaultLanguage string, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		client: client,
		acc:    jskos.NewAccumulator(defaultLanguage, logger),
		logger: logger,
	}
}

// BuildScheme resolves the concept scheme URI and populates the scheme
// entity from its metadata and top concept links.
func (c *Converter) BuildScheme(ctx context.Context) (*jskos.Entity, error) {
	uri, err := c.resolveSchemeURI(ctx)
	if err != nil {
		return nil, err
	}
	c.logger.Info("converting concept scheme", "uri", uri)

	scheme := jskos.NewScheme(uri)

	rows, err := c.client.Select(ctx, schemeMetadataQuery(uri))
	if err != nil {
		return nil, fmt.Errorf("query scheme metadata: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrSchemeIncomplete
	}
	for _, row := range rows {
		c.acc.MergeLabel(scheme, row["title"])
		c.acc.MergeNotation(scheme, row["notation"])
		c.acc.MergeNote(scheme, row["description"])
	}

	rows, err = c.client.Select(ctx, topConceptsQuery(uri))
	if err != nil {
		return nil, fmt.Errorf("query top concepts: %w", err)
	}
	for _, row := range rows {
		c.acc.MergeURIRef(scheme, jskos.FieldTopConcepts, row["topConcept"])
	}

	scheme.Finalize()
	return scheme, nil
}

// CollectConcepts builds one entity per concept in the scheme, folding
// all rows for a concept into the same record. The result is sorted by
// URI. An empty result is a warning, not an error.
func (c *Converter) CollectConcepts(ctx context.Context, schemeURI string) ([]*jskos.Entity, error) {
	rows, err := c.client.Select(ctx, conceptsQuery(schemeURI))
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}

	byURI := make(map[string]*jskos.Entity)
	for _, row := range rows {
		iri, ok := row.IRI("concept")
		if !ok {
			continue
		}
		uri := iri.String()
		concept := byURI[uri]
		if concept == nil {
			concept = jskos.NewConcept(uri, schemeURI)
			byURI[uri] = concept
		}
		c.acc.MergeLabel(concept, row["prefLabel"])
		c.acc.MergeNotation(concept, row["notation"])
		c.acc.MergeURIRef(concept, jskos.FieldNarrower, row["narrower"])
	}

	if len(byURI) == 0 {
		c.logger.Warn("no concepts found", "scheme", schemeURI)
	}

	concepts := make([]*jskos.Entity, 0, len(byURI))
	for _, concept := range byURI {
		concepts = append(concepts, concept)
	}
	sort.Slice(concepts, func(i, j int) bool { return concepts[i].URI < concepts[j].URI })

	c.logger.Info("collected concepts", "scheme", schemeURI, "count", len(concepts))
	return concepts, nil
}

// resolveSchemeURI adopts the configured scheme URI, or discovers it from
// the graph. Discovery fails when no scheme or more than one is present.
func (c *Converter) resolveSchemeURI(ctx context.Context) (string, error) {
	if c.SchemeURI != "" {
		return c.SchemeURI, nil
	}

	rows, err := c.client.Select(ctx, schemesQuery())
	if err != nil {
		return "", fmt.Errorf("query concept schemes: %w", err)
	}

	var uris []string
	for _, row := range rows {
		iri, ok := row.IRI("scheme")
		if !ok {
			continue
		}
		uri := iri.String()
		found := false
		for _, have := range uris {
			if have == uri {
				found = true
				break
			}
		}
		if !found {
			uris = append(uris, uri)
		}
	}

	switch len(uris) {
	case 0:
		return "", ErrNoScheme
	case 1:
		return uris[0], nil
	default:
		sort.Strings(uris)
		return "", fmt.Errorf("%w, specify one of: %s", ErrAmbiguousScheme, strings.Join(uris, ", "))
	}
}
