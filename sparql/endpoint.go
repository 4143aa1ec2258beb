package sparql

import (
	"context"
	"fmt"
	"time"

	knakk "github.com/knakk/sparql"
)

// defaultTimeout bounds one endpoint round-trip.
const defaultTimeout = 60 * time.Second

// Endpoint executes queries against a remote SPARQL endpoint over the
// SPARQL protocol.
type Endpoint struct {
	repo *knakk.Repo
	url  string
}

// NewEndpoint creates a client for the endpoint at url.
func NewEndpoint(url string) (*Endpoint, error) {
	repo, err := knakk.NewRepo(url, knakk.Timeout(defaultTimeout))
	if err != nil {
		return nil, fmt.Errorf("create endpoint client: %w", err)
	}
	return &Endpoint{repo: repo, url: url}, nil
}

// URL returns the endpoint address.
func (e *Endpoint) URL() string { return e.url }

// Select renders the pattern to SPARQL text and executes it remotely.
func (e *Endpoint) Select(ctx context.Context, p Pattern) ([]Binding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := e.repo.Query(p.String())
	if err != nil {
		return nil, fmt.Errorf("query endpoint %s: %w", e.url, err)
	}

	solutions := res.Solutions()
	rows := make([]Binding, 0, len(solutions))
	for _, sol := range solutions {
		rows = append(rows, Binding(sol))
	}
	return rows, nil
}
