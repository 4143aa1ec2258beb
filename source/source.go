// Package source acquires the RDF input and turns it into a query client.
// Local files and remote documents are parsed into an in-memory store;
// a SPARQL endpoint is queried directly.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/skos2jskos/config"
	"github.com/c360studio/skos2jskos/sparql"
	"github.com/c360studio/skos2jskos/store"
)

// Open builds the query client for the configured input mode. The config
// must have passed Validate, so exactly one mode is set.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (sparql.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Endpoint != "" {
		logger.Info("using SPARQL endpoint", "url", cfg.Endpoint)
		return sparql.NewEndpoint(cfg.Endpoint)
	}

	st := store.New()
	if cfg.SourceURL != "" {
		if err := loadURL(ctx, st, cfg.SourceURL, logger); err != nil {
			return nil, err
		}
	} else {
		if err := loadFiles(st, cfg.SourceFiles, logger); err != nil {
			return nil, err
		}
	}
	logger.Info("loaded RDF input", "triples", st.Len())
	return sparql.NewStoreClient(st), nil
}

// loadFiles expands glob patterns and loads every matching file.
func loadFiles(st *store.Store, patterns []string, logger *slog.Logger) error {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("expand pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// A literal path that matched nothing should fail loudly
			// rather than silently produce an empty graph.
			matches = []string{pattern}
		}
		paths = append(paths, matches...)
	}

	for _, path := range paths {
		format, err := FormatForPath(path)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open source file: %w", err)
		}
		n, err := st.Load(f, format)
		f.Close()
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		logger.Debug("loaded source file", "path", path, "triples", n)
	}
	return nil
}

// loadURL fetches a remote RDF document and loads it into the store.
func loadURL(ctx context.Context, st *store.Store, url string, logger *slog.Logger) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	format, err := FormatForDocument(url, resp.Header.Get("Content-Type"))
	if err != nil {
		return err
	}
	n, err := st.Load(resp.Body, format)
	if err != nil {
		return fmt.Errorf("load %s: %w", url, err)
	}
	logger.Debug("loaded remote document", "url", url, "triples", n)
	return nil
}
