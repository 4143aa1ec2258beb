package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/c360studio/skos2jskos/config"
	"github.com/c360studio/skos2jskos/convert"
	"github.com/c360studio/skos2jskos/export"
	"github.com/c360studio/skos2jskos/source"
)

// run loads the configuration, builds the query client, and performs the
// full conversion: scheme first, then concepts.
func run(configPath string, flags *config.Config) error {
	logger := buildLogger(flags)

	cfg, err := config.NewLoader(logger).Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Merge(flags)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return runConvert(context.Background(), cfg, logger)
}

// buildLogger configures slog from the verbosity flags. Warnings always
// pass through, since data-quality warnings are part of the output
// contract.
func buildLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Quiet {
		level = slog.LevelWarn
	}
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// runConvert executes the two conversion passes and exports both
// documents. Any fatal condition aborts before the affected file is
// written.
func runConvert(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	client, err := source.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}

	converter := convert.New(client, cfg.Language, logger)
	converter.SchemeURI = cfg.SchemeURI

	scheme, err := converter.BuildScheme(ctx)
	if err != nil {
		return err
	}
	schemePath := export.SchemePath(cfg.OutputDir, cfg.Name)
	if err := export.WriteJSON(schemePath, scheme); err != nil {
		return err
	}
	logger.Info("wrote concept scheme", "path", schemePath)

	concepts, err := converter.CollectConcepts(ctx, scheme.URI)
	if err != nil {
		return err
	}
	conceptsPath := export.ConceptsPath(cfg.OutputDir, cfg.Name)
	if err := export.WriteJSON(conceptsPath, concepts); err != nil {
		return err
	}
	logger.Info("wrote concepts", "path", conceptsPath, "count", len(concepts))

	return nil
}
