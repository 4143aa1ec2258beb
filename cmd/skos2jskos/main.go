// Package main provides the skos2jskos binary entry point. Skos2jskos
// converts a SKOS concept scheme, read from RDF files, a remote document,
// or a SPARQL endpoint, into JSKOS JSON documents.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/c360studio/skos2jskos/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "skos2jskos"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(1)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		flags      config.Config
	)

	cmd := &cobra.Command{
		Use:   "skos2jskos",
		Short: "Convert SKOS concept schemes to JSKOS",
		Long: `Skos2jskos converts a controlled vocabulary expressed in SKOS into two
canonical JSKOS JSON documents: scheme.json describing the concept scheme
and concepts.json listing its member concepts.

Input is read from local RDF files, a remote RDF document, or a SPARQL
endpoint. Output is deterministic, pretty-printed, canonically ordered
JSON.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, &flags)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringSliceVarP(&flags.SourceFiles, "from", "f", nil, "Local RDF files or glob patterns")
	cmd.Flags().StringVarP(&flags.SourceURL, "url", "u", "", "Remote RDF document URL")
	cmd.Flags().StringVarP(&flags.Endpoint, "endpoint", "e", "", "SPARQL endpoint URL")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Output directory (default \".\")")
	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Output file name prefix")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", "", "Default language tag (default \"en\")")
	cmd.Flags().StringVarP(&flags.SchemeURI, "scheme", "s", "", "Concept scheme URI (auto-discovered when omitted)")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress info logs")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Emit debug logs")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
