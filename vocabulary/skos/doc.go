// Package skos defines IRI constants for the SKOS (Simple Knowledge
// Organization System) vocabulary, covering the subset of classes and
// properties the converter reads from source graphs.
package skos
