// Package dct defines IRI constants for the Dublin Core terms vocabulary
// used for concept scheme metadata.
package dct
