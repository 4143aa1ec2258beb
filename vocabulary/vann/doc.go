// Package vann defines IRI constants for the VANN vocabulary annotation
// namespace. Some vocabularies publish their short code as a preferred
// namespace prefix instead of a skos:notation.
package vann
