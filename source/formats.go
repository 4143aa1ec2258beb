package source

import (
	"fmt"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/knakk/rdf"
)

// acceptHeader advertises the serializations the decoder can read.
const acceptHeader = "text/turtle, application/rdf+xml;q=0.9, application/n-triples;q=0.8"

// extFormats maps file extensions to RDF serialization formats.
var extFormats = map[string]rdf.Format{
	".nt":  rdf.NTriples,
	".ttl": rdf.Turtle,
	".rdf": rdf.RDFXML,
	".owl": rdf.RDFXML,
	".xml": rdf.RDFXML,
}

// mediaFormats maps content types to RDF serialization formats.
var mediaFormats = map[string]rdf.Format{
	"text/turtle":           rdf.Turtle,
	"application/turtle":    rdf.Turtle,
	"application/n-triples": rdf.NTriples,
	"text/plain":            rdf.NTriples,
	"application/rdf+xml":   rdf.RDFXML,
	"text/xml":              rdf.RDFXML,
	"application/xml":       rdf.RDFXML,
}

// FormatForPath determines the serialization format of a local file by
// its extension.
func FormatForPath(p string) (rdf.Format, error) {
	ext := strings.ToLower(filepath.Ext(p))
	if format, ok := extFormats[ext]; ok {
		return format, nil
	}
	return rdf.Turtle, fmt.Errorf("unknown RDF file extension %q: %s", ext, p)
}

// FormatForDocument determines the format of a remote document from its
// content type, falling back to the URL path extension, then to Turtle.
func FormatForDocument(rawURL, contentType string) (rdf.Format, error) {
	if contentType != "" {
		media, _, err := mime.ParseMediaType(contentType)
		if err == nil {
			if format, ok := mediaFormats[media]; ok {
				return format, nil
			}
		}
	}
	if u, err := url.Parse(rawURL); err == nil {
		ext := strings.ToLower(path.Ext(u.Path))
		if format, ok := extFormats[ext]; ok {
			return format, nil
		}
	}
	return rdf.Turtle, nil
}
