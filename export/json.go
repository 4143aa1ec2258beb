// Package export writes JSKOS documents as canonical, pretty-printed JSON.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File names of the two output documents, optionally prefixed.
const (
	SchemeFile   = "scheme.json"
	ConceptsFile = "concepts.json"
)

// SchemePath returns the output path for the scheme document.
func SchemePath(dir, prefix string) string {
	return filepath.Join(dir, prefixed(prefix, SchemeFile))
}

// ConceptsPath returns the output path for the concepts document.
func ConceptsPath(dir, prefix string) string {
	return filepath.Join(dir, prefixed(prefix, ConceptsFile))
}

func prefixed(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "-" + name
}

// WriteJSON marshals v as pretty-printed UTF-8 JSON and writes it to path
// in one atomic step, so downstream consumers never observe a partial
// document. Object keys are emitted in lexicographic order: struct fields
// are declared canonically and encoding/json sorts map keys.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
