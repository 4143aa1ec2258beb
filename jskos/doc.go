// Package jskos holds the JSKOS entity model and the aggregation logic
// that folds flat SPARQL result rows into structured scheme and concept
// records. All merge operations deduplicate and are independent of row
// order, since SPARQL joins repeat bindings whenever an entity has several
// independent multi-valued properties.
package jskos
