// Package sparql is the RDF query collaborator for the converter. It
// defines the query pattern model the converter issues, wraps patterns in
// the fixed prefix and SELECT envelope, and executes them either against a
// remote SPARQL endpoint or against an in-memory triple store.
package sparql
