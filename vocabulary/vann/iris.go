package vann

// Namespace is the base IRI prefix for VANN vocabulary annotation terms.
const Namespace = "http://purl.org/vocab/vann/"

// PreferredNamespacePrefix is the preferred short prefix for a vocabulary.
const PreferredNamespacePrefix = Namespace + "preferredNamespacePrefix"
