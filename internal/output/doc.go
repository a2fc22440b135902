// Package output serializes composed objects to canonical YAML or JSON
// and writes them to pluggable destinations (stdout, files). Formats are
// looked up through a registry so new ones can be added without touching
// the CLI.
package output
