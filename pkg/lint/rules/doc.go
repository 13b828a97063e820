// Package rules aggregates the built-in rule catalog for the conf language.
//
// Importing this package (usually blank) registers every built-in rule with
// the global registry. Rule groups:
//   - WS (whitespace): layout issues in raw source lines
//   - CV (convention): naming conventions for keys and sections
//   - ST (structure): structural issues in the parsed tree
package rules
