// Package structure provides lint rules for structural issues.
//
// Rules in this package:
//   - ST01: Empty section (no entries)
//   - ST02: Duplicate key within one scope
//   - ST03: Entry outside any section
package structure
