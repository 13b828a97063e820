// Package whitespace provides lint rules for source layout.
//
// Rules in this package:
//   - WS01: Trailing whitespace at line ends
//   - WS02: Missing newline at end of file
package whitespace
