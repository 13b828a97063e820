// Package convention provides lint rules for naming conventions.
//
// Rules in this package:
//   - CV01: Key naming style (snake_case or kebab-case, configurable)
//   - CV02: Section names must be lowercase
//   - CV03: Blocked key names (configurable deny list)
package convention
