// Package conf implements the reference parser for the conf language, a
// line-oriented configuration format:
//
//	# comment
//	top_key = value
//
//	[section]
//	key = value
//
// The parser exists so the engine, the CLI, and the rule catalog have a
// complete language to run against; the lint engine itself is
// language-agnostic and depends only on pkg/tree.
package conf
