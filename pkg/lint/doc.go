// Package lint provides a language-agnostic style-rule evaluation engine.
//
// The engine operates on the immutable node trees defined in pkg/tree. A
// parser (one per language, external to this package) turns source text
// into a tree; the engine walks that tree once, dispatches each node to
// every rule interested in its kind, canonicalizes the resulting findings
// into ordered diagnostics, and can apply the non-conflicting text edits
// that rules propose.
//
// # Rule Registration
//
// Rules are registered via init() functions when their packages are
// imported:
//
//	import _ "github.com/leapstack-labs/lintkit/pkg/lint/rules"
//
// Custom rules are declared data-driven with RuleDef:
//
//	var TrailingWhitespace = lint.RuleDef{
//		ID:          "WS01",
//		Name:        "whitespace.trailing",
//		Group:       "whitespace",
//		Description: "Lines must not end with whitespace.",
//		Severity:    lint.SeverityWarning,
//		Kinds:       []tree.NodeKind{conf.KindFile},
//		Fixable:     true,
//		Check:       checkTrailingWhitespace,
//	}
//
//	func init() {
//		lint.Register(TrailingWhitespace)
//	}
//
// # Configuration
//
// Config controls which rules are enabled, their severity, and their
// options. It is frozen before analysis begins:
//
//	config := lint.NewConfig()
//	config.Disable("CV02")
//	config.SetSeverity("WS01", lint.SeverityError)
//	config.SetRuleOptions("CV01", map[string]any{"style": "kebab"})
//
// # Running
//
// An Analyzer binds a registry to a config. It holds no per-file state, so
// one Analyzer serves any number of concurrent per-file pipelines:
//
//	analyzer := lint.NewAnalyzer(lint.DefaultRegistry(), config)
//	result := analyzer.Lint(src, conf.NewParser())
//	fixed := analyzer.Fix(src, conf.NewParser(), 3)
//
// Diagnostics are sorted by (start position, rule ID) and deduplicated, so
// reported output is independent of rule registration order.
package lint
