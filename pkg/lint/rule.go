package lint

import (
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

// Rule is the interface all lint rules implement.
//
// Rules are stateless across files: the analyzer invokes Check once per
// visited node of an interested kind, and any per-file scratch state must
// live in the rule's local variables for that call. Rules must not mutate
// the node tree or anything reachable from the context.
type Rule interface {
	// ID returns the unique identifier, e.g. "WS01".
	ID() string

	// Name returns the human-readable name, e.g. "whitespace.trailing".
	Name() string

	// Group returns the category, e.g. "whitespace", "convention", "structure".
	Group() string

	// Description returns a human-readable description.
	Description() string

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() Severity

	// Kinds returns the node kinds this rule wants to visit.
	Kinds() []tree.NodeKind

	// Fixable reports whether the rule's fixes may be applied automatically.
	Fixable() bool

	// ConfigKeys returns configuration keys this rule accepts.
	ConfigKeys() []string

	// Check analyzes a node and returns findings. The analyzer stamps each
	// finding with the rule's identity and severity.
	Check(node *tree.Node, ctx *RuleContext) []Finding
}

// RuleDef is a data-driven rule definition. Most rules are declared this
// way and registered from init() via Register; implement Rule directly only
// when a rule needs construction-time state.
type RuleDef struct {
	ID          string          // Unique identifier, e.g. "WS01"
	Name        string          // Human-readable name, e.g. "whitespace.trailing"
	Group       string          // Category, e.g. "whitespace"
	Description string          // Human-readable description
	Severity    Severity        // Default severity
	Kinds       []tree.NodeKind // Node kinds the rule subscribes to
	Fixable     bool            // Whether proposed fixes are safe to auto-apply
	Check       CheckFunc       // The check function
	ConfigKeys  []string        // Configuration keys this rule accepts
}

// CheckFunc analyzes a node and returns findings.
type CheckFunc func(node *tree.Node, ctx *RuleContext) []Finding

// wrappedRuleDef wraps a RuleDef to implement Rule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the Rule interface.
func WrapRuleDef(def RuleDef) Rule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                { return w.def.ID }
func (w *wrappedRuleDef) Name() string              { return w.def.Name }
func (w *wrappedRuleDef) Group() string             { return w.def.Group }
func (w *wrappedRuleDef) Description() string       { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() Severity { return w.def.Severity }
func (w *wrappedRuleDef) Kinds() []tree.NodeKind    { return w.def.Kinds }
func (w *wrappedRuleDef) Fixable() bool             { return w.def.Fixable }
func (w *wrappedRuleDef) ConfigKeys() []string      { return w.def.ConfigKeys }

func (w *wrappedRuleDef) Check(node *tree.Node, ctx *RuleContext) []Finding {
	if w.def.Check == nil {
		return nil
	}
	return w.def.Check(node, ctx)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}

// RuleInfo provides metadata about a rule for documentation and tooling.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	Kinds           []string `json:"kinds,omitempty"`
	Fixable         bool     `json:"fixable"`
	ConfigKeys      []string `json:"config_keys,omitempty"`
}

// GetRuleInfo extracts metadata from a Rule.
func GetRuleInfo(r Rule) RuleInfo {
	kinds := make([]string, 0, len(r.Kinds()))
	for _, k := range r.Kinds() {
		kinds = append(kinds, string(k))
	}
	return RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
		Kinds:           kinds,
		Fixable:         r.Fixable(),
		ConfigKeys:      r.ConfigKeys(),
	}
}
