package lint

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/lintkit/pkg/tree"
)

// Reserved rule identities for diagnostics emitted by the engine itself.
const (
	// SyntaxRuleID tags the diagnostic produced when parsing fails.
	SyntaxRuleID = "syntax"
	// InternalRuleID tags diagnostics produced when a rule implementation
	// panics during evaluation.
	InternalRuleID = "internal"
)

// Analyzer evaluates a fixed rule set against node trees.
//
// An Analyzer is constructed once from a registry and a config, then frozen:
// it holds no per-file state and is safe for concurrent use across files.
type Analyzer struct {
	config *Config
	active []Rule                   // enabled rules in registration order
	byKind map[tree.NodeKind][]Rule // dispatch index
	byID   map[string]Rule          // enabled rules by ID
}

// NewAnalyzer resolves the active rule set from the registry and config and
// builds the kind dispatch index. Disabled rules are skipped entirely;
// dispatch cost per node is proportional to the rules interested in that
// node's kind, not the total rule count.
func NewAnalyzer(reg *Registry, config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	a := &Analyzer{
		config: config,
		byKind: make(map[tree.NodeKind][]Rule),
		byID:   make(map[string]Rule),
	}
	for _, rule := range reg.Rules() {
		if config.IsDisabled(rule.ID()) {
			continue
		}
		a.active = append(a.active, rule)
		a.byID[rule.ID()] = rule
		for _, kind := range rule.Kinds() {
			a.byKind[kind] = append(a.byKind[kind], rule)
		}
	}
	return a
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() *Config {
	return a.config
}

// ActiveRules returns the enabled rules in registration order.
func (a *Analyzer) ActiveRules() []Rule {
	out := make([]Rule, len(a.active))
	copy(out, a.active)
	return out
}

// Analyze walks the tree once, pre-order, dispatching each node to every
// rule interested in its kind, and returns the accumulated raw findings.
//
// Rule invocations are independent: the tree is read-only and findings are
// collected into a slice owned by this call, so diagnostics cannot depend
// on evaluation order beyond the canonical sort applied later.
func (a *Analyzer) Analyze(root *tree.Node, src []byte) []Finding {
	parents := tree.BuildParentIndex(root)

	var findings []Finding
	tree.Walk(root, func(n *tree.Node) bool {
		for _, rule := range a.byKind[n.Kind] {
			ctx := &RuleContext{
				parents: parents,
				src:     src,
				options: a.config.GetRuleOptions(rule.ID()),
			}
			findings = append(findings, a.runRule(rule, n, ctx)...)
		}
		return true
	})
	return findings
}

// runRule invokes one rule on one node, containing panics so that a
// malfunctioning rule cannot abort the traversal. A panic is converted
// into an internal-error finding naming the offending rule.
func (a *Analyzer) runRule(rule Rule, n *tree.Node, ctx *RuleContext) (out []Finding) {
	defer func() {
		if r := recover(); r != nil {
			out = []Finding{{
				RuleID:   InternalRuleID,
				Severity: SeverityError,
				Span:     n.Span,
				Message:  fmt.Sprintf("rule %s failed on %s node: %v", rule.ID(), n.Kind, r),
			}}
		}
	}()

	raw := rule.Check(n, ctx)
	if len(raw) == 0 {
		return nil
	}
	out = make([]Finding, 0, len(raw))
	for _, f := range raw {
		f.RuleID = rule.ID()
		f.Severity = rule.DefaultSeverity()
		out = append(out, f)
	}
	return out
}

// Lint parses src and evaluates the active rule set against the resulting
// tree, returning canonical diagnostics and a run status.
//
// A parse failure yields StatusParseFailed with a single syntax diagnostic
// and no rule diagnostics; rules require a well-formed tree. Failures are
// file-scoped: concurrent Lint calls on other files are unaffected.
func (a *Analyzer) Lint(src []byte, parser tree.Parser) Result {
	root, err := parser.Parse(src)
	if err != nil {
		return Result{
			Status:      StatusParseFailed,
			Diagnostics: []Diagnostic{syntaxDiagnostic(parser, err)},
		}
	}

	findings := a.Analyze(root, src)
	diags := canonicalize(findings, a.config)
	return Result{
		Diagnostics: diags,
		Status:      statusFor(diags),
	}
}

func syntaxDiagnostic(parser tree.Parser, err error) Diagnostic {
	var serr *tree.SyntaxError
	if errors.As(err, &serr) {
		return Diagnostic{
			RuleID:   SyntaxRuleID,
			Severity: SeverityError,
			Span:     serr.Span,
			Message:  serr.Message,
		}
	}
	// The parser broke its contract; still isolate the failure to this file.
	return Diagnostic{
		RuleID:   SyntaxRuleID,
		Severity: SeverityError,
		Message:  fmt.Sprintf("parser %s failed: %v", parser.Name(), err),
	}
}
