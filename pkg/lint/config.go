package lint

import "sort"

// Config controls which rules run, their severity, and their options.
// A Config is immutable for the duration of one run: build it fully before
// creating an Analyzer, then treat it as read-only. Read access is safe
// from concurrent per-file pipelines.
type Config struct {
	// DisabledRules contains rule IDs to skip.
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules.
	SeverityOverrides map[string]Severity

	// RuleOptions holds rule-specific options keyed by rule ID.
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns rule-specific options, or nil if none are set.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions sets rule-specific options.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[ruleID] = opts
	return c
}

// UnknownRules returns the rule IDs referenced by the config that are not
// present in the registry, sorted. Callers report these as warnings; an
// unknown name in configuration is not a core failure.
func (c *Config) UnknownRules(reg *Registry) []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool)
	var unknown []string
	collect := func(id string) {
		if !seen[id] && !reg.Has(id) {
			seen[id] = true
			unknown = append(unknown, id)
		}
	}
	for id := range c.DisabledRules {
		collect(id)
	}
	for id := range c.SeverityOverrides {
		collect(id)
	}
	for id := range c.RuleOptions {
		collect(id)
	}
	sort.Strings(unknown)
	return unknown
}
