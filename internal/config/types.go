// Package config loads project configuration for lintkit. It is decoupled
// from CLI concerns so other tools embedding the engine can reuse it.
package config

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/lintkit/pkg/lint"
)

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any

// RuleConfig holds the per-rule section of the config file.
type RuleConfig struct {
	// Enabled toggles the rule. Nil means "use the default" (enabled).
	Enabled *bool `koanf:"enabled"`

	// Severity overrides the rule's default severity (error, warning, info, hint).
	Severity string `koanf:"severity"`

	// Options contains rule-specific options.
	Options RuleOptions `koanf:"options"`
}

// ProjectConfig holds the full lintkit project configuration.
type ProjectConfig struct {
	// Include contains glob patterns of files to lint.
	Include []string `koanf:"include"`

	// Exclude contains glob patterns of files to skip.
	Exclude []string `koanf:"exclude"`

	// MaxFixIterations bounds the fix convergence loop.
	MaxFixIterations int `koanf:"max_fix_iterations"`

	// Rules maps rule ID to its per-rule configuration.
	Rules map[string]RuleConfig `koanf:"rules"`
}

// ApplyDefaults applies default values to a ProjectConfig.
func (c *ProjectConfig) ApplyDefaults() {
	if c == nil {
		return
	}
	if len(c.Include) == 0 {
		c.Include = []string{DefaultIncludePattern}
	}
	if c.MaxFixIterations == 0 {
		c.MaxFixIterations = DefaultMaxFixIterations
	}
}

// ToLintConfig translates the per-rule sections into an engine config.
// Rule IDs that are not present in the registry are collected and returned
// as warnings, not errors, so a shared config file can carry rules for
// several tools. A malformed severity string is an error.
func (c *ProjectConfig) ToLintConfig(registry *lint.Registry) (*lint.Config, []string, error) {
	cfg := lint.NewConfig()
	if c == nil {
		return cfg, nil, nil
	}

	var unknown []string
	for id, rc := range c.Rules {
		if !registry.Has(id) {
			unknown = append(unknown, id)
			continue
		}
		if rc.Enabled != nil && !*rc.Enabled {
			cfg.Disable(id)
		}
		if rc.Severity != "" {
			sev, err := lint.ParseSeverity(rc.Severity)
			if err != nil {
				return nil, nil, fmt.Errorf("rule %s: %w", id, err)
			}
			cfg.SetSeverity(id, sev)
		}
		if len(rc.Options) > 0 {
			cfg.SetRuleOptions(id, map[string]any(rc.Options))
		}
	}
	sort.Strings(unknown)

	var warnings []string
	for _, id := range unknown {
		warnings = append(warnings, fmt.Sprintf("unknown rule %q in config", id))
	}
	return cfg, warnings, nil
}
