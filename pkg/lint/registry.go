package lint

import (
	"fmt"
	"sync"
)

// DuplicateRuleError is returned when a rule ID is registered twice.
// Duplicate registration means the run itself is ill-defined, so this is
// fatal before any file is processed.
type DuplicateRuleError struct {
	ID string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("lint: rule %q is already registered", e.ID)
}

// Registry stores registered lint rules, preserving registration order.
// Dispatch during traversal follows this order; the final diagnostic sort
// makes reported output independent of it.
type Registry struct {
	mu      sync.RWMutex
	byID    map[string]Rule
	ordered []Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Rule)}
}

// Register adds a rule. It returns a *DuplicateRuleError if the ID is
// already taken.
func (r *Registry) Register(rule Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[rule.ID()]; exists {
		return &DuplicateRuleError{ID: rule.ID()}
	}
	r.byID[rule.ID()] = rule
	r.ordered = append(r.ordered, rule)
	return nil
}

// Rules returns all registered rules in registration order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Rule, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Get returns a rule by its ID.
func (r *Registry) Get(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byID[id]
	return rule, ok
}

// Has reports whether a rule with the given ID is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// ByGroup returns all rules in a specific group, in registration order.
func (r *Registry) ByGroup(group string) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Rule
	for _, rule := range r.ordered {
		if rule.Group() == group {
			out = append(out, rule)
		}
	}
	return out
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// Clear removes all registered rules. Used for testing.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[string]Rule)
	r.ordered = nil
}

// globalRegistry is the default registry populated by rule packages from
// their init() functions.
var globalRegistry = NewRegistry()

// DefaultRegistry returns the global registry.
func DefaultRegistry() *Registry {
	return globalRegistry
}

// Register adds a data-driven rule to the global registry.
// Call this from init() functions in rule packages; a duplicate ID at
// init time is a programming error and panics.
func Register(def RuleDef) {
	if err := globalRegistry.Register(WrapRuleDef(def)); err != nil {
		panic(err)
	}
}

// AllRules returns metadata for every rule in the global registry.
func AllRules() []RuleInfo {
	rules := globalRegistry.Rules()
	infos := make([]RuleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, GetRuleInfo(r))
	}
	return infos
}
