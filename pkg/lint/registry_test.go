package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defWithID(id string) RuleDef {
	return RuleDef{
		ID:          id,
		Name:        "test." + id,
		Group:       "testing",
		Description: "A test rule.",
		Severity:    SeverityWarning,
	}
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []string{"C1", "A1", "B1"} {
		require.NoError(t, reg.Register(WrapRuleDef(defWithID(id))))
	}

	var got []string
	for _, r := range reg.Rules() {
		got = append(got, r.ID())
	}
	assert.Equal(t, []string{"C1", "A1", "B1"}, got)
	assert.Equal(t, 3, reg.Count())
}

func TestRegistryRejectsDuplicateID(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(WrapRuleDef(defWithID("A1"))))

	err := reg.Register(WrapRuleDef(defWithID("A1")))
	require.Error(t, err)

	var dup *DuplicateRuleError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "A1", dup.ID)
	assert.Equal(t, 1, reg.Count(), "failed registration must not change the registry")
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	def := defWithID("A1")
	def.Group = "special"
	require.NoError(t, reg.Register(WrapRuleDef(def)))
	require.NoError(t, reg.Register(WrapRuleDef(defWithID("B1"))))

	rule, ok := reg.Get("A1")
	require.True(t, ok)
	assert.Equal(t, "A1", rule.ID())
	assert.True(t, reg.Has("B1"))
	assert.False(t, reg.Has("missing"))

	special := reg.ByGroup("special")
	require.Len(t, special, 1)
	assert.Equal(t, "A1", special[0].ID())
}

func TestRegistryClear(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(WrapRuleDef(defWithID("A1"))))
	reg.Clear()
	assert.Equal(t, 0, reg.Count())
	require.NoError(t, reg.Register(WrapRuleDef(defWithID("A1"))))
}

func TestConfigUnknownRules(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(WrapRuleDef(defWithID("A1"))))

	cfg := NewConfig()
	cfg.Disable("A1")
	cfg.Disable("GHOST1")
	cfg.SetSeverity("GHOST2", SeverityError)
	cfg.SetRuleOptions("GHOST1", map[string]any{"x": 1})

	assert.Equal(t, []string{"GHOST1", "GHOST2"}, cfg.UnknownRules(reg))
}
