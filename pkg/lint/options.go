package lint

// Rule options arrive as a map[string]any, decoded from the YAML config or
// set programmatically. The getters below coerce the loosely typed values a
// rule cares about, returning the rule's default when the key is absent or
// holds the wrong shape.

// GetOption returns the option at key when it holds a T, else defaultVal.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	if typed, ok := opts[key].(T); ok {
		return typed
	}
	return defaultVal
}

// GetStringOption returns a string option.
func GetStringOption(opts map[string]any, key, defaultVal string) string {
	return GetOption(opts, key, defaultVal)
}

// GetBoolOption returns a bool option.
func GetBoolOption(opts map[string]any, key string, defaultVal bool) bool {
	return GetOption(opts, key, defaultVal)
}

// GetIntOption returns an int option. YAML and JSON decoders deliver numbers
// as float64 or int64 depending on the source, so those are narrowed too.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	switch n := opts[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return defaultVal
}

// GetStringSliceOption returns a string slice option. YAML decoding produces
// []any, which is converted element-wise; non-string elements are dropped.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	switch s := opts[key].(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return defaultVal
}
