//go:build unit || e2e

package testutil

// Field mutates one key of a JSON-ish request body map; a nil value
// removes the key. Used to probe validation boundaries from a valid base
// request.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Apply copies base and applies the given mutations to the copy.
func Apply(base map[string]any, mutations ...func(map[string]any)) map[string]any {
	m := make(map[string]any, len(base))
	for k, v := range base {
		m[k] = v
	}
	for _, mutate := range mutations {
		mutate(m)
	}
	return m
}
