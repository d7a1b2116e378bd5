// Package dotpath implements dotted-path lookup into nested string-keyed
// maps, e.g. "customer.address.city".
package dotpath

import "strings"

// Lookup walks data along the dotted path and returns the value found at its
// end. It returns def the moment any segment is absent or an intermediate
// value is not a string-keyed map. It never fails.
func Lookup(data map[string]interface{}, path string, def interface{}) interface{} {
	current := interface{}(data)

	for _, part := range strings.Split(path, ".") {
		currentMap, ok := current.(map[string]interface{})
		if !ok {
			return def
		}
		val, exists := currentMap[part]
		if !exists {
			return def
		}
		current = val
	}

	return current
}
