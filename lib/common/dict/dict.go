// Package dict contains generic map helpers.
package dict

// GetDefault returns the value for k, creating it with c if k is not present.
func GetDefault[K comparable, V any](m map[K]V, k K, c func() V) V {
	v, ok := m[k]
	if !ok {
		v = c()
		m[k] = v
	}
	return v
}
