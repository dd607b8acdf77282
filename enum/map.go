package enum

// Map is a total function K→V backed by a slice indexed by K.Index().
// The zero Map maps every key to the zero V.
type Map[K Enumerable[K], V any] struct {
	values []V
}

// NewMap returns the constant map k ↦ v.
func NewMap[K Enumerable[K], V any](v V) Map[K, V] {
	values := make([]V, Cardinality[K]())
	for i := range values {
		values[i] = v
	}
	return Map[K, V]{values: values}
}

// MapFromFunc tabulates f over the universe of K.
func MapFromFunc[K Enumerable[K], V any](f func(K) V) Map[K, V] {
	var zero K
	values := make([]V, zero.Cardinality())
	for i := range values {
		values[i] = f(zero.FromIndex(i))
	}
	return Map[K, V]{values: values}
}

// Get returns the value at k.
func (m Map[K, V]) Get(k K) V {
	if m.values == nil {
		var v V
		return v
	}
	return m.values[k.Index()]
}

// With returns a copy of m with k mapped to v.
func (m Map[K, V]) With(k K, v V) Map[K, V] {
	n := Cardinality[K]()
	values := make([]V, n)
	copy(values, m.values)
	values[k.Index()] = v
	return Map[K, V]{values: values}
}

// Entries calls fn for every key in canonical order.
func (m Map[K, V]) Entries(fn func(k K, v V)) {
	var zero K
	for i, n := 0, zero.Cardinality(); i < n; i++ {
		k := zero.FromIndex(i)
		fn(k, m.Get(k))
	}
}

// Values returns a copy of the values in canonical key order.
func (m Map[K, V]) Values() []V {
	n := Cardinality[K]()
	out := make([]V, n)
	copy(out, m.values)
	return out
}
