package bucketmap

// Map is a map from string keys to values of type V, which uses a fixed
// array of slots with separately chained collisions under the hood.
// It never grows: it holds at most the number of keys it was created with,
// and all the memory is allocated by New.
//
// Map is not safe for concurrent use, and the iteration API is not provided.
type Map[V any] struct {
	table[V]
}

// Returns a new instance of the map holding up to capacity keys.
func New[V any](capacity int, opts ...Option[V]) (*Map[V], error) {
	var m Map[V]
	if err := m.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Get returns the value stored for the key, or ErrNotFound.
func (m *Map[V]) Get(key string) (V, error) {
	v, ok := m.get(key)
	if !ok {
		return v, ErrNotFound
	}

	return v, nil
}

// Checks whether a key is in the map.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.get(key)
	return ok
}

// Set stores the value for the key, overwriting the existing one.
// Returns ErrTableFull if the key is new and the map already holds Cap keys.
func (m *Map[V]) Set(key string, value V) error {
	_, err := m.set(key, value)
	return err
}

// Delete removes the key and returns the value it held, or ErrNotFound.
func (m *Map[V]) Delete(key string) (V, error) {
	v, ok := m.delete(key)
	if !ok {
		return v, ErrNotFound
	}

	return v, nil
}

// Load returns the ratio of stored keys to capacity, in [0, 1].
func (m *Map[V]) Load() float64 {
	return m.load()
}

func (m *Map[V]) Len() int {
	return m.size
}

func (m *Map[V]) Cap() int {
	return m.capacity
}

func (m *Map[V]) Stats() Stats {
	return m.stats()
}
