package bucketmap

// Set is a set of strings built on the same fixed-capacity table as Map.
// It only stores keys, and like Map it never grows.
type Set struct {
	table[struct{}]
}

type SetOption = Option[struct{}]

func NewSet(capacity int, opts ...SetOption) (*Set, error) {
	var s Set
	if err := s.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &s, nil
}

// Puts a key in the set.
// Returns whether the key is new. Putting a present key always succeeds,
// while a new key is rejected with ErrTableFull once the set holds Cap keys.
func (s *Set) Put(key string) (bool, error) {
	return s.set(key, struct{}{})
}

func (s *Set) Has(key string) bool {
	_, ok := s.get(key)
	return ok
}

// Deletes a key from the set. Returns false if the key wasn't there.
func (s *Set) Delete(key string) bool {
	_, ok := s.delete(key)
	return ok
}

func (s *Set) Load() float64 {
	return s.load()
}

func (s *Set) Len() int {
	return s.size
}

func (s *Set) Cap() int {
	return s.capacity
}
