package grouping

// Set is an unordered collection of unique items.
// It is the bucket type returned by GroupByAsSet.
type Set[T comparable] map[T]struct{}

// NewSet builds a Set from the given items, dropping duplicates.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts it into the set. Adding an item already present is a no-op.
func (s Set[T]) Add(it T) {
	s[it] = struct{}{}
}

// Contains reports whether it is in the set.
func (s Set[T]) Contains(it T) bool {
	_, ok := s[it]
	return ok
}

// Len returns the number of items in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Values returns the items of the set in unspecified order.
func (s Set[T]) Values() []T {
	vs := make([]T, 0, len(s))
	for it := range s {
		vs = append(vs, it)
	}
	return vs
}
