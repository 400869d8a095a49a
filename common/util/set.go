package util

// Set keeps unique values in the order they were first added.
type Set[V comparable] struct {
	index  map[V]int
	values []V
}

func NewSet[V comparable]() *Set[V] {
	return &Set[V]{
		index: map[V]int{},
	}
}

// Add returns false if the value was already in the set.
func (s *Set[V]) Add(value V) bool {
	if _, ok := s.index[value]; ok {
		return false
	}
	s.index[value] = len(s.values)
	s.values = append(s.values, value)
	return true
}

func (s *Set[V]) Remove(value V) {
	i, ok := s.index[value]
	if !ok {
		return
	}
	s.values = append(s.values[:i], s.values[i+1:]...)
	delete(s.index, value)
	for j := i; j < len(s.values); j++ {
		s.index[s.values[j]] = j
	}
}

func (s *Set[V]) Contains(value V) bool {
	_, ok := s.index[value]
	return ok
}

func (s *Set[V]) Len() int {
	return len(s.values)
}

// Values returns a copy in insertion order.
func (s *Set[V]) Values() []V {
	values := make([]V, len(s.values))
	copy(values, s.values)
	return values
}

func (s *Set[V]) Clear() {
	s.index = map[V]int{}
	s.values = nil
}
