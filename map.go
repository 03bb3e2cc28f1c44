package automaton

// Hashable is a map key that supplies its own hash and equality.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// maxLoad is the entries-per-bucket ratio above which the table doubles.
const maxLoad = 0.75

// HashMap is a chained hash table keyed by Hashable values, used to intern composite states during
// subset construction. It only grows. It is not safe for concurrent use; every pipeline run owns its
// own maps.
type HashMap[T any] struct {
	buckets []*Entry[T]
	size    int
}

// Entry is one key/value pair of a bucket chain.
type Entry[T any] struct {
	key   Hashable
	value T
	next  *Entry[T]
}

type OptionsHashMap func(capacity *int)

// WithCapacity sets the initial number of buckets, rounded up to a power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(c *int) {
		*c = capacity
	}
}

// NewHashMap creates an empty map.
func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	capacity := 1
	for _, opt := range options {
		opt(&capacity)
	}
	buckets := 1
	for buckets < capacity {
		buckets <<= 1
	}
	return &HashMap[T]{buckets: make([]*Entry[T], buckets)}
}

func (m *HashMap[T]) find(key Hashable) (*Entry[T], uint64) {
	index := key.Hash() & uint64(len(m.buckets)-1)
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e, index
		}
	}
	return nil, index
}

// Set inserts or replaces the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	e, index := m.find(key)
	if e != nil {
		e.value = value
		return
	}
	m.buckets[index] = &Entry[T]{key: key, value: value, next: m.buckets[index]}
	m.size++

	if float64(m.size) > maxLoad*float64(len(m.buckets)) {
		m.grow()
	}
}

// Get returns the value stored under key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	if e, _ := m.find(key); e != nil {
		return e.value, true
	}
	var zero T
	return zero, false
}

// grow doubles the bucket count and relinks the existing entries.
func (m *HashMap[T]) grow() {
	old := m.buckets
	m.buckets = make([]*Entry[T], len(old)<<1)
	mask := uint64(len(m.buckets) - 1)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			index := e.key.Hash() & mask
			e.next = m.buckets[index]
			m.buckets[index] = e
			e = next
		}
	}
}

// Size returns the number of keys.
func (m *HashMap[T]) Size() int {
	return m.size
}
