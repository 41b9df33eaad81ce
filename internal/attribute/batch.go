package attribute

import "fmt"

// Key is a closed enumeration usable as a Batch index.
type Key interface {
	~uint8
	fmt.Stringer
}

// Batch holds one value per key of a closed enumeration
// (per element, per attack type, per reaction type).
type Batch[K Key, V any] struct {
	values []V
}

// NewBatch builds a batch of count values, one per key, created by fn.
func NewBatch[K Key, V any](count int, fn func(K) V) Batch[K, V] {
	values := make([]V, count)
	for i := range values {
		values[i] = fn(K(i))
	}
	return Batch[K, V]{values: values}
}

// At returns the value for k. Panics if k is outside the enumeration.
func (b Batch[K, V]) At(k K) V {
	if int(k) >= len(b.values) {
		panic(fmt.Sprintf("attribute: batch key %s out of range", k))
	}
	return b.values[k]
}

// Len returns the number of keys.
func (b Batch[K, V]) Len() int { return len(b.values) }

// Each calls fn for every key in order.
func (b Batch[K, V]) Each(fn func(K, V)) {
	for i, v := range b.values {
		fn(K(i), v)
	}
}

// ApplyToAll calls fn on every value.
func (b Batch[K, V]) ApplyToAll(fn func(V)) {
	for _, v := range b.values {
		fn(v)
	}
}

// Map returns a new batch with fn applied to every value.
func (b Batch[K, V]) Map(fn func(V) V) Batch[K, V] {
	values := make([]V, len(b.values))
	for i, v := range b.values {
		values[i] = fn(v)
	}
	return Batch[K, V]{values: values}
}
