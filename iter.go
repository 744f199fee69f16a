package bst

import "errors"

// ErrIterDone can be returned by an iteration callback to stop early
// without Iter or SeekIter reporting an error.
var ErrIterDone = errors.New("iteration done")

// Iter invokes f for every entry of the tree in key order. Iteration stops
// at the first error returned by f, which is returned unless it is
// ErrIterDone.
func (t *Tree[K, V]) Iter(f func(K, V) error) error {
	err := t.iter(t.root, f)
	if errors.Is(err, ErrIterDone) {
		return nil
	}
	return err
}

// SeekIter is like Iter but starts at the first key not less than from.
func (t *Tree[K, V]) SeekIter(from K, f func(K, V) error) error {
	err := t.seekIter(t.root, from, f)
	if errors.Is(err, ErrIterDone) {
		return nil
	}
	return err
}

// Keys returns the tree's keys in order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	_ = t.Iter(func(key K, _ V) error {
		keys = append(keys, key)
		return nil
	})
	return keys
}
