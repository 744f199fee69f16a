package bst

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Size() == 0
}

// Size returns the number of entries in the tree.
func (t *Tree[K, V]) Size() int {
	return size(t.root)
}

// Contains reports whether the tree has an entry for the given key.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Get returns the value stored for the given key. Returns false if the tree
// doesn't contain the key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	return t.get(t.root, key)
}

// Put adds or replaces the value for the given key. A value the tree
// considers absent (see Options.AbsentValue) removes the key instead, so callers
// can use Put as update-or-remove.
func (t *Tree[K, V]) Put(key K, value V) {
	if t.absent(value) {
		t.Delete(key)
		return
	}
	if t.debug {
		t.logger.Info("inserting", "key", key)
	}
	t.root = t.put(t.root, key, value)
}

// Delete removes the entry with the given key, if present.
//
// A node with two children is not unlinked: it takes the key of its in-order
// predecessor (the largest key of its left subtree) and the predecessor is
// removed instead. The surviving node keeps the value it held before, so
// after such a delete the predecessor's key maps to the deleted key's value.
func (t *Tree[K, V]) Delete(key K) {
	if !t.Contains(key) {
		return
	}
	if t.debug {
		t.logger.Info("deleting", "key", key)
	}
	t.root = t.delete(t.root, key)
}

// Height returns the number of links from the root to the deepest leaf, or
// -1 for an empty tree. It visits every node.
func (t *Tree[K, V]) Height() int {
	if t.IsEmpty() {
		return -1
	}
	return height(t.root)
}

// Rank returns the number of keys in the tree less than the given key.
//
// The result is exact only for keys present in the tree. For an absent key
// the walk ends below a leaf, which counts as -1, so the result is one less
// than the number of smaller keys: the rank of the largest smaller key, or
// -1 if there is none.
func (t *Tree[K, V]) Rank(key K) int {
	return t.rank(key, t.root)
}

// Select returns the key with the given zero-based rank. Returns false if
// rank is outside [0, Size()).
func (t *Tree[K, V]) Select(rank int) (K, bool) {
	if rank < 0 || rank >= t.Size() {
		var zero K
		return zero, false
	}
	return selectNode(t.root, rank).key, true
}

// Median returns the key ranked (r+1)/2, where r is the rank of the largest
// key. That is rank Size()/2: the middle key for an odd number of keys and
// the upper of the two middle keys for an even number. Returns false if the
// tree is empty.
func (t *Tree[K, V]) Median() (K, bool) {
	if t.IsEmpty() {
		var zero K
		return zero, false
	}
	largest := maxNode(t.root)
	return t.Select((t.Rank(largest.key) + 1) / 2)
}

// Min returns the smallest key in the tree.
func (t *Tree[K, V]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return minNode(t.root).key, true
}

// Max returns the largest key in the tree.
func (t *Tree[K, V]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return maxNode(t.root).key, true
}
