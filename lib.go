package bst

import (
	"fmt"
)

// Tree is an ordered map whose nodes record the size of their subtree, so
// that rank and select walk a single root-to-leaf path.
type Tree[K, V any] struct {
	root     *node[K, V]
	keyOrder func(K, K) int
	absent   func(V) bool
	logger   Logger
	debug    bool
}

type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
	count int
}

func size[K, V any](x *node[K, V]) int {
	if x == nil {
		return 0
	}
	return x.count
}

func (x *node[K, V]) fixCount() {
	x.count = 1 + size(x.left) + size(x.right)
}

func (t *Tree[K, V]) get(x *node[K, V], key K) (V, bool) {
	for x != nil {
		cmp := t.keyOrder(key, x.key)
		if cmp < 0 {
			x = x.left
		} else if cmp > 0 {
			x = x.right
		} else {
			return x.value, true
		}
	}
	var zero V
	return zero, false
}

// put returns the root of the subtree after inserting, so the caller can
// rebind its child link.
func (t *Tree[K, V]) put(x *node[K, V], key K, value V) *node[K, V] {
	if x == nil {
		return &node[K, V]{key: key, value: value, count: 1}
	}
	cmp := t.keyOrder(key, x.key)
	if cmp < 0 {
		x.left = t.put(x.left, key, value)
	} else if cmp > 0 {
		x.right = t.put(x.right, key, value)
	} else {
		x.value = value
	}
	x.fixCount()
	return x
}

func height[K, V any](x *node[K, V]) int {
	if x == nil {
		return -1
	}
	leftMax := height(x.left)
	rightMax := height(x.right)
	if leftMax > rightMax {
		return leftMax + 1
	}
	return rightMax + 1
}

// rank yields -1 when it falls off the tree, and that -1 is carried through
// the sums on the way back up.
func (t *Tree[K, V]) rank(key K, x *node[K, V]) int {
	if x == nil {
		return -1
	}
	cmp := t.keyOrder(key, x.key)
	if cmp < 0 {
		return t.rank(key, x.left)
	} else if cmp > 0 {
		return 1 + size(x.left) + t.rank(key, x.right)
	}
	return size(x.left)
}

// selectNode expects 0 <= rank < size(x).
func selectNode[K, V any](x *node[K, V], rank int) *node[K, V] {
	leftKeys := size(x.left)
	if leftKeys > rank {
		return selectNode(x.left, rank)
	} else if leftKeys < rank {
		return selectNode(x.right, rank-leftKeys-1)
	}
	return x
}

func maxNode[K, V any](x *node[K, V]) *node[K, V] {
	if x.right == nil {
		return x
	}
	return maxNode(x.right)
}

func minNode[K, V any](x *node[K, V]) *node[K, V] {
	if x.left == nil {
		return x
	}
	return minNode(x.left)
}

// delete expects key to be present below x. A node with two children takes
// the key of its in-order predecessor but keeps its own value.
func (t *Tree[K, V]) delete(x *node[K, V], key K) *node[K, V] {
	cmp := t.keyOrder(key, x.key)
	if cmp < 0 {
		x.left = t.delete(x.left, key)
	} else if cmp > 0 {
		x.right = t.delete(x.right, key)
	} else {
		if x.left == nil {
			return x.right
		} else if x.right == nil {
			return x.left
		}
		x.key = maxNode(x.left).key
		if t.debug {
			t.logger.Info("replacing key with predecessor", "key", key, "predecessor", x.key)
		}
		x.left = t.delete(x.left, x.key)
	}
	x.fixCount()
	return x
}

func (t *Tree[K, V]) iter(x *node[K, V], f func(K, V) error) error {
	if x == nil {
		return nil
	}
	if err := t.iter(x.left, f); err != nil {
		return err
	}
	if err := f(x.key, x.value); err != nil {
		return err
	}
	return t.iter(x.right, f)
}

// seekIter visits, in order, every entry of x whose key is >= from.
func (t *Tree[K, V]) seekIter(x *node[K, V], from K, f func(K, V) error) error {
	if x == nil {
		return nil
	}
	cmp := t.keyOrder(from, x.key)
	if cmp > 0 {
		return t.seekIter(x.right, from, f)
	}
	if cmp < 0 {
		if err := t.seekIter(x.left, from, f); err != nil {
			return err
		}
	}
	if err := f(x.key, x.value); err != nil {
		return err
	}
	return t.iter(x.right, f)
}

func (t *Tree[K, V]) dump() {
	fmt.Print(t.PrettyPrintKeys())
}
