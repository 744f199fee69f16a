package bst

import (
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by the errors Validate returns.
var ErrCorrupt = errors.New("tree invariant violated")

// Validate checks that keys are in strictly increasing order and that every
// node's count is one more than the counts of its children. It is meant for
// tests and debugging; it visits every node.
func (t *Tree[K, V]) Validate() error {
	var last *K
	_, err := t.validate(t.root, &last)
	return err
}

func (t *Tree[K, V]) validate(x *node[K, V], last **K) (int, error) {
	if x == nil {
		return 0, nil
	}
	leftCount, err := t.validate(x.left, last)
	if err != nil {
		return 0, err
	}
	if *last != nil && t.keyOrder(**last, x.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v follows %v", ErrCorrupt, x.key, **last)
	}
	*last = &x.key
	rightCount, err := t.validate(x.right, last)
	if err != nil {
		return 0, err
	}
	if x.count != 1+leftCount+rightCount {
		return 0, fmt.Errorf("%w: node %v has count %d but %d nodes below and including it",
			ErrCorrupt, x.key, x.count, 1+leftCount+rightCount)
	}
	return x.count, nil
}
