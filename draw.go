package bst

import (
	"github.com/xlab/treeprint"
)

// DrawKeys renders the tree with box-drawing characters, one key per line,
// each child tagged [L] or [R]. It is meant for people; use
// PrettyPrintKeys or PrintKeysInOrder where the exact format matters.
func (t *Tree[K, V]) DrawKeys() string {
	if t.root == nil {
		return treeprint.NewWithRoot("()").String()
	}
	tree := treeprint.NewWithRoot(t.root.key)
	drawChildren(tree, t.root)
	return tree.String()
}

func drawChildren[K, V any](branch treeprint.Tree, x *node[K, V]) {
	if x.left != nil {
		drawChildren(branch.AddMetaBranch("L", x.left.key), x.left)
	}
	if x.right != nil {
		drawChildren(branch.AddMetaBranch("R", x.right.key), x.right)
	}
}
