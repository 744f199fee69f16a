package bst

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PrintKeysInOrder returns the keys in order, with every subtree wrapped in
// parentheses and empty subtrees shown as "()". The result identifies both
// the keys and the shape of the tree, e.g. "((()1())2(()3()))".
func (t *Tree[K, V]) PrintKeysInOrder() string {
	var sb strings.Builder
	_ = t.WriteKeysInOrder(&sb)
	return sb.String()
}

// WriteKeysInOrder writes the output of PrintKeysInOrder to w.
func (t *Tree[K, V]) WriteKeysInOrder(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := writeInOrder(bw, t.root); err != nil {
		return fmt.Errorf("write keys: %w", err)
	}
	return bw.Flush()
}

func writeInOrder[K, V any](w *bufio.Writer, x *node[K, V]) error {
	if err := w.WriteByte('('); err != nil {
		return err
	}
	if x != nil {
		if err := writeInOrder(w, x.left); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, x.key); err != nil {
			return err
		}
		if err := writeInOrder(w, x.right); err != nil {
			return err
		}
	}
	return w.WriteByte(')')
}

// PrettyPrintKeys draws the tree one key per line. Each node is followed by
// its left subtree, then its right subtree, one level deeper; "|" marks the
// levels still inside a left subtree, and missing children are drawn as
// "-null":
//
//	-2
//	 |-1
//	 | |-null
//	 |  -null
//	  -3
//	   |-null
//	    -null
func (t *Tree[K, V]) PrettyPrintKeys() string {
	var sb strings.Builder
	_ = t.WritePrettyKeys(&sb)
	return sb.String()
}

// WritePrettyKeys writes the output of PrettyPrintKeys to w.
func (t *Tree[K, V]) WritePrettyKeys(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := writePretty(bw, t.root, ""); err != nil {
		return fmt.Errorf("write pretty keys: %w", err)
	}
	return bw.Flush()
}

func writePretty[K, V any](w *bufio.Writer, x *node[K, V], prefix string) error {
	if x == nil {
		_, err := w.WriteString(prefix + "-null\n")
		return err
	}
	if _, err := fmt.Fprintf(w, "%s-%v\n", prefix, x.key); err != nil {
		return err
	}
	prefix += " "
	if err := writePretty(w, x.left, prefix+"|"); err != nil {
		return err
	}
	return writePretty(w, x.right, prefix+" ")
}
