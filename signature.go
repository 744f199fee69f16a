package bst

import (
	"encoding/base64"

	"github.com/minio/blake2b-simd"
)

// Signature returns a digest of PrintKeysInOrder. Two trees have the same
// signature when they hold the same keys in the same shape; values are not
// included.
func (t *Tree[K, V]) Signature() string {
	h := blake2b.New256()
	_ = t.WriteKeysInOrder(h)
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
