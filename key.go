package bst

import (
	"bytes"
	"cmp"
	"reflect"
)

// A Key has a total order against other keys of its type.
type Key[K any] interface {
	// Order returns a negative number if this key sorts before the argument,
	// a positive number if after, and 0 if they are equal.
	Order(K) int
}

// Options controls optional behavior of a tree. A nil *Options means use the
// defaults.
type Options[V any] struct {
	// Logger receives debug tracing when Debug is set. Defaults to DiscardLogger.
	Logger Logger

	// Debug traces inserts and deletes to Logger.
	Debug bool

	// AbsentValue reports whether a value stands for "no value", in which
	// case Put deletes the key instead of storing it. Defaults to
	// IsNilValue.
	AbsentValue func(V) bool
}

// New returns an empty tree ordered by the keys' own Order method.
func New[K Key[K], V any](options *Options[V]) *Tree[K, V] {
	return NewWithCompare[K, V](func(a, b K) int { return a.Order(b) }, options)
}

// NewOrdered returns an empty tree for keys with a built-in order, such as
// integers and strings.
func NewOrdered[K cmp.Ordered, V any](options *Options[V]) *Tree[K, V] {
	return NewWithCompare[K, V](cmp.Compare[K], options)
}

// NewBytes returns an empty tree ordered by bytes.Compare.
func NewBytes[V any](options *Options[V]) *Tree[[]byte, V] {
	return NewWithCompare[[]byte, V](bytes.Compare, options)
}

// NewWithCompare returns an empty tree ordered by the given three-way
// comparison, which must return a negative number when a < b, a positive
// number when a > b, and 0 when they are equal.
func NewWithCompare[K, V any](compare func(a, b K) int, options *Options[V]) *Tree[K, V] {
	t := Tree[K, V]{
		keyOrder: compare,
		absent:   IsNilValue[V],
		logger:   DiscardLogger{},
	}
	if options != nil {
		if options.Logger != nil {
			t.logger = options.Logger
		}
		if options.AbsentValue != nil {
			t.absent = options.AbsentValue
		}
		t.debug = options.Debug
	}
	return &t
}

// IsNilValue reports whether v is a nil interface, pointer, map, slice,
// function or channel. Other kinds of value are never nil.
func IsNilValue[V any](v V) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// NeverAbsent can be set as Options.AbsentValue to make Put store every
// value, nil included.
func NeverAbsent[V any](V) bool {
	return false
}
