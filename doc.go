/*
Package bst provides an in-memory ordered map implemented as a binary
search tree whose nodes are augmented with subtree sizes. Besides Get, Put
and Delete, the size bookkeeping answers order-statistics queries (Rank,
Select, Median) by walking a single path from the root.

The tree is not rebalanced: its height depends on insertion order, and keys
inserted in sorted order degrade it to a list. All operations recurse to
the depth of the tree.

Ordering

Keys are compared with a three-way comparison. NewOrdered uses the
built-in order of integers, floats and strings; New uses a key type's own
Order method; NewWithCompare takes any comparison function.

Absent values

Put treats an absent value as a request to delete the key. By default a
nil pointer, interface, map, slice, function or channel is absent; set
Options.AbsentValue to change that.

Deletion

Deleting a key held by a node with two children moves the key of its
in-order predecessor into that node and removes the predecessor. Only the
key moves; the node keeps the value it already had.

Concurrency

A Tree is not safe for concurrent use. Callers sharing one between
goroutines must serialize access to it.
*/
package bst
