// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 avl-set contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Iterator - cursor addressing one key of a tree, or the position one
// past the highest key (the end iterator)
//
// Iterators are plain comparable values: two iterators are equal with
// "==" when they address the same node of the same tree.  The end
// iterator keeps its owning tree so that Prev from it reaches the
// highest key.
type Iterator[K constraints.Ordered] struct {
	node *node[K]
	tree *Tree[K]
}

// Begin - iterator at the lowest key, End for an empty tree
func (tree *Tree[K]) Begin() Iterator[K] {
	return Iterator[K]{node: first(tree.root), tree: tree}
}

// End - the past-the-end iterator
func (tree *Tree[K]) End() Iterator[K] {
	return Iterator[K]{node: nil, tree: tree}
}

// First - same position as Begin
func (tree *Tree[K]) First() Iterator[K] {
	return tree.Begin()
}

// Last - iterator at the highest key, End for an empty tree
func (tree *Tree[K]) Last() Iterator[K] {
	return Iterator[K]{node: last(tree.root), tree: tree}
}

// Valid - false only for the end iterator
func (it Iterator[K]) Valid() bool {
	return nil != it.node
}

// Key - read the key under the cursor
// dereferencing the end iterator is a caller error
func (it Iterator[K]) Key() K {
	return it.node.key
}

// Next - iterator at the next highest key, End after the highest
// stepping from the end iterator is a caller error
func (it Iterator[K]) Next() Iterator[K] {
	p := it.node
	if nil != p.right {
		it.node = first(p.right)
		return it
	}
	// climb until this sub-tree hangs off a left child link
	for nil != p.up && p.up.right == p {
		p = p.up
	}
	it.node = p.up
	return it
}

// Prev - iterator at the next lowest key
// from the end iterator this is the highest key of the tree
func (it Iterator[K]) Prev() Iterator[K] {
	if nil == it.node {
		it.node = last(it.tree.root)
		return it
	}
	p := it.node
	if nil != p.left {
		it.node = last(p.left)
		return it
	}
	for nil != p.up && p.up.left == p {
		p = p.up
	}
	it.node = p.up
	return it
}
