// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 avl-set contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Tree - type to hold the root node of a tree
type Tree[K constraints.Ordered] struct {
	root *node[K]
}

// New - create an initially empty tree
func New[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{
		root: nil,
	}
}

// NewFromSlice - create a tree holding the unique keys of a slice,
// each inserted by the normal insert rule
func NewFromSlice[K constraints.Ordered](keys []K) *Tree[K] {
	tree := New[K]()
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree
}

// IsEmpty - true if tree contains no keys
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of keys currently in the tree
func (tree *Tree[K]) Count() int {
	return count(tree.root)
}

// Depth - number of nodes on the longest path from the root down,
// zero for an empty tree
func (tree *Tree[K]) Depth() int {
	return height(tree.root)
}
