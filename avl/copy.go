// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 avl-set contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Clone - an independent deep copy of the tree
// no nodes are shared, so mutating the copy never affects the source
func (tree *Tree[K]) Clone() *Tree[K] {
	return &Tree[K]{
		root: clone(tree.root),
	}
}

// Assign - replace the contents with a deep copy of another tree
// assigning a tree to itself changes nothing
func (tree *Tree[K]) Assign(other *Tree[K]) {
	if tree == other {
		return
	}
	tree.root = clone(other.root)
}

// internal: post-order structural copy
func clone[K constraints.Ordered](p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	q := newNode(p.key)
	q.left = clone(p.left)
	q.right = clone(p.right)
	update(q)
	return q
}
