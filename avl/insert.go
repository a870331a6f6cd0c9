// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 avl-set contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Insert - add a key to the tree
// returns true if the key was added, false if it was already present
func (tree *Tree[K]) Insert(key K) bool {
	root, added := insert(key, tree.root)
	tree.root = root
	return added
}

// internal routine for insert
// returns the possibly updated sub-tree root
func insert[K constraints.Ordered](key K, p *node[K]) (*node[K], bool) {
	if nil == p { // insert new leaf
		return newNode(key), true
	}
	added := false
	switch {
	case key < p.key:
		p.left, added = insert(key, p.left)
	case p.key < key:
		p.right, added = insert(key, p.right)
	default: // an equivalent key is already stored
		return p, false
	}
	return rebalance(p), added
}
