// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 avl-set contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Delete - remove a key from the tree
// returns true if the key was present
func (tree *Tree[K]) Delete(key K) bool {
	root, removed := erase(key, tree.root)
	tree.root = root
	return removed
}

// internal delete routine
// returns the possibly updated sub-tree root
func erase[K constraints.Ordered](key K, p *node[K]) (*node[K], bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	switch {
	case key < p.key:
		p.left, removed = erase(key, p.left)
	case p.key < key:
		p.right, removed = erase(key, p.right)
	default: // found: unlink p
		removed = true
		l := p.left
		r := p.right
		if nil == r {
			return rebalance(l), true
		}
		// splice the successor node in place of p; the node itself
		// is moved so iterators on surviving keys stay valid
		p = first(r)
		p.right = eraseMin(r)
		p.left = l
	}
	return rebalance(p), removed
}

// detach the lowest node of a non-empty sub-tree
// returns the remaining sub-tree, rebalanced along the descent path
func eraseMin[K constraints.Ordered](p *node[K]) *node[K] {
	if nil == p.left {
		return p.right
	}
	p.left = eraseMin(p.left)
	return rebalance(p)
}
