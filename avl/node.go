// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 avl-set contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// a node in the tree
type node[K constraints.Ordered] struct {
	left   *node[K] // left sub-tree
	right  *node[K] // right sub-tree
	up     *node[K] // points to parent node
	key    K        // key part for ordering
	height int      // longest path down from here, leaf = 1
	nodes  int      // keys in this sub-tree including this one
}

// allocate a new leaf node
func newNode[K constraints.Ordered](key K) *node[K] {
	return &node[K]{
		key:    key,
		height: 1,
		nodes:  1,
	}
}

// cached height, zero for an absent sub-tree
func height[K constraints.Ordered](p *node[K]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// cached size, zero for an absent sub-tree
func count[K constraints.Ordered](p *node[K]) int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// only defined for a non-nil node
func balanceFactor[K constraints.Ordered](p *node[K]) int {
	return height(p.right) - height(p.left)
}

// recompute the cached metadata of a node from its children and
// repair the up pointers: rotations swap sub-tree roots without
// otherwise fixing back links, so each node's own up pointer is
// cleared here and re-established when its parent updates
func update[K constraints.Ordered](p *node[K]) {
	if nil == p {
		return
	}
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = hl + 1
	} else {
		p.height = hr + 1
	}
	p.nodes = count(p.left) + 1 + count(p.right)
	p.up = nil
	if nil != p.left {
		p.left.up = p
	}
	if nil != p.right {
		p.right.up = p
	}
}

// single right rotation
//
//	     u                v
//	    / \              / \
//	   v   C    →       A   u
//	  / \                  / \
//	 A   B                B   C
//
// returns the new sub-tree root
func rotateRight[K constraints.Ordered](u *node[K]) *node[K] {
	v := u.left
	u.left = v.right
	v.right = u
	update(u)
	update(v)
	return v
}

// single left rotation, mirror of rotateRight
func rotateLeft[K constraints.Ordered](v *node[K]) *node[K] {
	u := v.right
	v.right = u.left
	u.left = v
	update(v)
	update(u)
	return u
}

// restore the AVL invariant at p after a structural change below it,
// assuming both sub-trees already satisfy it themselves
// returns the possibly changed sub-tree root
func rebalance[K constraints.Ordered](p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	update(p)
	switch balanceFactor(p) {
	case +2: // right branch too tall
		if balanceFactor(p.right) < 0 {
			// big left rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	case -2: // left branch too tall
		if balanceFactor(p.left) > 0 {
			// big right rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	}
	return p
}

// internal: lowest node in a sub-tree
func first[K constraints.Ordered](p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func last[K constraints.Ordered](p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
