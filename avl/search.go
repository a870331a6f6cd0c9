// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 avl-set contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Find - locate a specific key
// returns the end iterator if the key is not stored
func (tree *Tree[K]) Find(key K) Iterator[K] {
	return Iterator[K]{node: find(key, tree.root), tree: tree}
}

func find[K constraints.Ordered](key K, p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	switch {
	case key < p.key:
		return find(key, p.left)
	case p.key < key:
		return find(key, p.right)
	default:
		return p
	}
}

// LowerBound - locate the lowest stored key that is not less than key
// returns the end iterator if every stored key is less than key
func (tree *Tree[K]) LowerBound(key K) Iterator[K] {
	return Iterator[K]{node: lowerBound(key, tree.root), tree: tree}
}

func lowerBound[K constraints.Ordered](key K, p *node[K]) *node[K] {
	if nil == p {
		return nil
	}
	switch {
	case key < p.key:
		// any candidate in the left sub-tree beats p,
		// otherwise p is the lowest qualifying key on this path
		if q := lowerBound(key, p.left); nil != q {
			return q
		}
		return p
	case p.key < key:
		return lowerBound(key, p.right)
	default:
		return p
	}
}

// Index - rank of a key within the sorted order, counting from zero
// returns -1 if the key is not stored
func (tree *Tree[K]) Index(key K) int {
	return index(key, tree.root, 0)
}

func index[K constraints.Ordered](key K, p *node[K], base int) int {
	if nil == p {
		return -1
	}
	switch {
	case key < p.key:
		return index(key, p.left, base)
	case p.key < key:
		// skip left nodes + 1 (for this node)
		return index(key, p.right, base+count(p.left)+1)
	default:
		return base + count(p.left)
	}
}
