// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 avl-set contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K]) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp[K constraints.Ordered](p *node[K], up *node[K]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("up pointer fail at node: %v\n", p.key)
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckCounts - check the cached height and size of every sub-tree
func (tree *Tree[K]) CheckCounts() bool {
	_, _, ok := checkCounts(tree.root)
	return ok
}

// internal: recompute height and size bottom-up and compare with the caches
func checkCounts[K constraints.Ordered](p *node[K]) (int, int, bool) {
	if nil == p {
		return 0, 0, true
	}
	hl, nl, okl := checkCounts(p.left)
	hr, nr, okr := checkCounts(p.right)
	h := hl + 1
	if hr > hl {
		h = hr + 1
	}
	n := nl + 1 + nr
	if h != p.height || n != p.nodes {
		fmt.Printf("count fail at node: %v  height: %d expected: %d  nodes: %d expected: %d\n",
			p.key, p.height, h, p.nodes, n)
		return h, n, false
	}
	return h, n, okl && okr
}

// CheckBalanced - check the height balance of every node
func (tree *Tree[K]) CheckBalanced() bool {
	return checkBalanced(tree.root)
}

func checkBalanced[K constraints.Ordered](p *node[K]) bool {
	if nil == p {
		return true
	}
	b := balanceFactor(p)
	if b < -1 || b > 1 {
		fmt.Printf("balance fail at node: %v  factor: %d\n", p.key, b)
		return false
	}
	return checkBalanced(p.left) && checkBalanced(p.right)
}

// CheckOrdered - check the search tree ordering of every node
func (tree *Tree[K]) CheckOrdered() bool {
	ok := true
	var prev *node[K]

	var walk func(p *node[K])
	walk = func(p *node[K]) {
		if nil == p || !ok {
			return
		}
		walk(p.left)
		if nil != prev && !(prev.key < p.key) {
			fmt.Printf("order fail at node: %v  after: %v\n", p.key, prev.key)
			ok = false
		}
		prev = p
		walk(p.right)
	}
	walk(tree.root)
	return ok
}
