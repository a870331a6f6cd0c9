// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 avl-set contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Get - iterator at the index-th smallest key, counting from zero
// returns the end iterator if index is out of range
func (tree *Tree[K]) Get(index int) Iterator[K] {
	if index < 0 || index >= tree.Count() {
		return tree.End()
	}
	return Iterator[K]{node: get(index, tree.root), tree: tree}
}

func get[K constraints.Ordered](index int, p *node[K]) *node[K] {
	if nil == p {
		return nil
	}

	nl := count(p.left)

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p
}
