// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 avl-set contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding an ordered set of unique
// keys, with parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are ordered by the "<" operator of their type; two keys are
// considered the same when neither is less than the other.  Inserting
// a key that is already present changes nothing, as does deleting a
// key that is absent.
//
// Each node caches the height and the size of its sub-tree, so the
// tree also answers order-statistic queries: the n-th smallest key
// and the rank of a key.
//
// Iterators address nodes, not positions: rebalancing moves links
// between nodes and never moves a key to another node, so an iterator
// stays valid until the node it addresses is deleted.  Stepping or
// dereferencing an iterator whose node has been deleted is a caller
// error, as is dereferencing End.
package avl
