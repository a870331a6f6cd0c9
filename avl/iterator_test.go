// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 avl-set contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0r0zk01/avl-set/avl"
)

func TestIteratorForward(t *testing.T) {
	tree := avl.NewFromSlice([]int{4, 2, 6, 1, 3, 5, 7})

	it := tree.Begin()
	for i := 1; i <= 7; i += 1 {
		require.True(t, it.Valid(), "iterator ended early at: %d", i)
		assert.Equal(t, i, it.Key(), "wrong key")
		it = it.Next()
	}
	assert.Equal(t, tree.End(), it, "iterator did not end")
}

func TestIteratorBackward(t *testing.T) {
	tree := avl.NewFromSlice([]int{4, 2, 6, 1, 3, 5, 7})

	it := tree.End()
	for i := 7; i >= 1; i -= 1 {
		it = it.Prev()
		require.True(t, it.Valid(), "iterator ended early at: %d", i)
		assert.Equal(t, i, it.Key(), "wrong key")
	}
	assert.Equal(t, tree.Begin(), it, "iterator did not reach begin")
}

// iterators compare with "==" on node and owning tree identity
func TestIteratorEquality(t *testing.T) {
	tree := avl.NewFromSlice([]int{1, 2, 3})
	other := avl.NewFromSlice([]int{1, 2, 3})

	assert.True(t, tree.Begin() == tree.Find(1), "same position not equal")
	assert.True(t, tree.Find(2) == tree.Get(1), "same position not equal")
	assert.False(t, tree.End() == other.End(), "end iterators of distinct trees equal")
	assert.False(t, tree.Find(1) == tree.Find(2), "distinct positions equal")
}

func TestIteratorFirstLast(t *testing.T) {
	tree := avl.NewFromSlice([]string{"m", "c", "x"})

	assert.Equal(t, "c", tree.First().Key(), "wrong first key")
	assert.Equal(t, "x", tree.Last().Key(), "wrong last key")
	assert.Equal(t, tree.Begin(), tree.First(), "first differs from begin")
	assert.Equal(t, tree.Last(), tree.End().Prev(), "prev of end is not last")

	assert.Equal(t, tree.End(), tree.Last().Next(), "next of last is not end")
	assert.Equal(t, tree.End(), tree.First().Prev(), "prev of first is not end")
}

func TestIteratorAcrossRotations(t *testing.T) {
	tree := avl.New[int]()
	its := make(map[int]avl.Iterator[int])

	// inserting in order forces a rotation at nearly every step
	for i := 1; i <= 64; i += 1 {
		tree.Insert(i)
		its[i] = tree.Find(i)
	}

	// rotations relink nodes but never move keys between them
	for i := 1; i <= 64; i += 1 {
		assert.True(t, its[i] == tree.Find(i), "node for %d changed identity", i)
	}

	it := tree.Find(32)
	require.True(t, it.Valid(), "key missing")
	assert.Equal(t, 33, it.Next().Key(), "wrong successor")
	assert.Equal(t, 31, it.Prev().Key(), "wrong predecessor")
}

func TestIteratorSingleKey(t *testing.T) {
	tree := avl.New[int]()
	tree.Insert(7)

	it := tree.Begin()
	require.True(t, it.Valid(), "no first item")
	assert.Equal(t, 7, it.Key(), "wrong key")
	assert.Equal(t, tree.End(), it.Next(), "next of only key is not end")
	assert.Equal(t, tree.End(), it.Prev(), "prev of only key is not end")
	assert.Equal(t, it, tree.End().Prev(), "prev of end is not the only key")
}
