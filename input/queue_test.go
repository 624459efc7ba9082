// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue
	q.Init()

	q.Push(Press{Source: Keyboard(KeyA)})
	q.Push(Text{Text: "a"})
	q.Push(Release{Source: Keyboard(KeyA)})
	require.Equal(t, uint64(3), q.Len())

	assert.Equal(t, Press{Source: Keyboard(KeyA)}, q.Next())
	assert.Equal(t, Text{Text: "a"}, q.Next())
	assert.Equal(t, Release{Source: Keyboard(KeyA)}, q.Next())
	assert.Nil(t, q.Next())
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueEmpty(t *testing.T) {
	var q Queue
	q.Init()
	assert.Nil(t, q.Next())
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueReuseAfterDrain(t *testing.T) {
	var q Queue
	q.Init()

	for i := 0; i < 3; i++ {
		q.Push(Move{Motion: MouseScroll{DY: 1}})
		assert.Equal(t, Move{Motion: MouseScroll{DY: 1}}, q.Next())
		assert.Nil(t, q.Next())
	}
}
