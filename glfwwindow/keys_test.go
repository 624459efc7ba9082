// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfwwindow

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/glkit/gamewindow/input"
)

func TestMapKeyTotal(t *testing.T) {
	// Every code GLFW can deliver, including KeyUnknown (-1) and
	// anything unmapped, must yield a defined logical key.
	for kc := glfw.KeyUnknown; kc <= glfw.KeyLast; kc++ {
		k := mapKey(kc)
		assert.True(t, k >= input.KeyUnknown && k < input.KeysN, "glfw key %d maps to %v", kc, k)
	}
	// A code beyond the current table degrades to Unknown instead of
	// failing.
	assert.Equal(t, input.KeyUnknown, mapKey(glfw.KeyLast+1))
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		glfw glfw.Key
		want input.Key
	}{
		{glfw.KeyA, input.KeyA},
		{glfw.Key0, input.Key0},
		{glfw.KeyEnter, input.KeyReturn},
		{glfw.KeyEqual, input.KeyEquals},
		{glfw.KeyKPSubtract, input.KeyNumPadMinus},
		{glfw.KeyKPAdd, input.KeyNumPadPlus},
		{glfw.KeyLeftSuper, input.KeyLeftMeta},
		{glfw.KeyRightSuper, input.KeyRightMeta},
		{glfw.KeyEscape, input.KeyEscape},
		{glfw.KeyF24, input.KeyF24},
		// No portable logical equivalent.
		{glfw.KeyUnknown, input.KeyUnknown},
		{glfw.KeyApostrophe, input.KeyUnknown},
		{glfw.KeyGraveAccent, input.KeyUnknown},
		{glfw.KeyWorld1, input.KeyUnknown},
		{glfw.KeyWorld2, input.KeyUnknown},
		{glfw.KeyF25, input.KeyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapKey(tt.glfw), "glfw key %d", tt.glfw)
	}
}

func TestMapButtonTotal(t *testing.T) {
	for b := glfw.MouseButton1; b <= glfw.MouseButtonLast; b++ {
		mb := mapButton(b)
		assert.True(t, mb >= input.MouseUnknown && mb < input.MouseButtonsN, "glfw button %d maps to %v", b, mb)
	}
	assert.Equal(t, input.MouseUnknown, mapButton(glfw.MouseButtonLast+1))
}

func TestMapButton(t *testing.T) {
	assert.Equal(t, input.MouseLeft, mapButton(glfw.MouseButtonLeft))
	assert.Equal(t, input.MouseRight, mapButton(glfw.MouseButtonRight))
	assert.Equal(t, input.MouseMiddle, mapButton(glfw.MouseButtonMiddle))
	assert.Equal(t, input.MouseX1, mapButton(glfw.MouseButton4))
	assert.Equal(t, input.MouseX2, mapButton(glfw.MouseButton5))
	assert.Equal(t, input.MouseButton8, mapButton(glfw.MouseButton8))
}
