// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import "fmt"

// MouseButton is a logical mouse button. Backends translate their
// native button codes into these values; codes beyond the defined set
// translate to [MouseUnknown].
type MouseButton int32

const (
	// MouseUnknown is the fallback for native button codes outside
	// the defined set.
	MouseUnknown MouseButton = iota

	MouseLeft
	MouseRight
	MouseMiddle

	// MouseX1 and MouseX2 are the side buttons commonly bound to
	// back and forward.
	MouseX1
	MouseX2

	MouseButton6
	MouseButton7
	MouseButton8

	// MouseButtonsN is the number of defined logical buttons.
	MouseButtonsN
)

var mouseButtonNames = map[MouseButton]string{
	MouseUnknown: "Unknown",
	MouseLeft:    "Left",
	MouseRight:   "Right",
	MouseMiddle:  "Middle",
	MouseX1:      "X1",
	MouseX2:      "X2",
	MouseButton6: "Button6",
	MouseButton7: "Button7",
	MouseButton8: "Button8",
}

func (b MouseButton) String() string {
	if s, ok := mouseButtonNames[b]; ok {
		return s
	}
	return fmt.Sprintf("MouseButton(%d)", int32(b))
}
