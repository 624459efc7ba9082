// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input defines the normalized input event model shared between
// window backends and the game loop: a closed set of event variants
// (press, release, text, move), the logical key and mouse-button code
// spaces they carry, and the FIFO queue used to buffer them.
//
// Events form a sum type over a fixed set of variants, matched with a
// type switch:
//
//	switch e := ev.(type) {
//	case input.Press:
//		...
//	case input.Move:
//		switch m := e.Motion.(type) {
//		case input.MouseRelative:
//			...
//		}
//	}
package input

import "fmt"

// Event is one normalized input event. The concrete types are
// [Press], [Release], [Text], and [Move]; no other implementations
// exist.
type Event interface {
	isEvent()
}

// Press reports a key or mouse button going down.
type Press struct {
	Source Source
}

// Release reports a key or mouse button going up.
type Release struct {
	Source Source
}

// Text carries one character of text input, rendered as a string.
// It is produced by the platform's character input path, after any
// keymap, modifier, and IME processing, so it is the right event for
// typing; use [Press] and [Release] for game controls.
type Text struct {
	Text string
}

// Move reports mouse motion, in one of the [Motion] forms.
type Move struct {
	Motion Motion
}

func (Press) isEvent()   {}
func (Release) isEvent() {}
func (Text) isEvent()    {}
func (Move) isEvent()    {}

func (e Press) String() string   { return fmt.Sprintf("Press{%v}", e.Source) }
func (e Release) String() string { return fmt.Sprintf("Release{%v}", e.Source) }
func (e Text) String() string    { return fmt.Sprintf("Text{%q}", e.Text) }
func (e Move) String() string    { return fmt.Sprintf("Move{%v}", e.Motion) }

// Source identifies what was pressed or released: a [Keyboard] key or
// a [Mouse] button.
type Source interface {
	isSource()
	String() string
}

// Keyboard is a [Source] carrying a logical [Key].
type Keyboard Key

// Mouse is a [Source] carrying a logical [MouseButton].
type Mouse MouseButton

func (Keyboard) isSource() {}
func (Mouse) isSource()    {}

func (k Keyboard) String() string { return "Keyboard(" + Key(k).String() + ")" }
func (m Mouse) String() string    { return "Mouse(" + MouseButton(m).String() + ")" }

// Motion is the payload of a [Move] event. The concrete types are
// [MouseCursor], [MouseRelative], and [MouseScroll].
type Motion interface {
	isMotion()
	String() string
}

// MouseCursor is the absolute cursor position in window coordinates.
type MouseCursor struct {
	X, Y float64
}

// MouseRelative is the cursor displacement since the previous
// [MouseCursor] position. It is synthesized by the window backend and
// always follows the absolute event it was derived from. The first
// motion after window creation, and the first after cursor capture is
// released, has no baseline and produces no relative event.
type MouseRelative struct {
	DX, DY float64
}

// MouseScroll is one scroll-wheel step, in native scroll units.
type MouseScroll struct {
	DX, DY float64
}

func (MouseCursor) isMotion()   {}
func (MouseRelative) isMotion() {}
func (MouseScroll) isMotion()   {}

func (m MouseCursor) String() string {
	return fmt.Sprintf("MouseCursor(%g, %g)", m.X, m.Y)
}

func (m MouseRelative) String() string {
	return fmt.Sprintf("MouseRelative(%g, %g)", m.DX, m.DY)
}

func (m MouseScroll) String() string {
	return fmt.Sprintf("MouseScroll(%g, %g)", m.DX, m.DY)
}
