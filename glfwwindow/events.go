// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfwwindow

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glkit/gamewindow/input"
)

// rawEvent is one record from the native event stream, captured by the
// window callbacks during a pump. The concrete types mirror the GLFW
// event classes the window polls for.
type rawEvent interface {
	isRaw()
}

type rawKey struct {
	key      glfw.Key
	scancode int
	action   glfw.Action
	mods     glfw.ModifierKey
}

type rawMouseButton struct {
	button glfw.MouseButton
	action glfw.Action
	mods   glfw.ModifierKey
}

type rawCursorPos struct {
	x, y float64
}

type rawScroll struct {
	dx, dy float64
}

type rawChar struct {
	ch rune
}

func (rawKey) isRaw()         {}
func (rawMouseButton) isRaw() {}
func (rawCursorPos) isRaw()   {}
func (rawScroll) isRaw()      {}
func (rawChar) isRaw()        {}

// translator converts the raw event stream into normalized input
// events with a strict refill-then-drain discipline: the native pump
// runs only when the pending queue is empty, every raw record captured
// by that pump is translated in arrival order, and events are then
// served one at a time until the queue drains again.
//
// It is owned by the window and shares its single-thread discipline;
// the pump and requestClose hooks are injected so the translation
// logic does not touch a live window.
type translator struct {
	pending input.Queue
	batch   []rawEvent

	// last known cursor position, the relative-motion baseline.
	// hasLast is false until the first cursor event and after cursor
	// capture is released.
	lastX, lastY float64
	hasLast      bool

	exitOnEsc    bool
	pump         func()
	requestClose func()
}

func newTranslator(exitOnEsc bool, pump, requestClose func()) *translator {
	t := &translator{
		exitOnEsc:    exitOnEsc,
		pump:         pump,
		requestClose: requestClose,
	}
	t.pending.Init()
	return t
}

// add appends a raw record to the current batch. The window callbacks
// call it while the pump runs.
func (t *translator) add(ev rawEvent) {
	t.batch = append(t.batch, ev)
}

// poll returns the next normalized event, or nil when no input is
// queued. It never blocks: an empty native queue is a nil result, not
// an error.
func (t *translator) poll() input.Event {
	if t.pending.Len() == 0 {
		t.pump()
		for _, ev := range t.batch {
			t.translate(ev)
		}
		t.batch = t.batch[:0]
	}
	return t.pending.Next()
}

// resetMotion clears the relative-motion baseline. Called when cursor
// capture is released, so the next cursor event cannot pair with a
// stale position and emit a huge delta.
func (t *translator) resetMotion() {
	t.hasLast = false
}

// translate expands one raw record into zero, one, or two normalized
// events on the pending queue.
func (t *translator) translate(ev rawEvent) {
	switch ev := ev.(type) {
	case rawKey:
		if ev.key == glfw.KeyEscape && ev.action == glfw.Press && t.exitOnEsc {
			// Escape-to-quit is window policy, not input: request
			// close and surface nothing.
			t.requestClose()
			return
		}
		switch ev.action {
		case glfw.Press:
			t.pending.Push(input.Press{Source: input.Keyboard(mapKey(ev.key))})
		case glfw.Release:
			t.pending.Push(input.Release{Source: input.Keyboard(mapKey(ev.key))})
		}
		// Repeat is not surfaced; only edge transitions are.
	case rawMouseButton:
		switch ev.action {
		case glfw.Press:
			t.pending.Push(input.Press{Source: input.Mouse(mapButton(ev.button))})
		case glfw.Release:
			t.pending.Push(input.Release{Source: input.Mouse(mapButton(ev.button))})
		}
	case rawCursorPos:
		t.pending.Push(input.Move{Motion: input.MouseCursor{X: ev.x, Y: ev.y}})
		if t.hasLast {
			t.pending.Push(input.Move{Motion: input.MouseRelative{
				DX: ev.x - t.lastX,
				DY: ev.y - t.lastY,
			}})
		}
		t.lastX, t.lastY = ev.x, ev.y
		t.hasLast = true
	case rawScroll:
		t.pending.Push(input.Move{Motion: input.MouseScroll{DX: ev.dx, DY: ev.dy}})
	case rawChar:
		t.pending.Push(input.Text{Text: string(ev.ch)})
	}
	// Anything else is filtered, not an error.
}
