// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamewindow defines the framework-neutral game window
// abstraction: a window with an OpenGL context that a game loop can
// query for size and close state, swap buffers on, and pull normalized
// input events from one at a time. Backends live in subpackages;
// [github.com/glkit/gamewindow/glfwwindow] is the GLFW one.
package gamewindow

import (
	"fmt"

	"github.com/glkit/gamewindow/input"
)

// Window is the capability set a game loop needs from a window.
// All methods must be called from the thread that owns the window;
// no concurrent use is supported.
type Window interface {
	// Settings returns the settings the window was created with.
	// Size is a snapshot of the requested size; use [Window.DrawSize]
	// for the live framebuffer size.
	Settings() Settings

	// DrawSize returns the current framebuffer size in pixels, which
	// can differ from the requested logical size on HiDPI screens.
	DrawSize() (width, height int)

	// ShouldClose reports whether a close has been requested, by the
	// user or via [Window.Close]. It is the cooperative loop
	// termination signal; nothing enforces it.
	ShouldClose() bool

	// Close marks the window for closing. It is idempotent and does
	// not destroy anything; resources go away at teardown.
	Close()

	// SwapBuffers presents the back buffer. Whether it blocks depends
	// on the vsync setting.
	SwapBuffers()

	// CaptureCursor with enabled=true hides the cursor and makes its
	// motion unbounded, for first-person-camera style input. With
	// enabled=false it restores the normal cursor and resets the
	// relative-motion baseline, so re-enabling capture cannot produce
	// a spurious large-delta move event.
	CaptureCursor(enabled bool)

	// PollEvent returns the next normalized input event, or nil when
	// no input is queued this cycle. It never blocks; nil just means
	// poll again next frame. The native event pump runs at most once
	// per call, and only when the internal buffer is empty.
	PollEvent() input.Event
}

// GLVersion is a requested OpenGL context version.
type GLVersion struct {
	Major, Minor int
}

// Common core-profile context versions.
var (
	GL21 = GLVersion{2, 1}
	GL32 = GLVersion{3, 2}
	GL33 = GLVersion{3, 3}
	GL41 = GLVersion{4, 1}
	GL43 = GLVersion{4, 3}
	GL46 = GLVersion{4, 6}
)

func (v GLVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
