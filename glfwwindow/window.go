// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glfwwindow implements the [gamewindow.Window] interface on
// top of GLFW. It owns the native window and OpenGL context and
// translates the raw GLFW event stream into the normalized
// [input.Event] stream.
//
// GLFW requires its windows to live on the main OS thread; the package
// locks the calling goroutine to its thread at init, so create and
// drive windows from main.
package glfwwindow

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kataras/golog"

	"github.com/glkit/gamewindow"
	"github.com/glkit/gamewindow/input"
)

func init() {
	// GLFW event processing must run on the main OS thread.
	runtime.LockOSThread()
}

var logger = golog.Child("glfwwindow")

var (
	initOnce sync.Once
	initErr  error
)

// initGLFW initializes the GLFW library once per process.
func initGLFW() error {
	initOnce.Do(func() {
		initErr = glfw.Init()
	})
	return initErr
}

// Window is a GLFW-backed [gamewindow.Window].
type Window struct {
	glw      *glfw.Window
	settings gamewindow.Settings
	events   *translator
}

var _ gamewindow.Window = (*Window)(nil)

// New creates a window with an OpenGL context of the given version,
// core profile, forward-compatible. It installs the key, mouse-button,
// cursor-position, scroll, and character callbacks (character input is
// required for [input.Text] events), makes the context current,
// applies the vsync setting, and loads the OpenGL function pointers.
//
// Failure to create the window or context is not recoverable at this
// layer; the caller may retry with different parameters.
func New(v gamewindow.GLVersion, s gamewindow.Settings) (*Window, error) {
	if err := initGLFW(); err != nil {
		return nil, fmt.Errorf("glfwwindow: initializing glfw: %w", err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, v.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, v.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if s.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	glw, err := glfw.CreateWindow(s.Width, s.Height, s.Title, monitor, nil)
	if err != nil {
		logger.Errorf("creating %dx%d window with GL %v: %v", s.Width, s.Height, v, err)
		return nil, fmt.Errorf("glfwwindow: creating window with GL %v context: %w", v, err)
	}
	glw.MakeContextCurrent()
	if s.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if err := gl.InitWithProcAddrFunc(glfw.GetProcAddress); err != nil {
		return nil, fmt.Errorf("glfwwindow: loading OpenGL function pointers: %w", err)
	}

	w := newWindow(glw, s)
	logger.Debugf("created %dx%d window %q with GL %v context", s.Width, s.Height, s.Title, v)
	return w, nil
}

// FromExisting adapts an already-created GLFW window whose context was
// set up elsewhere. Settings are inferred from the live window: the
// requested size from the framebuffer, fullscreen from whether the
// window owns a monitor. The title is not recoverable from a live
// window and is left empty. OpenGL function pointers are not reloaded;
// that belongs to whoever created the context.
func FromExisting(glw *glfw.Window, exitOnEsc bool) *Window {
	glw.MakeContextCurrent()
	fw, fh := glw.GetFramebufferSize()
	s := gamewindow.Settings{
		Width:      fw,
		Height:     fh,
		Fullscreen: glw.GetMonitor() != nil,
		ExitOnEsc:  exitOnEsc,
	}
	return newWindow(glw, s)
}

func newWindow(glw *glfw.Window, s gamewindow.Settings) *Window {
	w := &Window{glw: glw, settings: s}
	w.events = newTranslator(s.ExitOnEsc, glfw.PollEvents, func() {
		glw.SetShouldClose(true)
	})

	glw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.events.add(rawKey{key: key, scancode: scancode, action: action, mods: mods})
	})
	glw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		w.events.add(rawMouseButton{button: button, action: action, mods: mods})
	})
	glw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events.add(rawCursorPos{x: x, y: y})
	})
	glw.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		w.events.add(rawScroll{dx: dx, dy: dy})
	})
	glw.SetCharCallback(func(_ *glfw.Window, ch rune) {
		w.events.add(rawChar{ch: ch})
	})
	return w
}

// Settings returns the settings the window was created with.
func (w *Window) Settings() gamewindow.Settings {
	return w.settings
}

// DrawSize returns the current framebuffer size in pixels.
func (w *Window) DrawSize() (width, height int) {
	return w.glw.GetFramebufferSize()
}

// ShouldClose reports whether a close has been requested.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// Close marks the window for closing. Idempotent.
func (w *Window) Close() {
	logger.Debugf("close requested for window %q", w.settings.Title)
	w.glw.SetShouldClose(true)
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// CaptureCursor hides the cursor and makes its motion unbounded when
// enabled. Disabling restores the normal cursor and resets the
// relative-motion baseline, so the first cursor event after capture is
// re-enabled cannot produce a spurious large-delta move.
func (w *Window) CaptureCursor(enabled bool) {
	logger.Debugf("cursor capture: %v", enabled)
	if enabled {
		w.glw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		return
	}
	w.glw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	w.events.resetMotion()
}

// PollEvent returns the next normalized input event, or nil when no
// input is queued this cycle. It never blocks. The native event pump
// runs at most once per call, and only when the internal buffer is
// empty.
func (w *Window) PollEvent() input.Event {
	return w.events.poll()
}
