// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamewindow

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the window creation parameters. They are immutable for
// the life of the window except size, which the live window reports
// dynamically via [Window.DrawSize].
type Settings struct {
	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the requested window size in logical
	// pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Fullscreen requests a fullscreen window on the primary monitor.
	Fullscreen bool `toml:"fullscreen"`

	// ExitOnEsc makes an escape key press request window close
	// instead of being delivered as an input event.
	ExitOnEsc bool `toml:"exit_on_esc"`

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool `toml:"vsync"`
}

// NewSettings returns settings with the given title and size and the
// usual defaults: windowed, exit on escape, vsync on.
func NewSettings(title string, width, height int) Settings {
	return Settings{
		Title:     title,
		Width:     width,
		Height:    height,
		ExitOnEsc: true,
		VSync:     true,
	}
}

// LoadSettings reads settings from a TOML file. Fields absent from the
// file keep the [NewSettings] defaults.
func LoadSettings(path string) (Settings, error) {
	s := NewSettings("", 640, 480)
	b, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("gamewindow: reading settings: %w", err)
	}
	if err := toml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("gamewindow: parsing settings %s: %w", path, err)
	}
	return s, nil
}
