// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamewindow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettings(t *testing.T) {
	s := NewSettings("demo", 800, 600)
	assert.Equal(t, "demo", s.Title)
	assert.Equal(t, 800, s.Width)
	assert.Equal(t, 600, s.Height)
	assert.False(t, s.Fullscreen)
	assert.True(t, s.ExitOnEsc)
	assert.True(t, s.VSync)
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.toml")
	data := `
title = "loaded"
width = 1280
height = 720
fullscreen = true
vsync = false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "loaded", s.Title)
	assert.Equal(t, 1280, s.Width)
	assert.Equal(t, 720, s.Height)
	assert.True(t, s.Fullscreen)
	assert.False(t, s.VSync)
	assert.True(t, s.ExitOnEsc, "unset fields keep defaults")
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadSettingsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = ["), 0o644))
	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestGLVersionString(t *testing.T) {
	assert.Equal(t, "3.3", GL33.String())
	assert.Equal(t, "4.1", GL41.String())
}
