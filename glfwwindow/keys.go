// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfwwindow

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glkit/gamewindow/input"
)

// keyMapping translates GLFW key codes to logical keys. Codes absent
// from the table translate to [input.KeyUnknown]: glfw.KeyUnknown
// itself, keys with no portable logical equivalent (apostrophe, grave
// accent, the world keys, F25), and any code a future GLFW release
// introduces.
var keyMapping = map[glfw.Key]input.Key{
	glfw.KeyA: input.KeyA,
	glfw.KeyB: input.KeyB,
	glfw.KeyC: input.KeyC,
	glfw.KeyD: input.KeyD,
	glfw.KeyE: input.KeyE,
	glfw.KeyF: input.KeyF,
	glfw.KeyG: input.KeyG,
	glfw.KeyH: input.KeyH,
	glfw.KeyI: input.KeyI,
	glfw.KeyJ: input.KeyJ,
	glfw.KeyK: input.KeyK,
	glfw.KeyL: input.KeyL,
	glfw.KeyM: input.KeyM,
	glfw.KeyN: input.KeyN,
	glfw.KeyO: input.KeyO,
	glfw.KeyP: input.KeyP,
	glfw.KeyQ: input.KeyQ,
	glfw.KeyR: input.KeyR,
	glfw.KeyS: input.KeyS,
	glfw.KeyT: input.KeyT,
	glfw.KeyU: input.KeyU,
	glfw.KeyV: input.KeyV,
	glfw.KeyW: input.KeyW,
	glfw.KeyX: input.KeyX,
	glfw.KeyY: input.KeyY,
	glfw.KeyZ: input.KeyZ,

	glfw.Key0: input.Key0,
	glfw.Key1: input.Key1,
	glfw.Key2: input.Key2,
	glfw.Key3: input.Key3,
	glfw.Key4: input.Key4,
	glfw.Key5: input.Key5,
	glfw.Key6: input.Key6,
	glfw.Key7: input.Key7,
	glfw.Key8: input.Key8,
	glfw.Key9: input.Key9,

	glfw.KeyF1:  input.KeyF1,
	glfw.KeyF2:  input.KeyF2,
	glfw.KeyF3:  input.KeyF3,
	glfw.KeyF4:  input.KeyF4,
	glfw.KeyF5:  input.KeyF5,
	glfw.KeyF6:  input.KeyF6,
	glfw.KeyF7:  input.KeyF7,
	glfw.KeyF8:  input.KeyF8,
	glfw.KeyF9:  input.KeyF9,
	glfw.KeyF10: input.KeyF10,
	glfw.KeyF11: input.KeyF11,
	glfw.KeyF12: input.KeyF12,
	glfw.KeyF13: input.KeyF13,
	glfw.KeyF14: input.KeyF14,
	glfw.KeyF15: input.KeyF15,
	glfw.KeyF16: input.KeyF16,
	glfw.KeyF17: input.KeyF17,
	glfw.KeyF18: input.KeyF18,
	glfw.KeyF19: input.KeyF19,
	glfw.KeyF20: input.KeyF20,
	glfw.KeyF21: input.KeyF21,
	glfw.KeyF22: input.KeyF22,
	glfw.KeyF23: input.KeyF23,
	glfw.KeyF24: input.KeyF24,

	glfw.KeyEscape:    input.KeyEscape,
	glfw.KeyEnter:     input.KeyReturn,
	glfw.KeyBackspace: input.KeyBackspace,
	glfw.KeyTab:       input.KeyTab,
	glfw.KeySpace:     input.KeySpace,
	glfw.KeyCapsLock:  input.KeyCapsLock,

	glfw.KeyMinus:        input.KeyMinus,
	glfw.KeyEqual:        input.KeyEquals,
	glfw.KeyLeftBracket:  input.KeyLeftBracket,
	glfw.KeyRightBracket: input.KeyRightBracket,
	glfw.KeyBackslash:    input.KeyBackslash,
	glfw.KeySemicolon:    input.KeySemicolon,
	glfw.KeyComma:        input.KeyComma,
	glfw.KeyPeriod:       input.KeyPeriod,
	glfw.KeySlash:        input.KeySlash,

	glfw.KeyInsert:   input.KeyInsert,
	glfw.KeyDelete:   input.KeyDelete,
	glfw.KeyHome:     input.KeyHome,
	glfw.KeyEnd:      input.KeyEnd,
	glfw.KeyPageUp:   input.KeyPageUp,
	glfw.KeyPageDown: input.KeyPageDown,

	glfw.KeyUp:    input.KeyUp,
	glfw.KeyDown:  input.KeyDown,
	glfw.KeyLeft:  input.KeyLeft,
	glfw.KeyRight: input.KeyRight,

	glfw.KeyPrintScreen: input.KeyPrintScreen,
	glfw.KeyScrollLock:  input.KeyScrollLock,
	glfw.KeyPause:       input.KeyPause,
	glfw.KeyMenu:        input.KeyMenu,

	glfw.KeyNumLock:    input.KeyNumLock,
	glfw.KeyKP0:        input.KeyNumPad0,
	glfw.KeyKP1:        input.KeyNumPad1,
	glfw.KeyKP2:        input.KeyNumPad2,
	glfw.KeyKP3:        input.KeyNumPad3,
	glfw.KeyKP4:        input.KeyNumPad4,
	glfw.KeyKP5:        input.KeyNumPad5,
	glfw.KeyKP6:        input.KeyNumPad6,
	glfw.KeyKP7:        input.KeyNumPad7,
	glfw.KeyKP8:        input.KeyNumPad8,
	glfw.KeyKP9:        input.KeyNumPad9,
	glfw.KeyKPDecimal:  input.KeyNumPadDecimal,
	glfw.KeyKPDivide:   input.KeyNumPadDivide,
	glfw.KeyKPMultiply: input.KeyNumPadMultiply,
	glfw.KeyKPSubtract: input.KeyNumPadMinus,
	glfw.KeyKPAdd:      input.KeyNumPadPlus,
	glfw.KeyKPEnter:    input.KeyNumPadEnter,
	glfw.KeyKPEqual:    input.KeyNumPadEquals,

	glfw.KeyLeftShift:    input.KeyLeftShift,
	glfw.KeyLeftControl:  input.KeyLeftControl,
	glfw.KeyLeftAlt:      input.KeyLeftAlt,
	glfw.KeyLeftSuper:    input.KeyLeftMeta,
	glfw.KeyRightShift:   input.KeyRightShift,
	glfw.KeyRightControl: input.KeyRightControl,
	glfw.KeyRightAlt:     input.KeyRightAlt,
	glfw.KeyRightSuper:   input.KeyRightMeta,
}

// mapKey translates a GLFW key code to its logical key. It is total:
// every possible code yields a defined value.
func mapKey(kc glfw.Key) input.Key {
	if k, ok := keyMapping[kc]; ok {
		return k
	}
	return input.KeyUnknown
}

var buttonMapping = map[glfw.MouseButton]input.MouseButton{
	glfw.MouseButton1: input.MouseLeft,
	glfw.MouseButton2: input.MouseRight,
	glfw.MouseButton3: input.MouseMiddle,
	glfw.MouseButton4: input.MouseX1,
	glfw.MouseButton5: input.MouseX2,
	glfw.MouseButton6: input.MouseButton6,
	glfw.MouseButton7: input.MouseButton7,
	glfw.MouseButton8: input.MouseButton8,
}

// mapButton translates a GLFW mouse button to its logical button.
// It is total in the same way as [mapKey].
func mapButton(b glfw.MouseButton) input.MouseButton {
	if mb, ok := buttonMapping[b]; ok {
		return mb
	}
	return input.MouseUnknown
}
