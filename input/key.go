// Copyright 2024 The gamewindow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import "fmt"

// Key is a logical keyboard key, independent of the native keycode
// space of any particular windowing backend. Backends translate their
// native codes into these values; codes with no portable logical
// equivalent translate to [KeyUnknown].
type Key int32

const (
	// KeyUnknown is the fallback for native codes that have no
	// portable logical equivalent. It is a valid value, not an error.
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	KeyEscape
	KeyReturn
	KeyBackspace
	KeyTab
	KeySpace
	KeyCapsLock

	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyComma
	KeyPeriod
	KeySlash

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyMenu

	KeyNumLock
	KeyNumPad0
	KeyNumPad1
	KeyNumPad2
	KeyNumPad3
	KeyNumPad4
	KeyNumPad5
	KeyNumPad6
	KeyNumPad7
	KeyNumPad8
	KeyNumPad9
	KeyNumPadDecimal
	KeyNumPadDivide
	KeyNumPadMultiply
	KeyNumPadMinus
	KeyNumPadPlus
	KeyNumPadEnter
	KeyNumPadEquals

	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyLeftMeta
	KeyRightShift
	KeyRightControl
	KeyRightAlt
	KeyRightMeta

	// KeysN is the number of defined logical keys.
	KeysN
)

var keyNames = map[Key]string{
	KeyUnknown:        "Unknown",
	KeyA:              "A",
	KeyB:              "B",
	KeyC:              "C",
	KeyD:              "D",
	KeyE:              "E",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyI:              "I",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyM:              "M",
	KeyN:              "N",
	KeyO:              "O",
	KeyP:              "P",
	KeyQ:              "Q",
	KeyR:              "R",
	KeyS:              "S",
	KeyT:              "T",
	KeyU:              "U",
	KeyV:              "V",
	KeyW:              "W",
	KeyX:              "X",
	KeyY:              "Y",
	KeyZ:              "Z",
	Key0:              "0",
	Key1:              "1",
	Key2:              "2",
	Key3:              "3",
	Key4:              "4",
	Key5:              "5",
	Key6:              "6",
	Key7:              "7",
	Key8:              "8",
	Key9:              "9",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyF13:            "F13",
	KeyF14:            "F14",
	KeyF15:            "F15",
	KeyF16:            "F16",
	KeyF17:            "F17",
	KeyF18:            "F18",
	KeyF19:            "F19",
	KeyF20:            "F20",
	KeyF21:            "F21",
	KeyF22:            "F22",
	KeyF23:            "F23",
	KeyF24:            "F24",
	KeyEscape:         "Escape",
	KeyReturn:         "Return",
	KeyBackspace:      "Backspace",
	KeyTab:            "Tab",
	KeySpace:          "Space",
	KeyCapsLock:       "CapsLock",
	KeyMinus:          "Minus",
	KeyEquals:         "Equals",
	KeyLeftBracket:    "LeftBracket",
	KeyRightBracket:   "RightBracket",
	KeyBackslash:      "Backslash",
	KeySemicolon:      "Semicolon",
	KeyComma:          "Comma",
	KeyPeriod:         "Period",
	KeySlash:          "Slash",
	KeyInsert:         "Insert",
	KeyDelete:         "Delete",
	KeyHome:           "Home",
	KeyEnd:            "End",
	KeyPageUp:         "PageUp",
	KeyPageDown:       "PageDown",
	KeyUp:             "Up",
	KeyDown:           "Down",
	KeyLeft:           "Left",
	KeyRight:          "Right",
	KeyPrintScreen:    "PrintScreen",
	KeyScrollLock:     "ScrollLock",
	KeyPause:          "Pause",
	KeyMenu:           "Menu",
	KeyNumLock:        "NumLock",
	KeyNumPad0:        "NumPad0",
	KeyNumPad1:        "NumPad1",
	KeyNumPad2:        "NumPad2",
	KeyNumPad3:        "NumPad3",
	KeyNumPad4:        "NumPad4",
	KeyNumPad5:        "NumPad5",
	KeyNumPad6:        "NumPad6",
	KeyNumPad7:        "NumPad7",
	KeyNumPad8:        "NumPad8",
	KeyNumPad9:        "NumPad9",
	KeyNumPadDecimal:  "NumPadDecimal",
	KeyNumPadDivide:   "NumPadDivide",
	KeyNumPadMultiply: "NumPadMultiply",
	KeyNumPadMinus:    "NumPadMinus",
	KeyNumPadPlus:     "NumPadPlus",
	KeyNumPadEnter:    "NumPadEnter",
	KeyNumPadEquals:   "NumPadEquals",
	KeyLeftShift:      "LeftShift",
	KeyLeftControl:    "LeftControl",
	KeyLeftAlt:        "LeftAlt",
	KeyLeftMeta:       "LeftMeta",
	KeyRightShift:     "RightShift",
	KeyRightControl:   "RightControl",
	KeyRightAlt:       "RightAlt",
	KeyRightMeta:      "RightMeta",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}
