package core

import "sync"

// Key code definitions
type KeyCode uint16

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_ENTER     KeyCode = 0x0D
	KEY_TAB       KeyCode = 0x09
	KEY_SHIFT     KeyCode = 0x10
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_B         KeyCode = 0x42
	KEY_D         KeyCode = 0x44
	KEY_G         KeyCode = 0x47
	KEY_F1        KeyCode = 0x70
	KEY_F2        KeyCode = 0x71
	KEY_F3        KeyCode = 0x72
	KEY_F4        KeyCode = 0x73

	KEYS_MAX_KEYS KeyCode = 0x100
)

type keyboardState struct {
	Keys [KEYS_MAX_KEYS]bool
}

type inputSystemState struct {
	KeyboardCurrent  keyboardState
	KeyboardPrevious keyboardState
}

var onceInput sync.Once
var inputInitialized bool = false
var inputState *inputSystemState = nil

func InputInitialize() error {
	onceInput.Do(func() {
		inputState = &inputSystemState{}
	})
	inputInitialized = true
	return nil
}

func InputShutdown() error {
	inputInitialized = false
	return nil
}

// InputUpdate copies current state to previous state. Call once per frame,
// after game logic has sampled the input.
func InputUpdate(deltaTime float64) error {
	if !inputInitialized {
		return nil
	}
	inputState.KeyboardPrevious = inputState.KeyboardCurrent
	return nil
}

// keyboard input
func InputIsKeyDown(key KeyCode) bool {
	if !inputInitialized {
		return false
	}
	return inputState.KeyboardCurrent.Keys[key]
}

func InputIsKeyUp(key KeyCode) bool {
	if !inputInitialized {
		return false
	}
	return !inputState.KeyboardCurrent.Keys[key]
}

func InputWasKeyDown(key KeyCode) bool {
	if !inputInitialized {
		return false
	}
	return inputState.KeyboardPrevious.Keys[key]
}

func InputWasKeyUp(key KeyCode) bool {
	if !inputInitialized {
		return false
	}
	return !inputState.KeyboardPrevious.Keys[key]
}

func InputProcessKey(key KeyCode, pressed bool) error {
	if !inputInitialized || key >= KEYS_MAX_KEYS {
		return nil
	}
	// Only handle this if the state actually changed.
	if inputState.KeyboardCurrent.Keys[key] != pressed {
		// Update internal state.
		inputState.KeyboardCurrent.Keys[key] = pressed

		code := EVENT_CODE_KEY_RELEASED
		if pressed {
			code = EVENT_CODE_KEY_PRESSED
		}

		// Fire off an event for immediate processing.
		context := EventContext{}
		context.Data.U16[0] = uint16(key)
		EventFire(code, nil, context)
	}
	return nil
}
