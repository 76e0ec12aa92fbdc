package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputKeyStateTransitions(t *testing.T) {
	require.NoError(t, InputInitialize())
	t.Cleanup(func() { InputShutdown() })

	assert.True(t, InputIsKeyUp(KEY_G))
	assert.True(t, InputWasKeyUp(KEY_G))

	require.NoError(t, InputProcessKey(KEY_G, true))
	assert.True(t, InputIsKeyDown(KEY_G))
	assert.True(t, InputWasKeyUp(KEY_G))

	// frame boundary
	require.NoError(t, InputUpdate(0.016))
	assert.True(t, InputIsKeyDown(KEY_G))
	assert.True(t, InputWasKeyDown(KEY_G))

	require.NoError(t, InputProcessKey(KEY_G, false))
	assert.True(t, InputIsKeyUp(KEY_G))
	assert.True(t, InputWasKeyDown(KEY_G))
	require.NoError(t, InputUpdate(0.016))
}

func TestInputProcessKeyFiresEvents(t *testing.T) {
	EventSystemInitialize()
	require.NoError(t, InputInitialize())
	t.Cleanup(func() { InputShutdown() })

	listener := &struct{ codes []KeyCode }{}
	onKey := func(code SystemEventCode, sender interface{}, listenerInst interface{}, data EventContext) bool {
		l := listenerInst.(*struct{ codes []KeyCode })
		l.codes = append(l.codes, KeyCode(data.Data.U16[0]))
		return false
	}
	require.True(t, EventRegister(EVENT_CODE_KEY_PRESSED, listener, onKey))
	t.Cleanup(func() { EventUnregister(EVENT_CODE_KEY_PRESSED, listener, onKey) })

	require.NoError(t, InputProcessKey(KEY_TAB, true))
	// repeated press without a release does not fire again
	require.NoError(t, InputProcessKey(KEY_TAB, true))
	require.NoError(t, InputProcessKey(KEY_TAB, false))

	assert.Equal(t, []KeyCode{KEY_TAB}, listener.codes)
}

func TestInputIgnoresOutOfRangeKeys(t *testing.T) {
	require.NoError(t, InputInitialize())
	t.Cleanup(func() { InputShutdown() })

	assert.NoError(t, InputProcessKey(KEYS_MAX_KEYS, true))
}
