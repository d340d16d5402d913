// internal/session/machine_test.go
package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to State
		allowed  bool
	}{
		{StateLanding, StateHome, true},
		{StateHome, StateProcessing, true},
		{StateProcessing, StatePreview, true},
		{StateProcessing, StateFailed, true},
		{StatePreview, StateThemeSelect, true},
		{StateThemeSelect, StateStore, true},
		{StateFailed, StateProcessing, true},
		{StateStore, StateThemeSelect, true},

		{StateLanding, StateStore, false},
		{StateLanding, StateProcessing, false},
		{StateHome, StatePreview, false},
		{StateHome, StateStore, false},
		{StatePreview, StateStore, false},
		{StateStore, StateProcessing, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestCanNavigateExcludesGuardedStates(t *testing.T) {
	// Clients may never request Processing, Preview, Failed or Store
	// directly; those states belong to generation and theme selection.
	for from := range transitions {
		assert.False(t, CanNavigate(from, StateProcessing), "from %s", from)
		assert.False(t, CanNavigate(from, StatePreview), "from %s", from)
		assert.False(t, CanNavigate(from, StateFailed), "from %s", from)
		assert.False(t, CanNavigate(from, StateStore), "from %s", from)
	}

	assert.True(t, CanNavigate(StateLanding, StateHome))
	assert.True(t, CanNavigate(StatePreview, StateThemeSelect))
	assert.True(t, CanNavigate(StateStore, StateThemeSelect))
	assert.True(t, CanNavigate(StateFailed, StateHome))
}

func TestValidState(t *testing.T) {
	assert.True(t, ValidState(StateHome))
	assert.True(t, ValidState(StateStore))
	assert.False(t, ValidState(State("checkout")))
}
