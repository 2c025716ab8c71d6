package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunState_String(t *testing.T) {
	tests := []struct {
		state    RunState
		expected string
	}{
		{StateTitle, "Title"},
		{StateStageSelect, "StageSelect"},
		{StatePlaying, "Playing"},
		{StateGameOver, "GameOver"},
		{StateWin, "Win"},
		{RunState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestRunStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, RunState(0), StateTitle)
	assert.Equal(t, RunState(1), StateStageSelect)
	assert.Equal(t, RunState(2), StatePlaying)
	assert.Equal(t, RunState(3), StateGameOver)
	assert.Equal(t, RunState(4), StateWin)
}

func TestRunState_Simulating(t *testing.T) {
	assert.True(t, StatePlaying.Simulating())
	assert.False(t, StateTitle.Simulating())
	assert.False(t, StateGameOver.Simulating())
	assert.False(t, StateWin.Simulating())
}
