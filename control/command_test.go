package control

import (
	"testing"
	"time"

	"Countdown/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idleClock struct{}

func (idleClock) Every(time.Duration, func()) timer.Ticker { return idleTicker{} }

type idleTicker struct{}

func (idleTicker) Stop() {}

func TestApplyEditFlow(t *testing.T) {
	c := timer.New(timer.DefaultConfig(), nil, idleClock{})

	require.NoError(t, Command{Type: CmdBeginEdit}.Apply(c))
	require.NoError(t, Command{Type: CmdUpdateDraft, Field: timer.FieldMinutes, Text: "1"}.Apply(c))
	require.NoError(t, Command{Type: CmdUpdateDraft, Field: timer.FieldSeconds, Text: "30"}.Apply(c))
	require.NoError(t, Command{Type: CmdCommitEdit}.Apply(c))

	s := c.Snapshot()
	assert.Equal(t, 90, s.InitialSeconds)
	assert.False(t, s.IsEditing)

	require.NoError(t, Command{Type: CmdToggle}.Apply(c))
	assert.True(t, c.Snapshot().IsRunning)
	require.NoError(t, Command{Type: CmdReset}.Apply(c))
	assert.False(t, c.Snapshot().IsRunning)
}

func TestApplyReturnsCommitError(t *testing.T) {
	c := timer.New(timer.DefaultConfig(), nil, idleClock{})
	require.NoError(t, Command{Type: CmdBeginEdit}.Apply(c))
	require.NoError(t, Command{Type: CmdUpdateDraft, Field: timer.FieldMinutes, Text: "0"}.Apply(c))
	require.NoError(t, Command{Type: CmdUpdateDraft, Field: timer.FieldSeconds, Text: "0"}.Apply(c))

	assert.ErrorIs(t, Command{Type: CmdCommitEdit}.Apply(c), timer.ErrInvalidDuration)

	require.NoError(t, Command{Type: CmdCancelEdit}.Apply(c))
	assert.False(t, c.Snapshot().IsEditing)
}

func TestCommandTypeString(t *testing.T) {
	assert.Equal(t, "commit-edit", CmdCommitEdit.String())
	assert.Equal(t, "unknown", CommandType(42).String())
}
