// Package control defines lightweight command messages used by the UI to
// request actions from the application command loop. The command-loop
// centralizes state changes so the UI goroutine never waits on the controller.
package control

import "Countdown/timer"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdToggle CommandType = iota
	CmdReset
	CmdBeginEdit
	CmdUpdateDraft
	CmdCommitEdit
	CmdCancelEdit
)

func (t CommandType) String() string {
	switch t {
	case CmdToggle:
		return "toggle"
	case CmdReset:
		return "reset"
	case CmdBeginEdit:
		return "begin-edit"
	case CmdUpdateDraft:
		return "update-draft"
	case CmdCommitEdit:
		return "commit-edit"
	case CmdCancelEdit:
		return "cancel-edit"
	}
	return "unknown"
}

// Command is the message sent from UI to AppManager.commandLoop. Field and
// Text are only read by CmdUpdateDraft. The optional Reply channel receives
// the controller's error (nil for everything but a rejected commit).
type Command struct {
	Type  CommandType
	Field timer.Field
	Text  string
	Reply chan error // optional reply channel
}

// Apply runs the command against the controller.
func (cmd Command) Apply(c *timer.Controller) error {
	switch cmd.Type {
	case CmdToggle:
		c.Toggle()
	case CmdReset:
		c.Reset()
	case CmdBeginEdit:
		c.BeginEdit()
	case CmdUpdateDraft:
		c.UpdateDraft(cmd.Field, cmd.Text)
	case CmdCommitEdit:
		return c.CommitEdit()
	case CmdCancelEdit:
		c.CancelEdit()
	}
	return nil
}
