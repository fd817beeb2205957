package ui

import (
	"Countdown/control"
	"Countdown/i18n"
	"Countdown/timer"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeApp records commands and answers replies immediately.
type fakeApp struct {
	snap     timer.Snapshot
	errs     map[control.CommandType]error
	commands []control.Command
}

func (a *fakeApp) Snapshot() timer.Snapshot { return a.snap }

func (a *fakeApp) EnqueueCommand(cmd control.Command) {
	a.commands = append(a.commands, cmd)
	if cmd.Reply != nil {
		cmd.Reply <- a.errs[cmd.Type]
	}
}

func (a *fakeApp) types() []control.CommandType {
	var out []control.CommandType
	for _, c := range a.commands {
		out = append(out, c.Type)
	}
	return out
}

func stoppedSnapshot(remaining int) timer.Snapshot {
	return timer.Snapshot{
		Timer: timer.Timer{RemainingSeconds: remaining, InitialSeconds: 300},
		State: timer.StateStopped,
	}
}

func newTestScreen(t *testing.T, snap timer.Snapshot) (*TimerScreen, *fakeApp, fyne.Window) {
	test.NewTempApp(t)
	i18n.SetLang("en")
	a := &fakeApp{snap: snap, errs: map[control.CommandType]error{}}
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	s := NewTimerScreen(a, w, 2)
	w.SetContent(s.Content())
	w.Resize(fyne.NewSize(windowWidth, windowHeight))
	return s, a, w
}

func TestScreenRendersStoppedState(t *testing.T) {
	s, _, _ := newTestScreen(t, stoppedSnapshot(300))

	assert.Equal(t, "05:00", s.timeText.Text)
	assert.Equal(t, "Start", s.toggleButton.Text)
	assert.False(t, s.toggleButton.Disabled())
	assert.True(t, s.displayBox.Visible())
	assert.False(t, s.editForm.Visible())
}

func TestScreenRendersWarning(t *testing.T) {
	s, _, _ := newTestScreen(t, stoppedSnapshot(300))
	snap := stoppedSnapshot(9)
	snap.IsRunning = true
	snap.State = timer.StateRunning
	snap.IsWarningDisplay = true

	s.render(snap)

	assert.Equal(t, "00:09", s.timeText.Text)
	assert.Equal(t, theme.Color(theme.ColorNameError), s.timeText.Color)
	assert.Equal(t, "Pause", s.toggleButton.Text)
}

func TestToggleAndResetSendCommands(t *testing.T) {
	s, a, _ := newTestScreen(t, stoppedSnapshot(300))

	test.Tap(s.toggleButton)
	test.Tap(s.resetButton)

	assert.Equal(t, []control.CommandType{control.CmdToggle, control.CmdReset}, a.types())
}

func TestTapOnTimeBeginsEdit(t *testing.T) {
	s, a, _ := newTestScreen(t, stoppedSnapshot(125))
	editing := stoppedSnapshot(125)
	editing.IsEditing = true
	editing.State = timer.StateEditing
	editing.DraftMinutes, editing.DraftSeconds = "2", "5"
	a.snap = editing

	test.Tap(s.display)

	assert.Equal(t, []control.CommandType{control.CmdBeginEdit}, a.types())
	assert.True(t, s.editForm.Visible())
	assert.False(t, s.displayBox.Visible())
	assert.Equal(t, "2", s.minutesEntry.Text)
	assert.Equal(t, "5", s.secondsEntry.Text)
	assert.True(t, s.toggleButton.Disabled())
	assert.True(t, s.resetButton.Disabled())
}

func TestTypingSendsDrafts(t *testing.T) {
	s, a, _ := newTestScreen(t, stoppedSnapshot(300))
	s.minutesEntry.SetText("")
	a.commands = nil

	test.Type(s.minutesEntry, "12")

	require.NotEmpty(t, a.commands)
	last := a.commands[len(a.commands)-1]
	assert.Equal(t, control.CmdUpdateDraft, last.Type)
	assert.Equal(t, timer.FieldMinutes, last.Field)
	assert.Equal(t, "12", last.Text)
}

func TestInvalidSaveShowsDialog(t *testing.T) {
	s, a, w := newTestScreen(t, stoppedSnapshot(300))
	a.errs[control.CmdCommitEdit] = timer.ErrInvalidDuration

	test.Tap(s.saveButton)

	assert.Equal(t, []control.CommandType{control.CmdCommitEdit}, a.types())
	assert.NotNil(t, w.Canvas().Overlays().Top())
}

func TestClampDraft(t *testing.T) {
	got, cut := clampDraft("123", 2)
	assert.Equal(t, "12", got)
	assert.True(t, cut)

	got, cut = clampDraft("7", 2)
	assert.Equal(t, "7", got)
	assert.False(t, cut)

	_, cut = clampDraft("12345", 0)
	assert.False(t, cut)
}

func TestOrientationLayout(t *testing.T) {
	timerSection := canvas.NewRectangle(nil)
	timerSection.SetMinSize(fyne.NewSize(100, 100))
	controls := canvas.NewRectangle(nil)
	controls.SetMinSize(fyne.NewSize(80, 40))
	objects := []fyne.CanvasObject{timerSection, controls}
	l := orientationLayout{}

	l.Layout(objects, fyne.NewSize(300, 500))
	assert.Equal(t, fyne.NewSize(300, 500-40-sectionGap), timerSection.Size())
	assert.Equal(t, fyne.NewPos(0, 500-40), controls.Position())
	assert.Equal(t, fyne.NewSize(300, 40), controls.Size())

	l.Layout(objects, fyne.NewSize(608, 300))
	assert.Equal(t, fyne.NewSize(400, 300), timerSection.Size())
	assert.Equal(t, fyne.NewPos(408, 0), controls.Position())
	assert.Equal(t, fyne.NewSize(200, 300), controls.Size())

	assert.Equal(t, fyne.NewSize(100, 140+sectionGap), l.MinSize(objects))
}

func TestControlsLayoutRowAndColumn(t *testing.T) {
	a := canvas.NewRectangle(nil)
	a.SetMinSize(fyne.NewSize(50, 30))
	b := canvas.NewRectangle(nil)
	b.SetMinSize(fyne.NewSize(50, 30))
	objects := []fyne.CanvasObject{a, b}
	l := controlsLayout{}

	l.Layout(objects, fyne.NewSize(208, 60))
	assert.Equal(t, fyne.NewSize(100, 30), a.Size())
	assert.Equal(t, fyne.NewPos(108, 15), b.Position())

	l.Layout(objects, fyne.NewSize(100, 300))
	assert.Equal(t, fyne.NewSize(100, 30), a.Size())
	assert.Equal(t, a.Position().Y+30+sectionGap, b.Position().Y)

	assert.Equal(t, fyne.NewSize(108, 30), l.MinSize(objects))
	b.Hide()
	assert.Equal(t, fyne.NewSize(50, 30), l.MinSize(objects))
}

func TestIsLandscape(t *testing.T) {
	assert.True(t, IsLandscape(fyne.NewSize(800, 400)))
	assert.False(t, IsLandscape(fyne.NewSize(400, 800)))
	assert.False(t, IsLandscape(fyne.NewSize(500, 500)))
}
