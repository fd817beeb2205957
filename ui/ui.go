package ui

import (
	"Countdown/control"
	"Countdown/i18n"
	"Countdown/timer"
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// App is what the screen needs from the application.
type App interface {
	Snapshot() timer.Snapshot
	EnqueueCommand(cmd control.Command)
}

const (
	replyTimeout  = 200 * time.Millisecond
	timeTextScale = 4
	windowWidth   = 360
	windowHeight  = 520
)

// TimerScreen renders a timer snapshot and turns taps into commands.
type TimerScreen struct {
	app            App
	window         fyne.Window
	maxDraftLength int

	timeText     *canvas.Text
	hintLabel    *widget.Label
	displayBox   *fyne.Container
	display      *TappableContainer
	minutesEntry *widget.Entry
	secondsEntry *widget.Entry
	saveButton   *widget.Button
	cancelButton *widget.Button
	editForm     *fyne.Container
	toggleButton *widget.Button
	resetButton  *widget.Button
	content      *fyne.Container

	editing bool
	syncing bool
}

// NewTimerScreen builds the screen. maxDraftLength limits each draft entry; 0 means unlimited.
func NewTimerScreen(a App, w fyne.Window, maxDraftLength int) *TimerScreen {
	s := &TimerScreen{app: a, window: w, maxDraftLength: maxDraftLength}

	s.timeText = canvas.NewText("--:--", theme.Color(theme.ColorNameForeground))
	s.timeText.TextSize = theme.TextHeadingSize() * timeTextScale
	s.timeText.TextStyle.Monospace = true
	s.timeText.Alignment = fyne.TextAlignCenter

	s.hintLabel = widget.NewLabel(i18n.T("Tap the time to edit it"))
	s.hintLabel.Alignment = fyne.TextAlignCenter
	s.hintLabel.Importance = widget.LowImportance

	s.display = NewTappableContainer(container.NewCenter(s.timeText), s.beginEdit, nil)
	s.displayBox = container.NewVBox(layout.NewSpacer(), s.display, s.hintLabel, layout.NewSpacer())

	s.minutesEntry = widget.NewEntry()
	s.minutesEntry.SetPlaceHolder("MM")
	s.minutesEntry.OnChanged = s.onDraftChanged(timer.FieldMinutes, s.minutesEntry)
	s.minutesEntry.OnSubmitted = func(string) { s.save() }

	s.secondsEntry = widget.NewEntry()
	s.secondsEntry.SetPlaceHolder("SS")
	s.secondsEntry.OnChanged = s.onDraftChanged(timer.FieldSeconds, s.secondsEntry)
	s.secondsEntry.OnSubmitted = func(string) { s.save() }

	s.saveButton = widget.NewButton(i18n.T("Save"), s.save)
	s.saveButton.Importance = widget.HighImportance
	s.cancelButton = widget.NewButton(i18n.T("Cancel"), s.cancel)

	separator := canvas.NewText(":", theme.Color(theme.ColorNameForeground))
	separator.TextSize = theme.TextHeadingSize()
	inputRow := container.NewGridWithColumns(3, s.minutesEntry, container.NewCenter(separator), s.secondsEntry)
	s.editForm = container.NewVBox(
		layout.NewSpacer(),
		inputRow,
		container.NewGridWithColumns(2, s.saveButton, s.cancelButton),
		layout.NewSpacer(),
	)
	s.editForm.Hide()

	s.toggleButton = widget.NewButtonWithIcon(i18n.T("Start"), theme.MediaPlayIcon(), s.toggle)
	s.toggleButton.Importance = widget.HighImportance
	s.resetButton = widget.NewButtonWithIcon(i18n.T("Reset"), theme.MediaReplayIcon(), s.reset)

	timerSection := container.NewStack(s.displayBox, s.editForm)
	controls := container.New(controlsLayout{}, s.toggleButton, s.resetButton)
	s.content = container.New(orientationLayout{}, container.NewPadded(timerSection), container.NewPadded(controls))

	s.render(a.Snapshot())
	return s
}

// Content returns the root canvas object of the screen.
func (s *TimerScreen) Content() fyne.CanvasObject {
	return s.content
}

// Update renders snap on the fyne goroutine.
func (s *TimerScreen) Update(snap timer.Snapshot) {
	fyne.Do(func() {
		s.render(snap)
	})
}

// Refresh re-renders the application's current snapshot.
func (s *TimerScreen) Refresh() {
	s.render(s.app.Snapshot())
}

// NotifyFinished shows the finished dialog on the fyne goroutine.
func (s *TimerScreen) NotifyFinished() {
	fyne.Do(s.ShowFinished)
}

// ShowFinished tells the user the countdown has ended.
func (s *TimerScreen) ShowFinished() {
	title, message := i18n.T("Timer Finished!"), i18n.T("Your countdown has ended.")
	dialog.ShowInformation(title, message, s.window)
	if app := fyne.CurrentApp(); app != nil {
		app.SendNotification(fyne.NewNotification(title, message))
	}
}

// ShowInvalidDuration tells the user the edited time was rejected.
func (s *TimerScreen) ShowInvalidDuration() {
	dialog.ShowInformation(i18n.T("Invalid Time"), i18n.T("Please enter a valid time greater than 0."), s.window)
}

// HandleKeyRune maps space to start/pause, r to reset and e to edit.
func (s *TimerScreen) HandleKeyRune(r rune) {
	switch r {
	case ' ':
		if !s.toggleButton.Disabled() {
			s.toggle()
		}
	case 'r', 'R':
		if !s.resetButton.Disabled() {
			s.reset()
		}
	case 'e', 'E':
		s.beginEdit()
	}
}

func (s *TimerScreen) render(snap timer.Snapshot) {
	s.timeText.Text = timer.FormatTime(snap.RemainingSeconds)
	if snap.IsWarningDisplay {
		s.timeText.Color = theme.Color(theme.ColorNameError)
		s.timeText.TextStyle.Bold = true
	} else {
		s.timeText.Color = theme.Color(theme.ColorNameForeground)
		s.timeText.TextStyle.Bold = false
	}
	s.timeText.Refresh()

	if snap.IsRunning {
		s.toggleButton.SetText(i18n.T("Pause"))
		s.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		s.toggleButton.SetText(i18n.T("Start"))
		s.toggleButton.SetIcon(theme.MediaPlayIcon())
	}

	if snap.IsEditing {
		s.toggleButton.Disable()
		s.resetButton.Disable()
	} else {
		s.toggleButton.Enable()
		s.resetButton.Enable()
	}

	switch {
	case snap.IsEditing && !s.editing:
		s.syncing = true
		s.minutesEntry.SetText(snap.DraftMinutes)
		s.secondsEntry.SetText(snap.DraftSeconds)
		s.syncing = false
		s.displayBox.Hide()
		s.editForm.Show()
	case !snap.IsEditing && s.editing:
		s.editForm.Hide()
		s.displayBox.Show()
	}
	s.editing = snap.IsEditing
}

// send posts cmd and waits briefly for the command loop to apply it.
func (s *TimerScreen) send(cmd control.Command) error {
	cmd.Reply = make(chan error, 1)
	s.app.EnqueueCommand(cmd)
	select {
	case err := <-cmd.Reply:
		return err
	case <-time.After(replyTimeout):
		return nil
	}
}

func (s *TimerScreen) toggle() {
	s.send(control.Command{Type: control.CmdToggle})
	s.Refresh()
}

func (s *TimerScreen) reset() {
	s.send(control.Command{Type: control.CmdReset})
	s.Refresh()
}

func (s *TimerScreen) beginEdit() {
	if s.editing {
		return
	}
	s.send(control.Command{Type: control.CmdBeginEdit})
	s.Refresh()
}

func (s *TimerScreen) save() {
	err := s.send(control.Command{Type: control.CmdCommitEdit})
	if errors.Is(err, timer.ErrInvalidDuration) {
		s.ShowInvalidDuration()
		return
	}
	s.Refresh()
}

func (s *TimerScreen) cancel() {
	s.send(control.Command{Type: control.CmdCancelEdit})
	s.Refresh()
}

func (s *TimerScreen) onDraftChanged(field timer.Field, entry *widget.Entry) func(string) {
	return func(text string) {
		if s.syncing {
			return
		}
		if clamped, cut := clampDraft(text, s.maxDraftLength); cut {
			entry.SetText(clamped)
			return
		}
		s.app.EnqueueCommand(control.Command{Type: control.CmdUpdateDraft, Field: field, Text: text})
	}
}

// clampDraft cuts text to limit runes and reports whether it had to.
func clampDraft(text string, limit int) (string, bool) {
	if limit <= 0 {
		return text, false
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text, false
	}
	return string(runes[:limit]), true
}

// CreateMainWindow builds the main window around a new TimerScreen.
func CreateMainWindow(a App, fyneApp fyne.App, maxDraftLength int) (fyne.Window, *TimerScreen) {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "Countdown"
	}
	w := fyneApp.NewWindow(title)

	screen := NewTimerScreen(a, w, maxDraftLength)
	w.Canvas().SetOnTypedRune(screen.HandleKeyRune)
	w.SetContent(screen.Content())
	w.Resize(fyne.NewSize(windowWidth, windowHeight))
	return w, screen
}

// TappableContainer wraps any canvas object and reports taps on it.
type TappableContainer struct {
	widget.BaseWidget
	Content           fyne.CanvasObject
	OnTappedPrimary   func()
	OnTappedSecondary func(e *fyne.PointEvent)
}

func NewTappableContainer(c fyne.CanvasObject, onP func(), onS func(e *fyne.PointEvent)) *TappableContainer {
	t := &TappableContainer{
		Content:           c,
		OnTappedPrimary:   onP,
		OnTappedSecondary: onS,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.Content)
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}

func (t *TappableContainer) TappedSecondary(e *fyne.PointEvent) {
	if t.OnTappedSecondary != nil {
		t.OnTappedSecondary(e)
	}
}
