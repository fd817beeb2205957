package ui

import (
	"fyne.io/fyne/v2"
)

const sectionGap float32 = 8

// IsLandscape reports whether size is wider than it is tall.
func IsLandscape(size fyne.Size) bool {
	return size.Width > size.Height
}

// orientationLayout places the timer section (objects[0]) above the controls
// (objects[1]) in portrait and to their left in landscape.
type orientationLayout struct{}

func (orientationLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 2 {
		return
	}
	timerSection, controls := objects[0], objects[1]

	if IsLandscape(size) {
		timerWidth := (size.Width - sectionGap) * 2 / 3
		timerSection.Move(fyne.NewPos(0, 0))
		timerSection.Resize(fyne.NewSize(timerWidth, size.Height))
		controls.Move(fyne.NewPos(timerWidth+sectionGap, 0))
		controls.Resize(fyne.NewSize(size.Width-timerWidth-sectionGap, size.Height))
		return
	}

	controlsHeight := controls.MinSize().Height
	timerHeight := size.Height - controlsHeight - sectionGap
	if timerHeight < 0 {
		timerHeight = 0
	}
	timerSection.Move(fyne.NewPos(0, 0))
	timerSection.Resize(fyne.NewSize(size.Width, timerHeight))
	controls.Move(fyne.NewPos(0, timerHeight+sectionGap))
	controls.Resize(fyne.NewSize(size.Width, controlsHeight))
}

func (orientationLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) != 2 {
		return fyne.NewSize(0, 0)
	}
	timerMin, controlsMin := objects[0].MinSize(), objects[1].MinSize()
	return fyne.NewSize(
		fyne.Max(timerMin.Width, controlsMin.Width),
		timerMin.Height+controlsMin.Height+sectionGap,
	)
}

// controlsLayout lines buttons up in an equal-width row when it is wide and
// in a column when it is tall.
type controlsLayout struct{}

func (controlsLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	visible := visibleObjects(objects)
	if len(visible) == 0 {
		return
	}
	n := float32(len(visible))
	gaps := sectionGap * (n - 1)

	if size.Width >= size.Height {
		width := (size.Width - gaps) / n
		for i, o := range visible {
			height := o.MinSize().Height
			o.Move(fyne.NewPos(float32(i)*(width+sectionGap), (size.Height-height)/2))
			o.Resize(fyne.NewSize(width, height))
		}
		return
	}

	var total float32
	for _, o := range visible {
		total += o.MinSize().Height
	}
	y := (size.Height - total - gaps) / 2
	if y < 0 {
		y = 0
	}
	for _, o := range visible {
		height := o.MinSize().Height
		o.Move(fyne.NewPos(0, y))
		o.Resize(fyne.NewSize(size.Width, height))
		y += height + sectionGap
	}
}

func (controlsLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := visibleObjects(objects)
	var width, height float32
	for _, o := range visible {
		m := o.MinSize()
		width += m.Width
		height = fyne.Max(height, m.Height)
	}
	if len(visible) > 1 {
		width += sectionGap * float32(len(visible)-1)
	}
	return fyne.NewSize(width, height)
}

func visibleObjects(objects []fyne.CanvasObject) []fyne.CanvasObject {
	var visible []fyne.CanvasObject
	for _, o := range objects {
		if o.Visible() {
			visible = append(visible, o)
		}
	}
	return visible
}
