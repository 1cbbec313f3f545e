package screen

import (
	"fyne.io/fyne/v2"
)

// Positioned objects carry their own origin inside an AbsoluteLayout.
type Positioned interface {
	Origin() fyne.Position
}

// AbsoluteLayout places each object at its own origin with its minimum size.
// Objects that are not Positioned stay at the container origin.
type AbsoluteLayout struct{}

func NewAbsoluteLayout() *AbsoluteLayout {
	return &AbsoluteLayout{}
}

func (al *AbsoluteLayout) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	for _, obj := range objects {
		obj.Resize(obj.MinSize())
		obj.Move(originOf(obj))
	}
}

func (al *AbsoluteLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		pos := originOf(obj)
		size := obj.MinSize()
		if right := pos.X + size.Width; right > width {
			width = right
		}
		if bottom := pos.Y + size.Height; bottom > height {
			height = bottom
		}
	}
	return fyne.NewSize(width, height)
}

func originOf(obj fyne.CanvasObject) fyne.Position {
	if p, ok := obj.(Positioned); ok {
		return p.Origin()
	}
	return fyne.NewPos(0, 0)
}
