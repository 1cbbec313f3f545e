package screen

import (
	"image"

	"math-helper/internal/buttons"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ImageButton is the tappable widget for one module button's rendered asset.
type ImageButton struct {
	widget.BaseWidget

	button   buttons.ModuleButton
	image    *canvas.Image
	onTapped func(buttons.ModuleButton)
}

// NewImageButton wraps b's rendered asset. A button without one gets an empty,
// zero-sized image.
func NewImageButton(b buttons.ModuleButton, onTapped func(buttons.ModuleButton)) *ImageButton {
	rendered := b.Rendered()

	var src image.Image
	if rendered != nil {
		src = rendered.Image
	}
	img := canvas.NewImageFromImage(src)
	img.FillMode = canvas.ImageFillContain
	w, h := rendered.Size()
	img.SetMinSize(fyne.NewSize(float32(w), float32(h)))

	ib := &ImageButton{
		button:   b,
		image:    img,
		onTapped: onTapped,
	}
	ib.ExtendBaseWidget(ib)
	return ib
}

func (ib *ImageButton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ib.image)
}

func (ib *ImageButton) Tapped(_ *fyne.PointEvent) {
	if ib.onTapped != nil {
		ib.onTapped(ib.button)
	}
}

func (ib *ImageButton) Origin() fyne.Position {
	return fyne.NewPos(float32(ib.button.X()), float32(ib.button.Y()))
}

func (ib *ImageButton) Button() buttons.ModuleButton {
	return ib.button
}
