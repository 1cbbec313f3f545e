// Package buttons describes the fixed button collections shown on module-select
// screens and builds their rendered assets.
package buttons

import (
	"fmt"
	"image"
)

// Screen is the opaque host screen handle passed to activation behavior.
type Screen interface{}

// Module tags the tutorial or lesson a button launches.
type Module string

// DifficultyLevel is the level picked on the difficulty-select screen.
type DifficultyLevel int

const (
	Easy DifficultyLevel = iota
	Medium
	Hard
)

func (l DifficultyLevel) String() string {
	switch l {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("DifficultyLevel(%d)", int(l))
	}
}

// Definition is the static descriptor of one button.
type Definition struct {
	Module   Module
	Name     string
	FileName string
	X, Y     int
	Ordinal  int
}

// Rendered is the decoded, display-ready form of a button's asset.
type Rendered struct {
	Name  string
	Image image.Image
}

// Size returns the pixel dimensions of the decoded image.
func (r *Rendered) Size() (int, int) {
	if r == nil || r.Image == nil {
		return 0, 0
	}
	b := r.Image.Bounds()
	return b.Dx(), b.Dy()
}

// ModuleButton is what every module-select button family provides to a screen.
type ModuleButton interface {
	Name() string
	FileName() string
	X() int
	Y() int
	Ordinal() int
	Rendered() *Rendered
	DoAction(screen Screen)
}

// DifficultyAware is implemented by button families that react to a difficulty choice.
type DifficultyAware interface {
	DifficultySelected(level DifficultyLevel)
}

// SelectDifficulty forwards level to b when it is difficulty aware and does nothing otherwise.
func SelectDifficulty(b ModuleButton, level DifficultyLevel) {
	if aware, ok := b.(DifficultyAware); ok {
		aware.DifficultySelected(level)
	}
}

// EnumerableButtonFactory exposes one screen's ordered button collection.
type EnumerableButtonFactory interface {
	Buttons() []ModuleButton
	NumberOfButtons() int
	TitleText() string
}

// Action is the activation effect of a button.
type Action func(screen Screen, b *Button)

// Button pairs a Definition with its rendered asset and activation behavior.
type Button struct {
	def      Definition
	rendered *Rendered
	action   Action
}

func (b *Button) Name() string        { return b.def.Name }
func (b *Button) FileName() string    { return b.def.FileName }
func (b *Button) X() int              { return b.def.X }
func (b *Button) Y() int              { return b.def.Y }
func (b *Button) Ordinal() int        { return b.def.Ordinal }
func (b *Button) Module() Module      { return b.def.Module }
func (b *Button) Rendered() *Rendered { return b.rendered }

// Definition returns a copy of the button's static descriptor.
func (b *Button) Definition() Definition { return b.def }

func (b *Button) DoAction(screen Screen) {
	if b.action != nil {
		b.action(screen, b)
	}
}
