// Package screen renders button collections as a Fyne module-select screen.
package screen

import (
	"fmt"

	"math-helper/internal/buttons"
	"math-helper/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const component = "screen"

// ModuleSelectScreen presents one EnumerableButtonFactory, a page at a time.
type ModuleSelectScreen struct {
	factory buttons.EnumerableButtonFactory
	log     logger.Logger

	title     *widget.Label
	pageLabel *widget.Label
	prev      *widget.Button
	next      *widget.Button
	body      *fyne.Container
	content   *fyne.Container

	pages [][]*ImageButton
	page  int
}

func NewModuleSelectScreen(factory buttons.EnumerableButtonFactory, log logger.Logger) *ModuleSelectScreen {
	if log == nil {
		log = logger.Nop()
	}
	s := &ModuleSelectScreen{
		factory: factory,
		log:     log,
	}

	s.initializeComponents()
	s.buildLayout()
	s.showPage(0)

	return s
}

func (s *ModuleSelectScreen) initializeComponents() {
	s.title = widget.NewLabelWithStyle(s.factory.TitleText(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.pageLabel = widget.NewLabel("")
	s.prev = widget.NewButton("Back", s.PrevPage)
	s.next = widget.NewButton("Next", s.NextPage)

	for _, page := range buttons.Paginate(s.factory.Buttons()) {
		widgets := make([]*ImageButton, 0, len(page))
		for _, b := range page {
			widgets = append(widgets, NewImageButton(b, s.activate))
		}
		s.pages = append(s.pages, widgets)
	}
}

func (s *ModuleSelectScreen) buildLayout() {
	s.body = container.New(NewAbsoluteLayout())

	pager := container.NewHBox(s.prev, s.pageLabel, s.next)

	s.content = container.NewBorder(
		s.title,                    // top
		container.NewCenter(pager), // bottom
		nil,                        // left
		nil,                        // right
		container.NewScroll(s.body),
	)
}

func (s *ModuleSelectScreen) activate(b buttons.ModuleButton) {
	s.log.Debug(component, "button activated", map[string]interface{}{
		"button":  b.Name(),
		"ordinal": b.Ordinal(),
		"page":    s.page,
	})
	b.DoAction(s)
}

func (s *ModuleSelectScreen) showPage(page int) {
	if len(s.pages) == 0 {
		s.pageLabel.SetText("")
		s.prev.Disable()
		s.next.Disable()
		return
	}
	if page < 0 || page >= len(s.pages) {
		return
	}
	s.page = page

	objects := make([]fyne.CanvasObject, 0, len(s.pages[page]))
	for _, ib := range s.pages[page] {
		objects = append(objects, ib)
	}
	s.body.Objects = objects
	s.body.Refresh()

	s.pageLabel.SetText(fmt.Sprintf("%d / %d", page+1, len(s.pages)))
	setEnabled(s.prev, page > 0)
	setEnabled(s.next, page < len(s.pages)-1)
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

// Content returns the root canvas object for a window.
func (s *ModuleSelectScreen) Content() fyne.CanvasObject {
	return s.content
}

func (s *ModuleSelectScreen) Title() string {
	return s.factory.TitleText()
}

func (s *ModuleSelectScreen) NextPage() { s.showPage(s.page + 1) }

func (s *ModuleSelectScreen) PrevPage() { s.showPage(s.page - 1) }

func (s *ModuleSelectScreen) Page() int { return s.page }

func (s *ModuleSelectScreen) PageCount() int { return len(s.pages) }

// Visible returns the widgets on the current page.
func (s *ModuleSelectScreen) Visible() []*ImageButton {
	if len(s.pages) == 0 {
		return nil
	}
	return s.pages[s.page]
}

// SelectDifficulty forwards a difficulty choice to every button that accepts one.
func (s *ModuleSelectScreen) SelectDifficulty(level buttons.DifficultyLevel) {
	for _, b := range s.factory.Buttons() {
		buttons.SelectDifficulty(b, level)
	}
}
