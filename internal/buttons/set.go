package buttons

import (
	"errors"
	"fmt"
	"path"

	"math-helper/internal/assets"
	"math-helper/internal/logger"
)

const component = "buttons"

// Family is the static description of one screen's button collection.
type Family struct {
	Title       string
	ImageDir    string
	Definitions []Definition
}

// Launcher opens the module behind an activated button.
type Launcher func(screen Screen, module Module, b ModuleButton)

type options struct {
	log      logger.Logger
	launcher Launcher
	actions  map[Module]Action
}

type Option func(*options)

func WithLogger(log logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithLauncher routes every activation in the set to launch.
func WithLauncher(launch Launcher) Option {
	return func(o *options) { o.launcher = launch }
}

// WithAction overrides the activation effect of a single module.
func WithAction(module Module, action Action) Option {
	return func(o *options) {
		if o.actions == nil {
			o.actions = make(map[Module]Action)
		}
		o.actions[module] = action
	}
}

// Set is a constructed, ready-to-display button collection.
type Set struct {
	title   string
	buttons []*Button
	count   int
}

// NewSet loads every definition's image in declaration order. The first failure
// aborts construction and no Set is returned.
func NewSet(family Family, loader assets.Loader, opts ...Option) (*Set, error) {
	o := options{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	seen := make(map[string]struct{}, len(family.Definitions))
	buttons := make([]*Button, 0, len(family.Definitions))
	for i, def := range family.Definitions {
		if def.Ordinal != i {
			return nil, fmt.Errorf("buttons: %q has ordinal %d at position %d", def.Name, def.Ordinal, i)
		}
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("buttons: duplicate button name %q", def.Name)
		}
		seen[def.Name] = struct{}{}

		imagePath := path.Join(family.ImageDir, def.FileName)
		img, err := loader.Load(imagePath)
		if err == nil && img == nil {
			err = errors.New("loader returned no image")
		}
		if err != nil {
			if !errors.Is(err, assets.ErrAssetLoad) {
				err = &assets.AssetLoadError{Path: imagePath, Err: err}
			}
			o.log.Error(component, err, map[string]interface{}{
				"button": def.Name,
				"path":   imagePath,
			})
			return nil, err
		}

		buttons = append(buttons, &Button{
			def:      def,
			rendered: &Rendered{Name: def.Name, Image: img},
			action:   o.actionFor(def.Module),
		})
	}

	o.log.Debug(component, "button set constructed", map[string]interface{}{
		"title":   family.Title,
		"buttons": len(buttons),
	})

	return &Set{title: family.Title, buttons: buttons, count: len(buttons)}, nil
}

func (o *options) actionFor(module Module) Action {
	if action, ok := o.actions[module]; ok {
		return action
	}
	if o.launcher != nil {
		launch := o.launcher
		return func(screen Screen, b *Button) { launch(screen, module, b) }
	}
	return announce(o.log)
}

// announce is the default activation: a diagnostic naming the opened tutorial.
// Every module uses the same message format.
func announce(log logger.Logger) Action {
	return func(_ Screen, b *Button) {
		log.Info(component, fmt.Sprintf("Opening the %s Tutorial!", b.Name()), map[string]interface{}{
			"module":  string(b.Module()),
			"ordinal": b.Ordinal(),
		})
	}
}

// Buttons returns the collection in ordinal order.
func (s *Set) Buttons() []ModuleButton {
	out := make([]ModuleButton, len(s.buttons))
	for i, b := range s.buttons {
		out[i] = b
	}
	return out
}

func (s *Set) NumberOfButtons() int { return s.count }

func (s *Set) TitleText() string { return s.title }

// Lookup returns the button launching module.
func (s *Set) Lookup(module Module) (*Button, bool) {
	for _, b := range s.buttons {
		if b.def.Module == module {
			return b, true
		}
	}
	return nil, false
}
