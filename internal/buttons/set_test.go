package buttons_test

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"testing"

	"math-helper/internal/assets"
	"math-helper/internal/buttons"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader returns a small image for every path except those listed in fail.
type stubLoader struct {
	fail   map[string]bool
	loaded []string
}

func (l *stubLoader) Load(path string) (image.Image, error) {
	l.loaded = append(l.loaded, path)
	if l.fail[path] {
		return nil, &assets.AssetLoadError{Path: path, Err: errors.New("unreadable")}
	}
	return image.NewRGBA(image.Rect(0, 0, 240, 120)), nil
}

type entry struct {
	component, message string
	fields             map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []entry
}

func (r *recordingLogger) record(component, message string, fields map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{component, message, fields})
}

func (r *recordingLogger) Debug(c, m string, f map[string]interface{})   { r.record(c, m, f) }
func (r *recordingLogger) Info(c, m string, f map[string]interface{})    { r.record(c, m, f) }
func (r *recordingLogger) Warning(c, m string, f map[string]interface{}) { r.record(c, m, f) }
func (r *recordingLogger) Error(c string, err error, f map[string]interface{}) {
	r.record(c, err.Error(), f)
}

func (r *recordingLogger) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.message)
	}
	return out
}

func newGrade1(t *testing.T, opts ...buttons.Option) *buttons.Set {
	t.Helper()
	set, err := buttons.NewGrade1TutorialButtons(&stubLoader{}, opts...)
	require.NoError(t, err)
	return set
}

func TestGrade1TutorialScenario(t *testing.T) {
	set := newGrade1(t)

	assert.Equal(t, "Watch a Tutorial", set.TitleText())
	assert.Equal(t, 9, set.NumberOfButtons())

	first := set.Buttons()[0]
	assert.Equal(t, "Expansion", first.Name())
	assert.Equal(t, "1_expansion.png", first.FileName())
	assert.Equal(t, 300, first.X())
	assert.Equal(t, 200, first.Y())
	assert.Equal(t, 0, first.Ordinal())
}

func TestGrade1TutorialNamesInDeclarationOrder(t *testing.T) {
	set := newGrade1(t)

	var names []string
	for _, b := range set.Buttons() {
		names = append(names, b.Name())
	}
	assert.Equal(t, []string{
		"Expansion", "Measure", "Fractions", "Comparison", "Odd & Even",
		"Money", "Word Problems", "Arithmetic", "Estimation",
	}, names)
}

func TestCountMatchesButtons(t *testing.T) {
	set := newGrade1(t)
	assert.Len(t, set.Buttons(), set.NumberOfButtons())
}

func TestOrdinalsContiguousAndStable(t *testing.T) {
	set := newGrade1(t)

	first := set.Buttons()
	second := set.Buttons()
	require.Len(t, second, len(first))
	for i, b := range first {
		assert.Equal(t, i, b.Ordinal())
		assert.Same(t, b, second[i])
	}
}

func TestEveryButtonHasRenderedAsset(t *testing.T) {
	set := newGrade1(t)

	for _, b := range set.Buttons() {
		r := b.Rendered()
		require.NotNil(t, r, b.Name())
		assert.Equal(t, b.Name(), r.Name)
		w, h := r.Size()
		assert.Equal(t, 240, w)
		assert.Equal(t, 120, h)
	}
}

func TestImagesResolvedUnderFamilyDirInOrder(t *testing.T) {
	loader := &stubLoader{}
	_, err := buttons.NewGrade1TutorialButtons(loader)
	require.NoError(t, err)

	require.Len(t, loader.loaded, 9)
	assert.Equal(t, "moduleSelect/grade1-2/ActiveButtons/1_expansion.png", loader.loaded[0])
	assert.Equal(t, "moduleSelect/grade1-2/ActiveButtons/5_odd&even.png", loader.loaded[4])
	assert.Equal(t, "moduleSelect/grade1-2/ActiveButtons/9_estimation.png", loader.loaded[8])
}

func TestUnreadableAssetFailsConstruction(t *testing.T) {
	loader := &stubLoader{fail: map[string]bool{
		"moduleSelect/grade1-2/ActiveButtons/6_money.png": true,
	}}

	set, err := buttons.NewGrade1TutorialButtons(loader)
	assert.Nil(t, set)
	require.Error(t, err)
	assert.ErrorIs(t, err, assets.ErrAssetLoad)

	var loadErr *assets.AssetLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "moduleSelect/grade1-2/ActiveButtons/6_money.png", loadErr.Path)

	// Loading stops at the first failure.
	assert.Len(t, loader.loaded, 6)
}

// plainLoader reports failures as bare errors, without AssetLoadError.
type plainLoader struct {
	err error
}

func (l plainLoader) Load(string) (image.Image, error) {
	return nil, l.err
}

func TestPlainLoaderErrorBecomesAssetLoadError(t *testing.T) {
	cause := errors.New("permission denied")

	set, err := buttons.NewGrade1TutorialButtons(plainLoader{err: cause})
	assert.Nil(t, set)
	assert.ErrorIs(t, err, assets.ErrAssetLoad)
	assert.ErrorIs(t, err, cause)

	var loadErr *assets.AssetLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "moduleSelect/grade1-2/ActiveButtons/1_expansion.png", loadErr.Path)
}

func TestNilImageFailsConstruction(t *testing.T) {
	set, err := buttons.NewGrade1TutorialButtons(plainLoader{})
	assert.Nil(t, set)
	assert.ErrorIs(t, err, assets.ErrAssetLoad)
}

func TestDefaultActionAnnouncesTutorial(t *testing.T) {
	log := &recordingLogger{}
	set := newGrade1(t, buttons.WithLogger(log))

	set.Buttons()[6].DoAction(nil)

	assert.Contains(t, log.messages(), "Opening the Word Problems Tutorial!")
}

func TestLauncherReceivesScreenAndModule(t *testing.T) {
	type call struct {
		screen buttons.Screen
		module buttons.Module
		name   string
	}
	var calls []call
	set := newGrade1(t, buttons.WithLauncher(func(screen buttons.Screen, module buttons.Module, b buttons.ModuleButton) {
		calls = append(calls, call{screen, module, b.Name()})
	}))

	screen := "module-select"
	set.Buttons()[2].DoAction(screen)

	require.Len(t, calls, 1)
	assert.Equal(t, call{screen, buttons.Fractions, "Fractions"}, calls[0])
}

func TestWithActionOverridesSingleModule(t *testing.T) {
	log := &recordingLogger{}
	var money int
	set := newGrade1(t,
		buttons.WithLogger(log),
		buttons.WithAction(buttons.Money, func(buttons.Screen, *buttons.Button) { money++ }),
	)

	b, ok := set.Lookup(buttons.Money)
	require.True(t, ok)
	b.DoAction(nil)
	assert.Equal(t, 1, money)
	assert.NotContains(t, log.messages(), "Opening the Money Tutorial!")

	est, ok := set.Lookup(buttons.Estimation)
	require.True(t, ok)
	est.DoAction(nil)
	assert.Contains(t, log.messages(), "Opening the Estimation Tutorial!")
}

func TestLookupUnknownModule(t *testing.T) {
	set := newGrade1(t)
	_, ok := set.Lookup("geometry")
	assert.False(t, ok)
}

func TestSelectDifficultyIsNoOpForTutorialButtons(t *testing.T) {
	set := newGrade1(t)

	for _, b := range set.Buttons() {
		_, aware := b.(buttons.DifficultyAware)
		assert.False(t, aware, b.Name())

		before := b.(*buttons.Button).Definition()
		rendered := b.Rendered()
		for _, level := range []buttons.DifficultyLevel{buttons.Easy, buttons.Medium, buttons.Hard, 42} {
			assert.NotPanics(t, func() { buttons.SelectDifficulty(b, level) })
		}
		assert.Equal(t, before, b.(*buttons.Button).Definition())
		assert.Same(t, rendered, b.Rendered())
	}
}

type awareButton struct {
	buttons.ModuleButton
	picked []buttons.DifficultyLevel
}

func (a *awareButton) DifficultySelected(level buttons.DifficultyLevel) {
	a.picked = append(a.picked, level)
}

func TestSelectDifficultyForwardsToAwareButtons(t *testing.T) {
	set := newGrade1(t)
	aware := &awareButton{ModuleButton: set.Buttons()[0]}

	buttons.SelectDifficulty(aware, buttons.Hard)
	assert.Equal(t, []buttons.DifficultyLevel{buttons.Hard}, aware.picked)
}

func TestNewSetRejectsBadDefinitions(t *testing.T) {
	cases := map[string]buttons.Family{
		"out of order": {Definitions: []buttons.Definition{
			{Name: "A", FileName: "a.png", Ordinal: 1},
		}},
		"duplicate name": {Definitions: []buttons.Definition{
			{Name: "A", FileName: "a.png", Ordinal: 0},
			{Name: "A", FileName: "b.png", Ordinal: 1},
		}},
	}
	for name, family := range cases {
		t.Run(name, func(t *testing.T) {
			set, err := buttons.NewSet(family, &stubLoader{})
			assert.Nil(t, set)
			assert.Error(t, err)
		})
	}
}

func TestGrade1TutorialReturnsCopy(t *testing.T) {
	f := buttons.Grade1Tutorial()
	f.Definitions[0].Name = "Changed"
	assert.Equal(t, "Expansion", buttons.Grade1Tutorial().Definitions[0].Name)
}

func TestDifficultyLevelString(t *testing.T) {
	assert.Equal(t, "easy", buttons.Easy.String())
	assert.Equal(t, "hard", buttons.Hard.String())
	assert.Equal(t, fmt.Sprintf("DifficultyLevel(%d)", 7), buttons.DifficultyLevel(7).String())
}
