package buttons

import (
	"slices"

	"math-helper/internal/assets"
)

const (
	Expansion    Module = "expansion"
	Measure      Module = "measure"
	Fractions    Module = "fractions"
	Comparison   Module = "comparison"
	OddEven      Module = "odd-even"
	Money        Module = "money"
	WordProblems Module = "word-problems"
	Arithmetic   Module = "arithmetic"
	Estimation   Module = "estimation"
)

var grade1Tutorial = Family{
	Title:    "Watch a Tutorial",
	ImageDir: "moduleSelect/grade1-2/ActiveButtons",
	Definitions: []Definition{
		{Module: Expansion, Name: "Expansion", FileName: "1_expansion.png", X: 300, Y: 200, Ordinal: 0},
		{Module: Measure, Name: "Measure", FileName: "2_measure.png", X: 590, Y: 200, Ordinal: 1},
		{Module: Fractions, Name: "Fractions", FileName: "3_fractions.png", X: 303, Y: 375, Ordinal: 2},
		{Module: Comparison, Name: "Comparison", FileName: "4_comparison.png", X: 593, Y: 375, Ordinal: 3},
		{Module: OddEven, Name: "Odd & Even", FileName: "5_odd&even.png", X: 300, Y: 200, Ordinal: 4},
		{Module: Money, Name: "Money", FileName: "6_money.png", X: 590, Y: 200, Ordinal: 5},
		{Module: WordProblems, Name: "Word Problems", FileName: "7_wordProblems.png", X: 300, Y: 375, Ordinal: 6},
		{Module: Arithmetic, Name: "Arithmetic", FileName: "8_arithmetic.png", X: 590, Y: 375, Ordinal: 7},
		{Module: Estimation, Name: "Estimation", FileName: "9_estimation.png", X: 300, Y: 200, Ordinal: 8},
	},
}

// Grade1Tutorial returns the "Watch a Tutorial" collection for Grade 1-2 students.
func Grade1Tutorial() Family {
	f := grade1Tutorial
	f.Definitions = slices.Clone(grade1Tutorial.Definitions)
	return f
}

// NewGrade1TutorialButtons builds the Grade 1-2 tutorial buttons from loader,
// which is rooted at the application's image directory.
func NewGrade1TutorialButtons(loader assets.Loader, opts ...Option) (*Set, error) {
	return NewSet(Grade1Tutorial(), loader, opts...)
}
