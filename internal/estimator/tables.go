package estimator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BaseTimePerPage is the baseline minutes per page before any multiplier
var BaseTimePerPage = decimal.NewFromInt(1)

var languageMultipliers = [...]decimal.Decimal{
	LanguageNative:            decimal.RequireFromString("1"),
	LanguageUpperAdvanced:     decimal.RequireFromString("1.5"),
	LanguageUpperIntermediate: decimal.RequireFromString("2.5"),
	LanguageIntermediate:      decimal.RequireFromString("4"),
	LanguageLowerIntermediate: decimal.RequireFromString("6"),
	LanguageBeginner:          decimal.RequireFromString("10"),
	LanguageUnknownOrigin:     decimal.RequireFromString("20"),
}

var difficultyMultipliers = [...]decimal.Decimal{
	DifficultyBasic:      decimal.RequireFromString("1"),
	DifficultySimple:     decimal.RequireFromString("1.5"),
	DifficultyModerate:   decimal.RequireFromString("2"),
	DifficultyAdvanced:   decimal.RequireFromString("3"),
	DifficultyAcademic:   decimal.RequireFromString("4"),
	DifficultyDeepTheory: decimal.RequireFromString("5"),
}

var focusMultipliers = [...]decimal.Decimal{
	FocusDeepSync:        decimal.RequireFromString("0.8"),
	FocusStable:          decimal.RequireFromString("1"),
	FocusInterference:    decimal.RequireFromString("1.5"),
	FocusCriticalFatigue: decimal.RequireFromString("2"),
}

// Every level must have exactly one multiplier. A length mismatch makes one
// of these array sizes negative and fails compilation.
var (
	_ [len(languageMultipliers) - len(languageInfo)]struct{}
	_ [len(languageInfo) - len(languageMultipliers)]struct{}
	_ [len(difficultyMultipliers) - len(difficultyInfo)]struct{}
	_ [len(difficultyInfo) - len(difficultyMultipliers)]struct{}
	_ [len(focusMultipliers) - len(focusInfo)]struct{}
	_ [len(focusInfo) - len(focusMultipliers)]struct{}
)

// LanguageMultiplier returns the reading cost factor of a language proximity.
// It panics on a value outside the declared levels.
func LanguageMultiplier(l LanguageProximity) decimal.Decimal {
	if !l.Valid() {
		panic(fmt.Sprintf("estimator: invalid %v", l))
	}
	return languageMultipliers[l]
}

// DifficultyMultiplier returns the reading cost factor of a difficulty level.
// It panics on a value outside the declared levels.
func DifficultyMultiplier(d DifficultyLevel) decimal.Decimal {
	if !d.Valid() {
		panic(fmt.Sprintf("estimator: invalid %v", d))
	}
	return difficultyMultipliers[d]
}

// FocusMultiplier returns the reading cost factor of a focus level.
// It panics on a value outside the declared levels.
func FocusMultiplier(f FocusLevel) decimal.Decimal {
	if !f.Valid() {
		panic(fmt.Sprintf("estimator: invalid %v", f))
	}
	return focusMultipliers[f]
}

// Multiplier is a shorthand for LanguageMultiplier(l)
func (l LanguageProximity) Multiplier() decimal.Decimal { return LanguageMultiplier(l) }

// Multiplier is a shorthand for DifficultyMultiplier(d)
func (d DifficultyLevel) Multiplier() decimal.Decimal { return DifficultyMultiplier(d) }

// Multiplier is a shorthand for FocusMultiplier(f)
func (f FocusLevel) Multiplier() decimal.Decimal { return FocusMultiplier(f) }
