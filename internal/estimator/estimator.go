// Package estimator computes reading time estimates from page count,
// language proximity, text difficulty and reader focus.
//
// The multipliers are independent and multiplicative:
//
//	timePerPage  = base * language * difficulty * focus
//	totalMinutes = round(pages * timePerPage)
//
// Arithmetic is exact decimal; rounding is half away from zero, which for
// the non-negative results produced here is round-half-up.
package estimator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Request holds the four estimator inputs
type Request struct {
	Pages      int
	Language   LanguageProximity
	Difficulty DifficultyLevel
	Focus      FocusLevel
}

// DefaultRequest returns the inputs the form starts with
func DefaultRequest() Request {
	return Request{
		Pages:      DefaultPages,
		Language:   DefaultLanguage,
		Difficulty: DefaultDifficulty,
		Focus:      DefaultFocus,
	}
}

// Validate checks that every level is inside its closed set
func (r Request) Validate() error {
	if !r.Language.Valid() {
		return fmt.Errorf("language %d: %w", int(r.Language), ErrUnknownLevel)
	}
	if !r.Difficulty.Valid() {
		return fmt.Errorf("difficulty %d: %w", int(r.Difficulty), ErrUnknownLevel)
	}
	if !r.Focus.Valid() {
		return fmt.Errorf("focus %d: %w", int(r.Focus), ErrUnknownLevel)
	}
	return nil
}

// Breakdown is an estimate together with the factors that produced it
type Breakdown struct {
	Minutes              int
	TimePerPage          decimal.Decimal
	LanguageMultiplier   decimal.Decimal
	DifficultyMultiplier decimal.Decimal
	FocusMultiplier      decimal.Decimal
}

// TimePerPage returns the minutes needed for a single page
func TimePerPage(language LanguageProximity, difficulty DifficultyLevel, focus FocusLevel) decimal.Decimal {
	return BaseTimePerPage.
		Mul(LanguageMultiplier(language)).
		Mul(DifficultyMultiplier(difficulty)).
		Mul(FocusMultiplier(focus))
}

// Estimate returns the total reading time in whole minutes.
// Page counts below zero are treated as zero; levels outside their
// declared sets panic.
func Estimate(pages int, language LanguageProximity, difficulty DifficultyLevel, focus FocusLevel) int {
	perPage := TimePerPage(language, difficulty, focus)
	if pages <= 0 {
		return 0
	}
	return int(perPage.Mul(decimal.NewFromInt(int64(pages))).Round(0).IntPart())
}

// Estimate is Estimate applied to the request fields
func (r Request) Estimate() int {
	return Estimate(r.Pages, r.Language, r.Difficulty, r.Focus)
}

// Explain computes the estimate and keeps every factor for display
func (r Request) Explain() Breakdown {
	return Breakdown{
		Minutes:              r.Estimate(),
		TimePerPage:          TimePerPage(r.Language, r.Difficulty, r.Focus),
		LanguageMultiplier:   LanguageMultiplier(r.Language),
		DifficultyMultiplier: DifficultyMultiplier(r.Difficulty),
		FocusMultiplier:      FocusMultiplier(r.Focus),
	}
}
