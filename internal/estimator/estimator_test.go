package estimator

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestEstimateKnownValues(t *testing.T) {
	tests := []struct {
		name       string
		pages      int
		language   LanguageProximity
		difficulty DifficultyLevel
		focus      FocusLevel
		want       int
	}{
		{"native basic deep", 10, LanguageNative, DifficultyBasic, FocusDeepSync, 8},
		{"form defaults", 10, LanguageUpperIntermediate, DifficultyAdvanced, FocusStable, 75},
		{"worst case", 50, LanguageUnknownOrigin, DifficultyDeepTheory, FocusCriticalFatigue, 10000},
		{"zero pages", 0, LanguageBeginner, DifficultyAcademic, FocusInterference, 0},
		{"negative pages", -5, LanguageNative, DifficultyBasic, FocusStable, 0},
		{"half rounds up", 3, LanguageUpperAdvanced, DifficultyBasic, FocusStable, 5},
		{"one page deep sync", 1, LanguageNative, DifficultyBasic, FocusDeepSync, 1},
		{"fractional down", 1, LanguageNative, DifficultySimple, FocusDeepSync, 1},
		{"c1 simple distracted", 7, LanguageUpperAdvanced, DifficultySimple, FocusInterference, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.pages, tt.language, tt.difficulty, tt.focus)
			if got != tt.want {
				t.Errorf("Estimate(%d, %v, %v, %v) = %d, want %d",
					tt.pages, tt.language, tt.difficulty, tt.focus, got, tt.want)
			}
		})
	}
}

func TestDefaultRequest(t *testing.T) {
	req := DefaultRequest()
	if req.Pages != 10 || req.Language.Code() != "b2" || req.Difficulty.Code() != "b2" || req.Focus.Code() != "normal" {
		t.Fatalf("unexpected defaults: %+v", req)
	}
	if got := req.Estimate(); got != 75 {
		t.Errorf("default estimate = %d, want 75", got)
	}
}

func TestExplain(t *testing.T) {
	req := Request{Pages: 4, Language: LanguageIntermediate, Difficulty: DifficultyModerate, Focus: FocusDeepSync}
	b := req.Explain()

	if b.Minutes != 26 {
		t.Errorf("Minutes = %d, want 26", b.Minutes)
	}
	if b.TimePerPage.String() != "6.4" {
		t.Errorf("TimePerPage = %s, want 6.4", b.TimePerPage)
	}
	if b.LanguageMultiplier.String() != "4" || b.DifficultyMultiplier.String() != "2" || b.FocusMultiplier.String() != "0.8" {
		t.Errorf("unexpected multipliers: %s %s %s", b.LanguageMultiplier, b.DifficultyMultiplier, b.FocusMultiplier)
	}
}

func TestRequestValidate(t *testing.T) {
	if err := DefaultRequest().Validate(); err != nil {
		t.Fatalf("default request invalid: %v", err)
	}

	bad := []Request{
		{Pages: 1, Language: LanguageProximity(7), Difficulty: DifficultyBasic, Focus: FocusStable},
		{Pages: 1, Language: LanguageNative, Difficulty: DifficultyLevel(-1), Focus: FocusStable},
		{Pages: 1, Language: LanguageNative, Difficulty: DifficultyBasic, Focus: FocusLevel(4)},
	}
	for _, req := range bad {
		if err := req.Validate(); err == nil {
			t.Errorf("expected error for %+v", req)
		}
	}
}

func TestInvalidLevelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range language")
		}
	}()
	Estimate(10, LanguageProximity(42), DifficultyBasic, FocusStable)
}

func TestMultipliersIncrease(t *testing.T) {
	langs := LanguageLevels()
	for i := 1; i < len(langs); i++ {
		if !langs[i].Multiplier().GreaterThan(langs[i-1].Multiplier()) {
			t.Errorf("language %v multiplier not above %v", langs[i], langs[i-1])
		}
	}
	diffs := DifficultyLevels()
	for i := 1; i < len(diffs); i++ {
		if !diffs[i].Multiplier().GreaterThan(diffs[i-1].Multiplier()) {
			t.Errorf("difficulty %v multiplier not above %v", diffs[i], diffs[i-1])
		}
	}
	focus := FocusLevels()
	for i := 1; i < len(focus); i++ {
		if !focus[i].Multiplier().GreaterThan(focus[i-1].Multiplier()) {
			t.Errorf("focus %v multiplier not above %v", focus[i], focus[i-1])
		}
	}
}

// TestEstimateProperties checks zero pages, monotonicity in every factor
// and repeatability over random inputs.
func TestEstimateProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	langGen := gen.IntRange(0, len(languageInfo)-1)
	diffGen := gen.IntRange(0, len(difficultyInfo)-1)
	focusGen := gen.IntRange(0, len(focusInfo)-1)

	properties.Property("zero pages is zero minutes", prop.ForAll(
		func(l, d, f int) bool {
			return Estimate(0, LanguageProximity(l), DifficultyLevel(d), FocusLevel(f)) == 0
		},
		langGen, diffGen, focusGen,
	))

	properties.Property("farther language never decreases the estimate", prop.ForAll(
		func(pages, l, d, f int) bool {
			if l == len(languageInfo)-1 {
				return true
			}
			lower := Estimate(pages, LanguageProximity(l), DifficultyLevel(d), FocusLevel(f))
			higher := Estimate(pages, LanguageProximity(l+1), DifficultyLevel(d), FocusLevel(f))
			return higher >= lower
		},
		gen.IntRange(0, 5000), langGen, diffGen, focusGen,
	))

	properties.Property("harder text never decreases the estimate", prop.ForAll(
		func(pages, l, d, f int) bool {
			if d == len(difficultyInfo)-1 {
				return true
			}
			lower := Estimate(pages, LanguageProximity(l), DifficultyLevel(d), FocusLevel(f))
			higher := Estimate(pages, LanguageProximity(l), DifficultyLevel(d+1), FocusLevel(f))
			return higher >= lower
		},
		gen.IntRange(0, 5000), langGen, diffGen, focusGen,
	))

	properties.Property("worse focus never decreases the estimate", prop.ForAll(
		func(pages, l, d, f int) bool {
			if f == len(focusInfo)-1 {
				return true
			}
			lower := Estimate(pages, LanguageProximity(l), DifficultyLevel(d), FocusLevel(f))
			higher := Estimate(pages, LanguageProximity(l), DifficultyLevel(d), FocusLevel(f+1))
			return higher >= lower
		},
		gen.IntRange(0, 5000), langGen, diffGen, focusGen,
	))

	properties.Property("more pages never decreases the estimate", prop.ForAll(
		func(pages, l, d, f int) bool {
			return Estimate(pages+1, LanguageProximity(l), DifficultyLevel(d), FocusLevel(f)) >=
				Estimate(pages, LanguageProximity(l), DifficultyLevel(d), FocusLevel(f))
		},
		gen.IntRange(0, 5000), langGen, diffGen, focusGen,
	))

	properties.Property("identical inputs give identical results", prop.ForAll(
		func(pages, l, d, f int) bool {
			req := Request{Pages: pages, Language: LanguageProximity(l), Difficulty: DifficultyLevel(d), Focus: FocusLevel(f)}
			return req.Estimate() == req.Estimate()
		},
		gen.IntRange(0, 100000), langGen, diffGen, focusGen,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
