package estimator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel indicates a value outside one of the closed level sets
var ErrUnknownLevel = errors.New("unknown level")

// LanguageProximity is how close the reader's fluency is to native-level
// comprehension of the text's language. Ordered from closest to farthest.
type LanguageProximity int

const (
	LanguageNative LanguageProximity = iota
	LanguageUpperAdvanced
	LanguageUpperIntermediate
	LanguageIntermediate
	LanguageLowerIntermediate
	LanguageBeginner
	LanguageUnknownOrigin
)

// DifficultyLevel is the conceptual density of the text
type DifficultyLevel int

const (
	DifficultyBasic DifficultyLevel = iota
	DifficultySimple
	DifficultyModerate
	DifficultyAdvanced
	DifficultyAcademic
	DifficultyDeepTheory
)

// FocusLevel is the reader's attentional state, ordered by impairment
type FocusLevel int

const (
	FocusDeepSync FocusLevel = iota
	FocusStable
	FocusInterference
	FocusCriticalFatigue
)

// levelInfo holds the presentation data of a level
type levelInfo struct {
	name  string
	code  string
	label string
}

var languageInfo = [...]levelInfo{
	LanguageNative:            {"native", "native", "NATIVE / C2"},
	LanguageUpperAdvanced:     {"upper-advanced", "c1", "C1"},
	LanguageUpperIntermediate: {"upper-intermediate", "b2", "B2"},
	LanguageIntermediate:      {"intermediate", "b1", "B1"},
	LanguageLowerIntermediate: {"lower-intermediate", "a2", "A2"},
	LanguageBeginner:          {"beginner", "a1", "A1"},
	LanguageUnknownOrigin:     {"unknown-origin", "none", "UNKNOWN_ORIGIN"},
}

var difficultyInfo = [...]levelInfo{
	DifficultyBasic:      {"basic", "a1", "BASIC / A1"},
	DifficultySimple:     {"simple", "a2", "SIMPLE / A2"},
	DifficultyModerate:   {"moderate", "b1", "MODERATE / B1"},
	DifficultyAdvanced:   {"advanced", "b2", "ADVANCED / B2"},
	DifficultyAcademic:   {"academic", "academic", "ACADEMIC"},
	DifficultyDeepTheory: {"deep-theory", "philosophical", "DEEP_THEORY"},
}

var focusInfo = [...]levelInfo{
	FocusDeepSync:        {"deep-sync", "deep", "DEEP_SYNC"},
	FocusStable:          {"stable", "normal", "STABLE"},
	FocusInterference:    {"interference", "distracted", "INTERFERENCE"},
	FocusCriticalFatigue: {"critical-fatigue", "exhausted", "CRITICAL_FATIGUE"},
}

// Default form values
const (
	DefaultPages      = 10
	DefaultLanguage   = LanguageUpperIntermediate
	DefaultDifficulty = DifficultyAdvanced
	DefaultFocus      = FocusStable
)

// Valid reports whether l is one of the declared levels
func (l LanguageProximity) Valid() bool { return l >= 0 && int(l) < len(languageInfo) }

// String returns the descriptive level name (e.g. "upper-intermediate")
func (l LanguageProximity) String() string {
	if !l.Valid() {
		return fmt.Sprintf("LanguageProximity(%d)", int(l))
	}
	return languageInfo[l].name
}

// Code returns the short wire code (e.g. "b2")
func (l LanguageProximity) Code() string {
	if !l.Valid() {
		return ""
	}
	return languageInfo[l].code
}

// Label returns the display label used by the form
func (l LanguageProximity) Label() string {
	if !l.Valid() {
		return ""
	}
	return languageInfo[l].label
}

func (d DifficultyLevel) Valid() bool { return d >= 0 && int(d) < len(difficultyInfo) }

func (d DifficultyLevel) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DifficultyLevel(%d)", int(d))
	}
	return difficultyInfo[d].name
}

func (d DifficultyLevel) Code() string {
	if !d.Valid() {
		return ""
	}
	return difficultyInfo[d].code
}

func (d DifficultyLevel) Label() string {
	if !d.Valid() {
		return ""
	}
	return difficultyInfo[d].label
}

func (f FocusLevel) Valid() bool { return f >= 0 && int(f) < len(focusInfo) }

func (f FocusLevel) String() string {
	if !f.Valid() {
		return fmt.Sprintf("FocusLevel(%d)", int(f))
	}
	return focusInfo[f].name
}

func (f FocusLevel) Code() string {
	if !f.Valid() {
		return ""
	}
	return focusInfo[f].code
}

func (f FocusLevel) Label() string {
	if !f.Valid() {
		return ""
	}
	return focusInfo[f].label
}

// LanguageLevels returns every language proximity, closest first
func LanguageLevels() []LanguageProximity {
	levels := make([]LanguageProximity, len(languageInfo))
	for i := range languageInfo {
		levels[i] = LanguageProximity(i)
	}
	return levels
}

// DifficultyLevels returns every difficulty level, easiest first
func DifficultyLevels() []DifficultyLevel {
	levels := make([]DifficultyLevel, len(difficultyInfo))
	for i := range difficultyInfo {
		levels[i] = DifficultyLevel(i)
	}
	return levels
}

// FocusLevels returns every focus level, least impaired first
func FocusLevels() []FocusLevel {
	levels := make([]FocusLevel, len(focusInfo))
	for i := range focusInfo {
		levels[i] = FocusLevel(i)
	}
	return levels
}

// ParseLanguage accepts a wire code ("b2") or a level name ("upper-intermediate")
func ParseLanguage(s string) (LanguageProximity, error) {
	i, ok := lookup(languageInfo[:], s)
	if !ok {
		return 0, fmt.Errorf("language %q: %w", s, ErrUnknownLevel)
	}
	return LanguageProximity(i), nil
}

// ParseDifficulty accepts a wire code ("academic") or a level name ("deep-theory")
func ParseDifficulty(s string) (DifficultyLevel, error) {
	i, ok := lookup(difficultyInfo[:], s)
	if !ok {
		return 0, fmt.Errorf("difficulty %q: %w", s, ErrUnknownLevel)
	}
	return DifficultyLevel(i), nil
}

// ParseFocus accepts a wire code ("normal") or a level name ("stable")
func ParseFocus(s string) (FocusLevel, error) {
	i, ok := lookup(focusInfo[:], s)
	if !ok {
		return 0, fmt.Errorf("focus %q: %w", s, ErrUnknownLevel)
	}
	return FocusLevel(i), nil
}

// lookup matches wire codes before level names
func lookup(table []levelInfo, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	for i, info := range table {
		if info.code == s {
			return i, true
		}
	}
	normalized := strings.ReplaceAll(s, "_", "-")
	for i, info := range table {
		if info.name == normalized {
			return i, true
		}
	}
	return 0, false
}
