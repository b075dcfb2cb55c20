package estimator

import "fmt"

// FormatDuration renders minutes as "<m> minutes" below one hour and as
// "<h>h <m>m" from one hour on. The remainder is always shown ("2h 0m") and
// the minutes suffix is never singularised ("1 minutes").
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
