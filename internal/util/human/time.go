package human

import (
	"fmt"
	"math"
	"time"
)

func plural(n float64, unit string) string {
	v := int64(math.Round(n))
	if v == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", v, unit)
}

// Ago describes how long before now the moment t was. Moments older than two
// weeks are shown as a date in the local zone. Future moments are "just now".
func Ago(now, t time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < 90*time.Minute:
		return plural(diff.Minutes(), "min") + " ago"
	case diff < 36*time.Hour:
		return plural(diff.Hours(), "hour") + " ago"
	case diff < 14*24*time.Hour:
		return plural(diff.Hours()/24, "day") + " ago"
	default:
		return t.Local().Format(time.DateOnly)
	}
}

// Goals renders a match result, such as "3 : 1".
func Goals(home, away int64) string {
	return fmt.Sprintf("%d : %d", home, away)
}
