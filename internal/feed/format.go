package feed

import (
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/dustin/go-humanize"
)

// Ago renders the distance between t and now, e.g. "2 years ago".
func Ago(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		return "in " + strings.ToLower(units.HumanDuration(-d))
	}
	return strings.ToLower(units.HumanDuration(d)) + " ago"
}

func Views(n int64) string {
	return humanize.Comma(n)
}
