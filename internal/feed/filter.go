package feed

import (
	"strings"
	"time"

	"github.com/alexsergivan/transliterator"
	"golang.org/x/exp/slices"

	"github.com/redflagged/redflagged/internal/models"
)

type Matcher struct {
	translit *transliterator.Transliterator
}

func NewMatcher() *Matcher {
	return &Matcher{translit: transliterator.NewTransliterator(nil)}
}

func (m *Matcher) normalize(s string) string {
	return strings.ToLower(m.translit.Transliterate(s, "en"))
}

func (m *Matcher) matchesSearch(flag *models.Flag, needle string) bool {
	if needle == "" {
		return true
	}
	haystack := append([]string{flag.Company, flag.Role, flag.Description}, flag.Tags...)
	for _, field := range haystack {
		if strings.Contains(m.normalize(field), needle) {
			return true
		}
	}
	return false
}

func matchesTag(flag *models.Flag, tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range flag.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func matchesPeriod(flag *models.Flag, period string, now time.Time) bool {
	window, found := periods[period]
	if !found {
		return true
	}
	return now.Sub(flag.Timestamp) <= window
}

func less(sort string) func(lhs, rhs models.Flag) bool {
	return func(lhs, rhs models.Flag) bool {
		switch sort {
		case SortOldest:
			if !lhs.Timestamp.Equal(rhs.Timestamp) {
				return lhs.Timestamp.Before(rhs.Timestamp)
			}
		case SortViews:
			if lhs.Views != rhs.Views {
				return lhs.Views > rhs.Views
			}
		default:
			if !lhs.Timestamp.Equal(rhs.Timestamp) {
				return lhs.Timestamp.After(rhs.Timestamp)
			}
		}
		return lhs.ID < rhs.ID
	}
}

// Filter returns the flags matching q ordered by q.Sort. The input is not modified.
func (m *Matcher) Filter(flags []models.Flag, q Query, now time.Time) []models.Flag {
	q = q.Normalize()
	needle := m.normalize(q.Search)

	res := make([]models.Flag, 0, len(flags))
	for i := range flags {
		flag := &flags[i]
		if !matchesTag(flag, q.Tag) || !matchesPeriod(flag, q.Period, now) || !m.matchesSearch(flag, needle) {
			continue
		}
		res = append(res, *flag)
	}

	slices.SortStableFunc(res, less(q.Sort))
	return res
}

// Tags lists distinct tag labels in first-seen order.
func Tags(flags []models.Flag) []string {
	tags := []string{}
	for _, flag := range flags {
		for _, tag := range flag.Tags {
			if !slices.Contains(tags, tag) {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
