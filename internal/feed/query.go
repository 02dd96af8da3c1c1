package feed

import (
	"net/url"
	"strings"
	"time"
)

const (
	PeriodAll   = "all"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortViews  = "views"
)

var periods = map[string]time.Duration{
	PeriodWeek:  7 * 24 * time.Hour,
	PeriodMonth: 30 * 24 * time.Hour,
	PeriodYear:  365 * 24 * time.Hour,
}

type Option struct {
	Value string
	Label string
}

var PeriodOptions = []Option{
	{PeriodAll, "All time"},
	{PeriodWeek, "Past week"},
	{PeriodMonth, "Past month"},
	{PeriodYear, "Past year"},
}

var SortOptions = []Option{
	{SortNewest, "Newest"},
	{SortOldest, "Oldest"},
	{SortViews, "Most viewed"},
}

type Query struct {
	Search string `form:"q" json:"q"`
	Tag    string `form:"tag" json:"tag"`
	Period string `form:"period" json:"period"`
	Sort   string `form:"sort" json:"sort"`
}

// Normalize trims the inputs and replaces unknown period or sort values by defaults.
func (q Query) Normalize() Query {
	q.Search = strings.TrimSpace(q.Search)
	q.Tag = strings.TrimSpace(q.Tag)
	if _, found := periods[q.Period]; !found {
		q.Period = PeriodAll
	}
	switch q.Sort {
	case SortNewest, SortOldest, SortViews:
	default:
		q.Sort = SortNewest
	}
	return q
}

func (q Query) Key() string {
	q = q.Normalize()
	return strings.Join([]string{strings.ToLower(q.Search), strings.ToLower(q.Tag), q.Period, q.Sort}, "\x00")
}

func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("q", q.Search)
	}
	if q.Tag != "" {
		values.Set("tag", q.Tag)
	}
	if q.Period != "" && q.Period != PeriodAll {
		values.Set("period", q.Period)
	}
	if q.Sort != "" && q.Sort != SortNewest {
		values.Set("sort", q.Sort)
	}
	return values
}

func (q Query) IsEmpty() bool {
	n := q.Normalize()
	return n.Search == "" && n.Tag == "" && n.Period == PeriodAll
}
