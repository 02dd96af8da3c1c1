package feed

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/karlseguin/ccache/v2"

	"github.com/redflagged/redflagged/internal/catalog"
	"github.com/redflagged/redflagged/internal/models"
)

var testNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func ids(flags []models.Flag) []int {
	res := []int{}
	for _, flag := range flags {
		res = append(res, flag.ID)
	}
	return res
}

func checkIDs(t *testing.T, q Query, expected []int) {
	t.Helper()
	got := ids(NewMatcher().Filter(catalog.Default().List(), q, testNow))
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Query %+v mismatch (-want +got):\n%s", q, diff)
	}
}

func TestFilterDefaultOrder(t *testing.T) {
	checkIDs(t, Query{}, []int{1, 4, 2, 3})
	checkIDs(t, Query{Sort: "bogus", Period: "bogus"}, []int{1, 4, 2, 3})
}

func TestFilterSort(t *testing.T) {
	checkIDs(t, Query{Sort: SortOldest}, []int{3, 2, 4, 1})
	checkIDs(t, Query{Sort: SortViews}, []int{4, 1, 3, 2})
}

func TestFilterSearch(t *testing.T) {
	checkIDs(t, Query{Search: "acme"}, []int{2})
	checkIDs(t, Query{Search: "  ACME  "}, []int{2})
	checkIDs(t, Query{Search: "engineer"}, []int{1})
	checkIDs(t, Query{Search: "ghosting"}, []int{1, 2})
	checkIDs(t, Query{Search: "rescinded"}, []int{4})
	checkIDs(t, Query{Search: "Acmé"}, []int{2})
	checkIDs(t, Query{Search: "no such company"}, []int{})
}

func TestFilterTag(t *testing.T) {
	checkIDs(t, Query{Tag: "unpaid challenge"}, []int{1, 2})
	checkIDs(t, Query{Tag: "Offer Revoked"}, []int{4})
	checkIDs(t, Query{Tag: "Unpaid"}, []int{})
	checkIDs(t, Query{Tag: "Ghosting", Search: "felt"}, []int{1})
}

func TestFilterPeriod(t *testing.T) {
	checkIDs(t, Query{Period: PeriodWeek}, []int{1})
	checkIDs(t, Query{Period: PeriodMonth}, []int{1, 4})
	checkIDs(t, Query{Period: PeriodYear}, []int{1, 4, 2, 3})
	checkIDs(t, Query{Period: PeriodYear, Sort: SortViews}, []int{4, 1, 3, 2})
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	flags := catalog.Default().List()
	NewMatcher().Filter(flags, Query{Sort: SortViews}, testNow)
	if diff := cmp.Diff([]int{1, 2, 3, 4}, ids(flags)); diff != "" {
		t.Errorf("Input was reordered (-want +got):\n%s", diff)
	}
}

func TestQueryValues(t *testing.T) {
	q := Query{Search: "acme", Period: PeriodAll, Sort: SortViews}
	if encoded := q.Values().Encode(); encoded != "q=acme&sort=views" {
		t.Errorf("Unexpected encoding %q", encoded)
	}
	if !(Query{Sort: SortViews}).IsEmpty() {
		t.Error("Sort alone should not make a query non-empty")
	}
	if (Query{Tag: "Ghosting"}).IsEmpty() {
		t.Error("Tag filter should make a query non-empty")
	}
}

func TestTags(t *testing.T) {
	expected := []string{"Ghosting", "Unpaid Challenge", "Misleading Role", "Offer Revoked"}
	if diff := cmp.Diff(expected, Tags(catalog.Default().List())); diff != "" {
		t.Errorf("Unexpected tags (-want +got):\n%s", diff)
	}
}

func TestFeedCache(t *testing.T) {
	c := catalog.Default()
	cache := ccache.New(ccache.Configure().MaxSize(100))
	defer cache.Stop()

	f := New(c, cache, time.Hour, func() time.Time { return testNow })

	first := f.List(Query{Sort: SortViews})
	first[0].Company = "mutated"

	second := f.List(Query{Sort: SortViews})
	if second[0].Company != "Growth Capital" {
		t.Errorf("Cached result was mutated: %q", second[0].Company)
	}

	flag, found := f.View(3)
	if !found || flag.Views != 947 {
		t.Errorf("Unexpected view result %+v %v", flag, found)
	}
	if _, found := f.View(99); found {
		t.Error("Unknown flag should not be found")
	}
}

func TestAgo(t *testing.T) {
	for _, tc := range []struct {
		at       time.Time
		expected string
	}{
		{testNow.Add(-90 * time.Minute), "2 hours ago"},
		{testNow.Add(-5 * 24 * time.Hour), "5 days ago"},
		{time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "2 months ago"},
		{time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), "3 weeks ago"},
		{time.Date(2022, 1, 5, 0, 0, 0, 0, time.UTC), "2 years ago"},
		{testNow.Add(time.Hour), "in about an hour"},
	} {
		if got := Ago(tc.at, testNow); got != tc.expected {
			t.Errorf("Ago(%v) = %q, expected %q", tc.at, got, tc.expected)
		}
	}
}

func TestViews(t *testing.T) {
	if got := Views(1284); got != "1,284" {
		t.Errorf("Unexpected views %q", got)
	}
	if got := Views(723); got != "723" {
		t.Errorf("Unexpected views %q", got)
	}
}
