package feed

import (
	"time"

	"github.com/karlseguin/ccache/v2"

	"github.com/redflagged/redflagged/internal/catalog"
	"github.com/redflagged/redflagged/internal/models"
)

type Clock = func() time.Time

// Feed serves filtered views of the catalog. Results are cached per query for ttl,
// so view counters shown in lists may lag behind the detail page.
type Feed struct {
	catalog catalog.Source
	matcher *Matcher
	cache   *ccache.Cache
	ttl     time.Duration
	now     Clock
}

func New(c catalog.Source, cache *ccache.Cache, ttl time.Duration, now Clock) *Feed {
	if now == nil {
		now = time.Now
	}
	return &Feed{
		catalog: c,
		matcher: NewMatcher(),
		cache:   cache,
		ttl:     ttl,
		now:     now,
	}
}

func (f *Feed) Now() time.Time {
	return f.now()
}

func (f *Feed) List(q Query) []models.Flag {
	if f.cache == nil || f.ttl <= 0 {
		return f.matcher.Filter(f.catalog.Current().List(), q, f.now())
	}

	item, _ := f.cache.Fetch("feed:"+q.Key(), f.ttl, func() (interface{}, error) {
		return f.matcher.Filter(f.catalog.Current().List(), q, f.now()), nil
	})
	cached := item.Value().([]models.Flag)

	res := make([]models.Flag, len(cached))
	copy(res, cached)
	return res
}

func (f *Feed) Find(id int) (*models.Flag, bool) {
	return f.catalog.Current().Find(id)
}

func (f *Feed) View(id int) (*models.Flag, bool) {
	c := f.catalog.Current()
	c.RecordView(id)
	return c.Find(id)
}

func (f *Feed) Tags() []string {
	return Tags(f.catalog.Current().List())
}
