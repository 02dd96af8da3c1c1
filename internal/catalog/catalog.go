package catalog

import (
	_ "embed"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"gopkg.in/yaml.v2"

	"github.com/redflagged/redflagged/internal/models"
)

//go:embed flags.yaml
var defaultSeed []byte

const dateLayout = "02-01-2006"

type Date struct {
	time.Time
}

func (t *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var buf string
	err := unmarshal(&buf)
	if err != nil {
		return err
	}

	tt, err := time.ParseInLocation(dateLayout, strings.TrimSpace(buf), time.UTC)
	if err != nil {
		return err
	}
	t.Time = tt
	return nil
}

func (t Date) MarshalYAML() (interface{}, error) {
	return t.Time.Format(dateLayout), nil
}

type seedFlag struct {
	models.Flag `yaml:",inline"`
	Reported    Date `yaml:"reported"`
}

type entry struct {
	flag  models.Flag
	views *atomic.Int64
}

// Catalog is the fixed, read-only set of published flags.
// Only the view counters change after load.
type Catalog struct {
	entries []*entry
	byID    map[int]*entry
}

func Parse(body []byte) (*Catalog, error) {
	seed := []seedFlag{}
	if err := yaml.Unmarshal(body, &seed); err != nil {
		return nil, errors.Wrap(err, "Failed to unmarshal catalog")
	}

	c := &Catalog{
		entries: make([]*entry, 0, len(seed)),
		byID:    make(map[int]*entry, len(seed)),
	}
	for i := range seed {
		flag := seed[i].Flag
		flag.Timestamp = seed[i].Reported.Time

		if flag.ID <= 0 {
			return nil, errors.Errorf("Flag #%d has invalid id %d", i, flag.ID)
		}
		if _, found := c.byID[flag.ID]; found {
			return nil, errors.Errorf("Duplicate flag id %d", flag.ID)
		}
		if flag.Company == "" || flag.Role == "" || flag.Description == "" {
			return nil, errors.Errorf("Flag %d is missing company, role or description", flag.ID)
		}

		e := &entry{flag: flag, views: atomic.NewInt64(0)}
		c.entries = append(c.entries, e)
		c.byID[flag.ID] = e
	}

	return c, nil
}

func Default() *Catalog {
	c, err := Parse(defaultSeed)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

func (e *entry) snapshot() models.Flag {
	flag := e.flag
	flag.Tags = append([]string(nil), e.flag.Tags...)
	flag.Views += e.views.Load()
	return flag
}

// List returns copies of all flags in seed order.
func (c *Catalog) List() []models.Flag {
	flags := make([]models.Flag, len(c.entries))
	for i, e := range c.entries {
		flags[i] = e.snapshot()
	}
	return flags
}

func (c *Catalog) Find(id int) (*models.Flag, bool) {
	e, found := c.byID[id]
	if !found {
		return nil, false
	}
	flag := e.snapshot()
	return &flag, true
}

func (c *Catalog) RecordView(id int) {
	if e, found := c.byID[id]; found {
		e.views.Inc()
	}
}
