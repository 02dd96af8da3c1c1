package catalog

import (
	"context"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Source yields the catalog currently being served.
type Source interface {
	Current() *Catalog
}

func (c *Catalog) Current() *Catalog {
	return c
}

// inheritViews makes flags present in both catalogs share prev's view counters,
// so views recorded on prev after the swap still count. Must run before c is published.
func (c *Catalog) inheritViews(prev *Catalog) {
	if prev == nil {
		return
	}
	for id, e := range c.byID {
		if old, found := prev.byID[id]; found {
			e.views = old.views
		}
	}
}

type FetcherOptions struct {
	SeedFile string
	SeedURL  string
	Interval time.Duration
}

// Fetcher keeps the served catalog in sync with its seed file or URL.
type Fetcher struct {
	current atomic.Pointer[Catalog]

	options FetcherOptions
	client  *resty.Client
	logger  *zap.Logger
}

func NewFetcher(options FetcherOptions, logger *zap.Logger) (*Fetcher, error) {
	fetcher := &Fetcher{
		options: options,
		client:  resty.New().SetTimeout(time.Second * 10).SetRetryCount(3),
		logger:  logger,
	}

	if err := fetcher.reload(); err != nil {
		return nil, err
	}

	return fetcher, nil
}

func (f *Fetcher) fetch() (*Catalog, error) {
	switch {
	case f.options.SeedURL != "":
		resp, err := f.client.R().Get(f.options.SeedURL)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to fetch catalog")
		}
		if resp.IsError() {
			return nil, errors.Errorf("Failed to fetch catalog: %s", resp.Status())
		}
		return Parse(resp.Body())
	case f.options.SeedFile != "":
		body, err := os.ReadFile(f.options.SeedFile)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to read catalog seed")
		}
		return Parse(body)
	default:
		return Default(), nil
	}
}

func (f *Fetcher) reload() error {
	f.logger.Debug("Start catalog fetcher iteration")
	defer f.logger.Debug("Finish catalog fetcher iteration")

	next, err := f.fetch()
	if err != nil {
		f.logger.Error("Failed to reload catalog", zap.Error(err))
		return errors.Wrap(err, "Failed to reload catalog")
	}

	next.inheritViews(f.current.Load())
	f.current.Store(next)
	f.logger.Info("Loaded catalog",
		zap.Int("num_flags", next.Len()),
		zap.String("file", f.options.SeedFile),
		zap.String("url", f.options.SeedURL),
	)
	return nil
}

// Run reloads the catalog every Interval until ctx is done. A zero interval disables reloading.
func (f *Fetcher) Run(ctx context.Context) {
	if f.options.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(f.options.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = f.reload()
		}
	}
}

func (f *Fetcher) Current() *Catalog {
	return f.current.Load()
}
