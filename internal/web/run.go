package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karlseguin/ccache/v2"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/redflagged/redflagged/internal/catalog"
	"github.com/redflagged/redflagged/internal/config"
	"github.com/redflagged/redflagged/internal/database"
	"github.com/redflagged/redflagged/internal/evidence"
	"github.com/redflagged/redflagged/internal/feed"
	"github.com/redflagged/redflagged/internal/notify"
	"github.com/redflagged/redflagged/internal/wizard"
)

func openStore(ctx context.Context, logger *zap.Logger, config *config.Config) (database.Store, error) {
	if !config.HasDataBase() {
		logger.Warn("Database is not configured, moderation queue is kept in memory")
		return database.NewMemory(), nil
	}
	return database.OpenDataBase(ctx, logger, config.DataBaseDSN(), config.DataBase.ConnectTimeout)
}

func openNotifier(logger *zap.Logger, config *config.Config) (notify.Notifier, error) {
	if config.Telegram.BotToken == "" {
		return notify.Nop{}, nil
	}
	return notify.NewTelegram(config.Telegram.BotToken, config.Telegram.ChatID, logger.Named("telegram"))
}

func newCache(config *config.Config) *ccache.Cache {
	return ccache.New(ccache.Configure().MaxSize(config.Cache.MaxSize))
}

// Run serves the site until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, logger *zap.Logger, config *config.Config) error {
	catalogs, err := catalog.NewFetcher(catalog.FetcherOptions{
		SeedFile: config.Catalog.SeedFile,
		SeedURL:  config.Catalog.SeedURL,
		Interval: config.Catalog.ReloadInterval,
	}, logger.Named("catalog"))
	if err != nil {
		return pkgerrors.Wrap(err, "Failed to load catalog")
	}

	store, err := openStore(ctx, logger, config)
	if err != nil {
		return err
	}
	notifier, err := openNotifier(logger, config)
	if err != nil {
		return err
	}
	archiver, err := evidence.NewArchiver(config.Evidence.Dir, logger.Named("evidence"))
	if err != nil {
		return err
	}

	feedCache := newCache(config)
	defer feedCache.Stop()
	draftCache := newCache(config)
	defer draftCache.Stop()

	s := newServer(
		config,
		logger,
		feed.New(catalogs, feedCache, config.Cache.FeedTTL, nil),
		wizard.NewStore(draftCache, config.Cache.DraftTTL),
		store,
		notifier,
		archiver,
	)

	gin.SetMode(gin.ReleaseMode)
	r, err := s.router()
	if err != nil {
		return pkgerrors.Wrap(err, "Failed to start server")
	}

	srv := &http.Server{
		Addr:    config.Server.ListenAddress,
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		catalogs.Run(gctx)
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting server", zap.String("bind_address", config.Server.ListenAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return pkgerrors.Wrap(err, "Server failed")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
		defer cancel()
		return pkgerrors.Wrap(srv.Shutdown(shutdownCtx), "Failed to shutdown server")
	})

	return g.Wait()
}
