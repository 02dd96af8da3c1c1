package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/redflagged/redflagged/internal/config"
	"github.com/redflagged/redflagged/internal/database"
	"github.com/redflagged/redflagged/internal/evidence"
	"github.com/redflagged/redflagged/internal/feed"
	"github.com/redflagged/redflagged/internal/models"
	"github.com/redflagged/redflagged/internal/notify"
	"github.com/redflagged/redflagged/internal/wizard"
	assets "github.com/redflagged/redflagged/web"
)

type server struct {
	config *config.Config
	logger *zap.Logger

	feed     *feed.Feed
	drafts   *wizard.Store
	store    database.Store
	notifier notify.Notifier
	evidence *evidence.Archiver
}

func newServer(
	config *config.Config,
	logger *zap.Logger,
	feed *feed.Feed,
	drafts *wizard.Store,
	store database.Store,
	notifier notify.Notifier,
	evidence *evidence.Archiver,
) *server {
	return &server{
		config:   config,
		logger:   logger,
		feed:     feed,
		drafts:   drafts,
		store:    store,
		notifier: notifier,
		evidence: evidence,
	}
}

func buildHTMLTemplates(tfs fs.FS, funcMap template.FuncMap) (*template.Template, error) {
	tmpl := template.New("").Funcs(funcMap)
	err := fs.WalkDir(tfs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}

		bytes, err := fs.ReadFile(tfs, path)
		if err != nil {
			return err
		}
		if _, err := tmpl.New("/" + path).Parse(string(bytes)); err != nil {
			return errors.Wrapf(err, "Failed to parse template %s", path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to collect html templates")
	}

	return tmpl, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"runes":    utf8.RuneCountInString,
		"tagClass": models.TagClass,
		"ago":      feed.Ago,
		"views":    feed.Views,
		"dotClass": func(current, step int) string {
			switch {
			case step == current:
				return "progress-dot active"
			case step < current:
				return "progress-dot completed"
			default:
				return "progress-dot"
			}
		},
	}
}

func (s *server) router() (*gin.Engine, error) {
	tmpl, err := buildHTMLTemplates(assets.StaticTemplates, templateFuncs())
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build html templates")
	}

	r := gin.New()

	r.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(s.logger, true))

	r.SetHTMLTemplate(tmpl)

	if err := setupSessions(s, r); err != nil {
		return nil, err
	}
	setupFeedService(s, r)
	setupWizardService(s, r)
	setupDialogService(s, r)
	setupApiService(s, r)

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong "+fmt.Sprint(time.Now().Unix()))
	})

	r.StaticFS("/static", http.FS(assets.StaticContent))
	r.NoRoute(func(c *gin.Context) {
		s.RenderNotFoundPage(c, "Page Not Found")
	})

	return r, nil
}
