package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/redflagged/redflagged/internal/feed"
	lf "github.com/redflagged/redflagged/internal/logfield"
	"github.com/redflagged/redflagged/internal/models"
	"github.com/redflagged/redflagged/internal/wizard"
)

const flagNotFound = "Flag Not Found"

type feedService struct {
	webService
}

func setupFeedService(server *server, r *gin.Engine) {
	s := feedService{newWebService(server, "feed")}

	r.GET(server.config.Endpoints.Home, s.home)
	r.GET(server.config.Endpoints.Index, s.index)
	r.GET(server.config.Endpoints.Flags+"/:id", s.details)
}

func bindQuery(c *gin.Context) feed.Query {
	q := feed.Query{}
	// Query binding of plain strings never fails.
	_ = c.ShouldBindQuery(&q)
	return q.Normalize()
}

func (s feedService) home(c *gin.Context) {
	q := bindQuery(c)
	flags := s.server.feed.List(q)
	if !q.IsEmpty() {
		s.log.Debug("Filtered feed", lf.Query(q.Search), zap.Int("num_flags", len(flags)))
	}

	s.server.render(c, http.StatusOK, "/feed.tmpl", "Feed", gin.H{
		"Flags":   flags,
		"Query":   q,
		"Tags":    s.server.feed.Tags(),
		"Periods": feed.PeriodOptions,
		"Sorts":   feed.SortOptions,
	})
}

func (s feedService) index(c *gin.Context) {
	draft := s.server.drafts.Load(draftID(c))
	s.server.drafts.Save(draft)
	setDraftID(c, s.log, draft.ID)

	s.server.render(c, http.StatusOK, "/index.tmpl", "", gin.H{
		"Flags":        s.server.feed.List(feed.Query{}),
		"Draft":        draft,
		"Steps":        wizard.Steps,
		"Violations":   models.Violations,
		"MaxNarrative": wizard.MaxNarrativeLength,
		"Return":       s.config.Endpoints.Index,
	})
}

// lookupFlag resolves the :id path parameter. Unknown and malformed ids are not found.
func lookupFlag(c *gin.Context, find func(int) (*models.Flag, bool)) (*models.Flag, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, false
	}
	return find(id)
}

func (s feedService) details(c *gin.Context) {
	flag, found := lookupFlag(c, s.server.feed.View)
	if !found {
		s.log.Info("Flag not found", zap.String("id", c.Param("id")))
		s.server.RenderNotFoundPage(c, flagNotFound)
		return
	}

	s.server.render(c, http.StatusOK, "/details.tmpl", flag.Company, gin.H{
		"Flag": flag,
		"Now":  s.server.feed.Now(),
	})
}
