package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/redflagged/redflagged/api"
	"github.com/redflagged/redflagged/internal/dialogs"
	"github.com/redflagged/redflagged/internal/feed"
	lf "github.com/redflagged/redflagged/internal/logfield"
	"github.com/redflagged/redflagged/internal/models"
	"github.com/redflagged/redflagged/internal/wizard"
)

const (
	errFlagNotFound = "Flag not found"
	errInternal     = "Internal error"
)

type apiService struct {
	webService
}

func setupApiService(server *server, r *gin.Engine) {
	s := apiService{newWebService(server, "api")}

	g := r.Group(server.config.Endpoints.Api.Prefix)
	g.GET("/flags", s.flags)
	g.GET("/flags/:id", s.flag)
	g.POST("/flags/:id/report", s.report)
	g.POST("/flags/:id/respond", s.respond)
	g.POST("/submissions", s.submission)

	m := g.Group("/moderation", s.validateToken)
	m.GET("/submissions", s.submissions)
	m.GET("/flags/:id/reports", s.reports)
	m.GET("/flags/:id/responses", s.responses)
}

func (s apiService) validateToken(c *gin.Context) {
	token := c.GetHeader("Token")
	if token == "" || !slices.Contains(s.config.Moderation.Tokens, token) {
		s.log.Warn("Unknown moderation token", zap.String("path", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusUnauthorized, &api.Status{
			Ok:    false,
			Error: "Invalid or expired token",
		})
		return
	}
	c.Next()
}

func (s apiService) flags(c *gin.Context) {
	req := api.FlagsRequest{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, &api.FlagsResponse{Status: api.Status{Error: err.Error()}})
		return
	}
	q := feed.Query{Search: req.Search, Tag: req.Tag, Period: req.Period, Sort: req.Sort}.Normalize()

	c.JSON(http.StatusOK, &api.FlagsResponse{
		Status: api.Status{Ok: true},
		Flags:  s.server.feed.List(q),
		Tags:   s.server.feed.Tags(),
	})
}

func (s apiService) flag(c *gin.Context) {
	flag, found := lookupFlag(c, s.server.feed.Find)
	if !found {
		c.JSON(http.StatusNotFound, &api.FlagResponse{Status: api.Status{Error: errFlagNotFound}})
		return
	}
	c.JSON(http.StatusOK, &api.FlagResponse{Status: api.Status{Ok: true}, Flag: flag})
}

func (s apiService) report(c *gin.Context) {
	onError := func(code int, err string, errs dialogs.Errors) {
		c.JSON(code, &api.ReportResponse{Status: api.Status{Error: err}, Errors: errs})
	}

	flag, found := lookupFlag(c, s.server.feed.Find)
	if !found {
		onError(http.StatusNotFound, errFlagNotFound, nil)
		return
	}

	req := api.ReportRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		onError(http.StatusBadRequest, err.Error(), nil)
		return
	}
	form := dialogs.ReportForm(req)
	errs, err := form.Check()
	if err != nil {
		s.log.Error("Failed to validate report", zap.Error(err))
		onError(http.StatusInternalServerError, errInternal, nil)
		return
	}
	if errs != nil {
		onError(http.StatusBadRequest, errs.Error(), errs)
		return
	}

	report, err := s.server.acceptReport(s.log, flag, &form)
	if err != nil {
		onError(http.StatusInternalServerError, errInternal, nil)
		return
	}
	c.JSON(http.StatusOK, &api.ReportResponse{Status: api.Status{Ok: true}, ID: report.ID})
}

func (s apiService) respond(c *gin.Context) {
	onError := func(code int, err string, errs dialogs.Errors) {
		c.JSON(code, &api.RespondResponse{Status: api.Status{Error: err}, Errors: errs})
	}

	flag, found := lookupFlag(c, s.server.feed.Find)
	if !found {
		onError(http.StatusNotFound, errFlagNotFound, nil)
		return
	}

	req := api.RespondRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		onError(http.StatusBadRequest, err.Error(), nil)
		return
	}
	form := dialogs.ResponseForm(req)
	errs, err := form.Check()
	if err != nil {
		s.log.Error("Failed to validate response", zap.Error(err))
		onError(http.StatusInternalServerError, errInternal, nil)
		return
	}
	if errs != nil {
		onError(http.StatusBadRequest, errs.Error(), errs)
		return
	}

	response, err := s.server.acceptResponse(s.log, flag, &form)
	if err != nil {
		onError(http.StatusInternalServerError, errInternal, nil)
		return
	}
	c.JSON(http.StatusOK, &api.RespondResponse{Status: api.Status{Ok: true}, ID: response.ID})
}

// submission runs the whole wizard at once.
func (s apiService) submission(c *gin.Context) {
	onError := func(code int, err string) {
		c.JSON(code, &api.SubmissionResponse{Status: api.Status{Error: err}})
	}

	req := api.SubmissionRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		onError(http.StatusBadRequest, err.Error())
		return
	}

	draft := wizard.NewDraft()
	fields := wizard.Fields{
		Company:    req.Company,
		Role:       req.Role,
		DateRange:  req.DateRange,
		Violations: req.Violations,
		Narrative:  req.Narrative,
		Names:      req.Names,
		Quotes:     req.Quotes,
		Consent:    req.Consent,
	}
	for _, step := range wizard.Steps {
		draft.Apply(step.Number, fields)
	}

	submission, err := draft.Submit(s.server.feed.Now())
	if err != nil {
		s.log.Info("Rejected api submission", lf.DraftID(draft.ID), zap.Error(err))
		onError(http.StatusBadRequest, err.Error())
		return
	}
	if err := s.server.acceptSubmission(s.log, submission); err != nil {
		onError(http.StatusInternalServerError, errInternal)
		return
	}
	c.JSON(http.StatusOK, &api.SubmissionResponse{Status: api.Status{Ok: true}, ID: submission.ID})
}

func (s apiService) submissions(c *gin.Context) {
	submissions, err := s.server.store.ListSubmissions()
	if err != nil {
		s.log.Error("Failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, &api.SubmissionsResponse{Status: api.Status{Error: errInternal}})
		return
	}
	c.JSON(http.StatusOK, &api.SubmissionsResponse{Status: api.Status{Ok: true}, Submissions: submissions})
}

func (s apiService) moderatedFlag(c *gin.Context) (*models.Flag, bool) {
	flag, found := lookupFlag(c, s.server.feed.Find)
	if !found {
		c.JSON(http.StatusNotFound, &api.Status{Error: errFlagNotFound})
	}
	return flag, found
}

func (s apiService) reports(c *gin.Context) {
	flag, found := s.moderatedFlag(c)
	if !found {
		return
	}
	reports, err := s.server.store.ListFlagReports(flag.ID)
	if err != nil {
		s.log.Error("Failed to list reports", lf.FlagID(flag.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, &api.ReportsResponse{Status: api.Status{Error: errInternal}})
		return
	}
	c.JSON(http.StatusOK, &api.ReportsResponse{Status: api.Status{Ok: true}, Reports: reports})
}

func (s apiService) responses(c *gin.Context) {
	flag, found := s.moderatedFlag(c)
	if !found {
		return
	}
	responses, err := s.server.store.ListFlagResponses(flag.ID)
	if err != nil {
		s.log.Error("Failed to list responses", lf.FlagID(flag.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, &api.ResponsesResponse{Status: api.Status{Error: errInternal}})
		return
	}
	c.JSON(http.StatusOK, &api.ResponsesResponse{Status: api.Status{Ok: true}, Responses: responses})
}
