package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/redflagged/redflagged/internal/dialogs"
	lf "github.com/redflagged/redflagged/internal/logfield"
	"github.com/redflagged/redflagged/internal/models"
)

type dialogService struct {
	webService
}

func setupDialogService(server *server, r *gin.Engine) {
	s := dialogService{newWebService(server, "dialogs")}

	flag := server.config.Endpoints.Flags + "/:id"
	r.GET(flag+"/report", s.report)
	r.POST(flag+"/report", s.reportForm)
	r.GET(flag+"/respond", s.respond)
	r.POST(flag+"/respond", s.respondForm)
}

func dialogStep(c *gin.Context) int {
	if c.Query("step") == "2" {
		return 2
	}
	return 1
}

func (s dialogService) flagURL(flag *models.Flag) string {
	return s.config.Endpoints.Flags + "/" + strconv.Itoa(flag.ID)
}

func (s dialogService) renderReport(c *gin.Context, code int, flag *models.Flag, step int, form *dialogs.ReportForm, errs dialogs.Errors) {
	s.server.render(c, code, "/report.tmpl", "Report "+flag.Company, gin.H{
		"Flag":    flag,
		"Step":    step,
		"Form":    form,
		"Errors":  errs,
		"Reasons": dialogs.ReportReasons,
	})
}

func (s dialogService) report(c *gin.Context) {
	flag, found := lookupFlag(c, s.server.feed.Find)
	if !found {
		s.server.RenderNotFoundPage(c, flagNotFound)
		return
	}
	form := &dialogs.ReportForm{}
	form.Normalize()
	s.renderReport(c, http.StatusOK, flag, dialogStep(c), form, nil)
}

func (s dialogService) reportForm(c *gin.Context) {
	flag, found := lookupFlag(c, s.server.feed.Find)
	if !found {
		s.server.RenderNotFoundPage(c, flagNotFound)
		return
	}

	form := &dialogs.ReportForm{}
	if err := c.ShouldBind(form); err != nil {
		s.log.Warn("Failed to parse report form", zap.Error(err))
		s.server.RenderErrorPage(c, http.StatusBadRequest, "Failed to read the report form.")
		return
	}
	errs, err := form.Check()
	if err != nil {
		s.log.Error("Failed to validate report form", zap.Error(err))
		s.server.RenderErrorPage(c, http.StatusInternalServerError, "Failed to validate the report form.")
		return
	}
	if errs != nil {
		s.renderReport(c, http.StatusBadRequest, flag, 2, form, errs)
		return
	}

	if _, err := s.server.acceptReport(s.log, flag, form); err != nil {
		s.server.RenderErrorPage(c, http.StatusInternalServerError, "Failed to submit your report, please try again later.")
		return
	}

	addToast(c, s.log, Toast{
		Kind:        ToastSuccess,
		Title:       "Report submitted",
		Description: "We'll review your report and get back to you soon.",
	})
	c.Redirect(http.StatusSeeOther, s.flagURL(flag))
}

func (s dialogService) renderRespond(c *gin.Context, code int, flag *models.Flag, step int, form *dialogs.ResponseForm, errs dialogs.Errors) {
	s.server.render(c, code, "/respond.tmpl", "Respond as "+flag.Company, gin.H{
		"Flag":   flag,
		"Step":   step,
		"Form":   form,
		"Errors": errs,
	})
}

func (s dialogService) respond(c *gin.Context) {
	flag, found := lookupFlag(c, s.server.feed.Find)
	if !found {
		s.server.RenderNotFoundPage(c, flagNotFound)
		return
	}
	s.renderRespond(c, http.StatusOK, flag, dialogStep(c), &dialogs.ResponseForm{}, nil)
}

func (s dialogService) respondForm(c *gin.Context) {
	flag, found := lookupFlag(c, s.server.feed.Find)
	if !found {
		s.server.RenderNotFoundPage(c, flagNotFound)
		return
	}

	form := &dialogs.ResponseForm{}
	if err := c.ShouldBind(form); err != nil {
		s.log.Warn("Failed to parse response form", zap.Error(err))
		s.server.RenderErrorPage(c, http.StatusBadRequest, "Failed to read the response form.")
		return
	}
	errs, err := form.Check()
	if err != nil {
		s.log.Error("Failed to validate response form", zap.Error(err))
		s.server.RenderErrorPage(c, http.StatusInternalServerError, "Failed to validate the response form.")
		return
	}
	if errs != nil {
		s.renderRespond(c, http.StatusBadRequest, flag, 2, form, errs)
		return
	}

	if _, err := s.server.acceptResponse(s.log, flag, form); err != nil {
		s.server.RenderErrorPage(c, http.StatusInternalServerError, "Failed to submit your response, please try again later.")
		return
	}

	addToast(c, s.log, Toast{
		Kind:        ToastSuccess,
		Title:       "Response submitted",
		Description: "We'll verify your identity and post your response if approved.",
	})
	c.Redirect(http.StatusSeeOther, s.flagURL(flag))
}

// acceptReport puts a validated report into the moderation queue.
// Notification failures are logged only.
func (s *server) acceptReport(log *zap.Logger, flag *models.Flag, form *dialogs.ReportForm) (*models.Report, error) {
	report := form.ToReport(flag.ID, s.feed.Now())
	log = log.With(lf.FlagID(flag.ID), lf.ReportType(report.Type), lf.Email(report.Email))

	if err := s.store.AddReport(report); err != nil {
		log.Error("Failed to store report", zap.Error(err))
		return nil, errors.Wrap(err, "Failed to store report")
	}
	log.Info("Report submitted", zap.String("report_id", report.ID), zap.String("explanation", report.Explanation))

	if err := s.notifier.Report(flag, report); err != nil {
		log.Warn("Failed to notify moderators", zap.Error(err))
	}
	return report, nil
}

func (s *server) acceptResponse(log *zap.Logger, flag *models.Flag, form *dialogs.ResponseForm) (*models.Response, error) {
	response := form.ToResponse(flag.ID, s.feed.Now())
	log = log.With(lf.FlagID(flag.ID), lf.Email(response.Email))

	if err := s.store.AddResponse(response); err != nil {
		log.Error("Failed to store response", zap.Error(err))
		return nil, errors.Wrap(err, "Failed to store response")
	}
	log.Info("Response submitted",
		zap.String("response_id", response.ID),
		zap.String("name", response.Name),
		zap.String("title", response.Title),
	)

	if err := s.notifier.Response(flag, response); err != nil {
		log.Warn("Failed to notify moderators", zap.Error(err))
	}
	return response, nil
}
