package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/redflagged/redflagged/internal/logfield"
	"github.com/redflagged/redflagged/internal/models"
	"github.com/redflagged/redflagged/internal/wizard"
)

const (
	actionNext   = "next"
	actionBack   = "back"
	actionSubmit = "submit"
)

type wizardService struct {
	webService
}

func setupWizardService(server *server, r *gin.Engine) {
	s := wizardService{newWebService(server, "wizard")}

	r.GET(server.config.Endpoints.Submit, s.form)
	r.POST(server.config.Endpoints.Submit, s.submitForm)
}

func (s wizardService) loadDraft(c *gin.Context) *wizard.Draft {
	draft := s.server.drafts.Load(draftID(c))
	s.server.drafts.Save(draft)
	setDraftID(c, s.log, draft.ID)
	return draft
}

func (s wizardService) form(c *gin.Context) {
	draft := s.loadDraft(c)

	s.server.render(c, http.StatusOK, "/submit.tmpl", "Submit a Redflag", gin.H{
		"Draft":        draft,
		"Steps":        wizard.Steps,
		"Violations":   models.Violations,
		"MaxNarrative": wizard.MaxNarrativeLength,
		"Return":       s.config.Endpoints.Submit,
	})
}

// returnTo keeps the user on the page the form was embedded into.
func (s wizardService) returnTo(c *gin.Context) string {
	if c.PostForm("return") == s.config.Endpoints.Index {
		return s.config.Endpoints.Index
	}
	return s.config.Endpoints.Submit
}

func (s wizardService) submitForm(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.Server.MaxUploadSize)

	draft := s.loadDraft(c)
	log := s.log.With(lf.DraftID(draft.ID), lf.Step(draft.Step))

	fields := wizard.Fields{}
	if err := c.ShouldBind(&fields); err != nil {
		log.Warn("Failed to parse submission form", zap.Error(err))
		addToast(c, log, Toast{Kind: ToastError, Title: "Upload failed", Description: "The form could not be read. Attachments may be too large."})
		c.Redirect(http.StatusSeeOther, s.returnTo(c))
		return
	}
	draft.Apply(draft.Step, fields)

	if draft.Step == wizard.StepDetails {
		if err := s.storeProofs(c, draft); err != nil {
			log.Error("Failed to store evidence", zap.Error(err))
			addToast(c, log, Toast{Kind: ToastError, Title: "Upload failed", Description: "We could not store your attachments, please try again."})
		}
	}

	switch c.PostForm("action") {
	case actionBack:
		draft.Back()
	case actionSubmit:
		s.submitDraft(c, log, draft)
	default:
		if err := draft.Next(); err != nil {
			log.Info("Incomplete step")
			addToast(c, log, Toast{Kind: ToastError, Title: err.Error()})
		}
	}

	s.server.drafts.Save(draft)
	c.Redirect(http.StatusSeeOther, s.returnTo(c))
}

func (s wizardService) storeProofs(c *gin.Context, draft *wizard.Draft) error {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil
		}
		return errors.Wrap(err, "Failed to read multipart form")
	}
	files := form.File["proof"]
	if len(files) == 0 {
		return nil
	}

	names, archive, err := s.server.evidence.Store(draft.ID, files)
	if err != nil {
		return err
	}
	draft.Proofs = names
	draft.EvidenceArchive = archive
	return nil
}

func (s wizardService) submitDraft(c *gin.Context, log *zap.Logger, draft *wizard.Draft) {
	pending := *draft
	submission, err := draft.Submit(s.server.feed.Now())
	if err != nil {
		log.Info("Unverified submission")
		addToast(c, log, Toast{Kind: ToastError, Title: err.Error()})
		return
	}

	if err := s.server.acceptSubmission(log, submission); err != nil {
		*draft = pending
		addToast(c, log, Toast{Kind: ToastError, Title: "Something went wrong, please try again later."})
		return
	}

	s.server.drafts.Delete(pending.ID)
	setDraftID(c, log, draft.ID)
	addToast(c, log, Toast{Kind: ToastSuccess, Title: "Your redflag has been submitted successfully."})
}

// acceptSubmission puts a complete submission into the moderation queue.
// It never reaches the public feed.
func (s *server) acceptSubmission(log *zap.Logger, submission *models.Submission) error {
	log = log.With(lf.SubmissionID(submission.ID))
	if err := s.store.AddSubmission(submission); err != nil {
		log.Error("Failed to store submission", zap.Error(err))
		return errors.Wrap(err, "Failed to store submission")
	}
	log.Info("New submission",
		zap.String("company", submission.Company),
		zap.Strings("violations", submission.Violations),
		zap.Int("num_proofs", len(submission.Proofs)),
	)

	if err := s.notifier.Submission(submission); err != nil {
		log.Warn("Failed to notify moderators", zap.Error(err))
	}
	return nil
}
