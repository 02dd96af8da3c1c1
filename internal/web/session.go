package web

import (
	"encoding/gob"
	"encoding/hex"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	sessionName = "redflagged"
	keyDraft    = "draft"
)

const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast is a one-shot notification shown on the next rendered page.
type Toast struct {
	Kind        string
	Title       string
	Description string
}

func init() {
	gob.Register(Toast{})
}

func decodeKey(value string, size int) ([]byte, error) {
	if value == "" {
		key := securecookie.GenerateRandomKey(size)
		if key == nil {
			return nil, errors.New("Failed to generate random cookie key")
		}
		return key, nil
	}
	return hex.DecodeString(value)
}

func setupSessions(s *server, r *gin.Engine) error {
	cookies := s.config.Server.Cookies
	if cookies.AuthenticationKey == "" || cookies.EncryptionKey == "" {
		s.logger.Warn("Cookie keys are not configured, sessions will not survive restart")
	}

	authKey, err := decodeKey(cookies.AuthenticationKey, 64)
	if err != nil {
		return errors.Wrap(err, "Failed to decode hex authenticationKey")
	}
	encryptKey, err := decodeKey(cookies.EncryptionKey, 32)
	if err != nil {
		return errors.Wrap(err, "Failed to decode hex encryptionKey")
	}

	store := cookie.NewStore(authKey, encryptKey)
	store.Options(sessions.Options{
		Path:     "/",
		Secure:   cookies.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))
	return nil
}

func saveSession(c *gin.Context, log *zap.Logger) {
	if err := sessions.Default(c).Save(); err != nil {
		log.Error("Failed to save session", zap.Error(err))
	}
}

func addToast(c *gin.Context, log *zap.Logger, toast Toast) {
	sessions.Default(c).AddFlash(toast)
	saveSession(c, log)
}

func takeToasts(c *gin.Context, log *zap.Logger) []Toast {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	saveSession(c, log)

	toasts := make([]Toast, 0, len(flashes))
	for _, flash := range flashes {
		if toast, ok := flash.(Toast); ok {
			toasts = append(toasts, toast)
		}
	}
	return toasts
}

func draftID(c *gin.Context) string {
	id, _ := sessions.Default(c).Get(keyDraft).(string)
	return id
}

func setDraftID(c *gin.Context, log *zap.Logger, id string) {
	session := sessions.Default(c)
	if session.Get(keyDraft) == id {
		return
	}
	session.Set(keyDraft, id)
	saveSession(c, log)
}
