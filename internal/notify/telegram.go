package notify

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/redflagged/redflagged/internal/models"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram posts moderation events to a single moderators chat.
type Telegram struct {
	bot    sender
	chatID int64
	log    *zap.Logger
}

func NewTelegram(token string, chatID int64, log *zap.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create telegram bot")
	}
	log.Info("Authorized telegram bot", zap.String("username", bot.Self.UserName))
	return &Telegram{bot, chatID, log}, nil
}

func (t *Telegram) send(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.DisableWebPagePreview = true

	_, err := t.bot.Send(msg)
	if err != nil {
		return errors.Wrap(err, "Failed to send telegram message")
	}
	return nil
}

func (t *Telegram) Submission(submission *models.Submission) error {
	return t.send(FormatSubmission(submission))
}

func (t *Telegram) Report(flag *models.Flag, report *models.Report) error {
	return t.send(FormatReport(flag, report))
}

func (t *Telegram) Response(flag *models.Flag, response *models.Response) error {
	return t.send(FormatResponse(flag, response))
}
