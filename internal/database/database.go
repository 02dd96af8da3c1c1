package database

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgconn"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"github.com/redflagged/redflagged/internal/models"
)

type DataBase struct {
	*gorm.DB
}

// gorm does not translate driver errors
// https://github.com/go-gorm/gorm/issues/4037
func isUniqueViolation(err error) bool {
	var perr *pgconn.PgError
	if errors.As(err, &perr) {
		return perr.Code == "23505"
	}
	return false
}

func wrapInsert(err error) error {
	if err != nil && isUniqueViolation(err) {
		return &DuplicateKey{err}
	}
	return err
}

// OpenDataBase connects to postgres, retrying with exponential backoff until timeout.
func OpenDataBase(ctx context.Context, logger *zap.Logger, dsn string, timeout time.Duration) (*DataBase, error) {
	zapLogger := zapgorm2.New(logger.Named("gorm"))
	zapLogger.SetAsDefault()

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = timeout

	var db *gorm.DB
	err := backoff.RetryNotify(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: zapLogger,
		})
		return err
	}, backoff.WithContext(policy, ctx), func(err error, next time.Duration) {
		logger.Warn("Failed to connect to database", zap.Error(err), zap.Duration("retry_in", next))
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "Failed to connect to database")
	}

	err = db.AutoMigrate(&models.Submission{}, &models.Report{}, &models.Response{})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "Failed to migrate database")
	}

	return &DataBase{db}, nil
}

func (db *DataBase) AddSubmission(submission *models.Submission) error {
	return wrapInsert(db.Create(submission).Error)
}

func (db *DataBase) AddReport(report *models.Report) error {
	return wrapInsert(db.Create(report).Error)
}

func (db *DataBase) AddResponse(response *models.Response) error {
	return wrapInsert(db.Create(response).Error)
}

func (db *DataBase) ListSubmissions() (submissions []models.Submission, err error) {
	submissions = make([]models.Submission, 0)
	err = db.Order("created_at").Find(&submissions).Error
	if err != nil {
		submissions = nil
	}
	return
}

func (db *DataBase) ListFlagReports(flagID int) (reports []models.Report, err error) {
	reports = make([]models.Report, 0)
	err = db.Order("created_at").Find(&reports, "flag_id = ?", flagID).Error
	if err != nil {
		reports = nil
	}
	return
}

func (db *DataBase) ListFlagResponses(flagID int) (responses []models.Response, err error) {
	responses = make([]models.Response, 0)
	err = db.Order("created_at").Find(&responses, "flag_id = ?", flagID).Error
	if err != nil {
		responses = nil
	}
	return
}
