package evidence

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/redflagged/redflagged/pkg/targz"
)

// Archiver packs proof uploads of one draft into dir/<draft-id>.tar.gz.
// A zero dir disables storing, only the file names are kept.
type Archiver struct {
	dir    string
	logger *zap.Logger
}

func NewArchiver(dir string, logger *zap.Logger) (*Archiver, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, errors.Wrap(err, "Failed to create evidence dir")
		}
	}
	return &Archiver{dir: dir, logger: logger}, nil
}

func (a *Archiver) Enabled() bool {
	return a.dir != ""
}

// Store returns the uploaded file names and the archive path (empty when disabled).
func (a *Archiver) Store(draftID string, files []*multipart.FileHeader) ([]string, string, error) {
	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, filepath.Base(file.Filename))
	}
	if !a.Enabled() || len(files) == 0 {
		return names, "", nil
	}

	entries := make([]targz.Entry, 0, len(files))
	for i, file := range files {
		body, err := file.Open()
		if err != nil {
			return nil, "", errors.Wrapf(err, "Failed to open upload %s", names[i])
		}
		defer body.Close()
		entries = append(entries, targz.Entry{Name: names[i], Size: file.Size, Body: body})
	}

	path := filepath.Join(a.dir, filepath.Base(draftID)+".tar.gz")
	output, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0640)
	if err != nil {
		return nil, "", errors.Wrap(err, "Failed to create evidence archive")
	}
	defer output.Close()

	if err := targz.Pack(output, entries); err != nil {
		return nil, "", errors.Wrap(err, "Failed to pack evidence")
	}
	if err := output.Close(); err != nil {
		return nil, "", errors.Wrap(err, "Failed to write evidence archive")
	}

	a.logger.Info("Stored evidence archive",
		zap.String("path", path),
		zap.Int("num_files", len(files)),
	)
	return names, path, nil
}
