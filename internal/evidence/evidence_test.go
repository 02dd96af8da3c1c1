package evidence

import (
	"bytes"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/redflagged/redflagged/pkg/targz"
)

func makeUploads(t *testing.T, files map[string]string, order []string) []*multipart.FileHeader {
	t.Helper()
	body := bytes.Buffer{}
	writer := multipart.NewWriter(&body)
	for _, name := range order {
		part, err := writer.CreateFormFile("proof", name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte(files[name])); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["proof"]
}

type collector map[string]string

type entryWriter struct {
	bytes.Buffer
	name string
	into collector
}

func (w *entryWriter) Close() error {
	w.into[w.name] = w.String()
	return nil
}

func (c collector) VisitDirectory(info fs.FileInfo) error {
	return nil
}

func (c collector) VisitFile(info fs.FileInfo) (io.WriteCloser, error) {
	return &entryWriter{name: info.Name(), into: c}, nil
}

func TestStoreArchive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "evidence")
	archiver, err := NewArchiver(dir, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	files := map[string]string{
		"invite.eml": "You are invited to the final round",
		"offer.pdf":  "%PDF-1.4 offer",
	}
	names, path, err := archiver.Store("draft-1", makeUploads(t, files, []string{"invite.eml", "offer.pdf"}))
	if err != nil {
		t.Fatal("Failed to store evidence:", err)
	}

	if diff := cmp.Diff([]string{"invite.eml", "offer.pdf"}, names); diff != "" {
		t.Errorf("Unexpected names (-want +got):\n%s", diff)
	}
	if path != filepath.Join(dir, "draft-1.tar.gz") {
		t.Errorf("Unexpected archive path %q", path)
	}

	archive, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer archive.Close()

	extracted := collector{}
	if err := targz.Extract(archive, extracted); err != nil {
		t.Fatal("Failed to extract archive:", err)
	}
	if diff := cmp.Diff(files, map[string]string(extracted)); diff != "" {
		t.Errorf("Archive content mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreDisabled(t *testing.T) {
	archiver, err := NewArchiver("", zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	names, path, err := archiver.Store("draft-2", makeUploads(t, map[string]string{"a.png": "png"}, []string{"a.png"}))
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("Disabled archiver wrote %q", path)
	}
	if diff := cmp.Diff([]string{"a.png"}, names); diff != "" {
		t.Errorf("Unexpected names (-want +got):\n%s", diff)
	}
}
