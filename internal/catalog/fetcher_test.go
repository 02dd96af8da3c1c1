package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

const seedV1 = `
- id: 1
  company: Felt
  role: Software Engineer
  description: Ghosted.
  tags: [Ghosting]
  date: March 2024
  reported: 15-03-2024
  views: 10
`

const seedV2 = seedV1 + `
- id: 7
  company: Initech
  role: Engineer
  description: Offer revoked.
  tags: [Offer Revoked]
  date: April 2024
  reported: 01-04-2024
  views: 1
`

func TestFetcherFileReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.yaml")
	if err := os.WriteFile(path, []byte(seedV1), 0600); err != nil {
		t.Fatal(err)
	}

	f, err := NewFetcher(FetcherOptions{SeedFile: path}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if f.Current().Len() != 1 {
		t.Fatalf("Expected 1 flag, got %d", f.Current().Len())
	}
	f.Current().RecordView(1)
	f.Current().RecordView(1)

	if err := os.WriteFile(path, []byte(seedV2), 0600); err != nil {
		t.Fatal(err)
	}
	if err := f.reload(); err != nil {
		t.Fatal(err)
	}

	c := f.Current()
	if c.Len() != 2 {
		t.Fatalf("Expected 2 flags after reload, got %d", c.Len())
	}
	felt, _ := c.Find(1)
	if felt.Views != 12 {
		t.Errorf("Expected view counter to survive reload, got %d", felt.Views)
	}

	if err := os.WriteFile(path, []byte("- id: 0"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := f.reload(); err == nil {
		t.Fatal("Expected invalid seed to fail")
	}
	if f.Current() != c {
		t.Error("Failed reload replaced the catalog")
	}
}

func TestFetcherReloadKeepsLateViews(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.yaml")
	if err := os.WriteFile(path, []byte(seedV1), 0600); err != nil {
		t.Fatal(err)
	}

	f, err := NewFetcher(FetcherOptions{SeedFile: path}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	old := f.Current()

	if err := f.reload(); err != nil {
		t.Fatal(err)
	}
	// A reader that loaded the catalog before the swap records its view late.
	old.RecordView(1)
	f.Current().RecordView(1)

	felt, _ := f.Current().Find(1)
	if felt.Views != 12 {
		t.Errorf("Expected both views to be counted, got %d", felt.Views)
	}
}

func TestFetcherURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/flags.yaml" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(seedV2))
	}))
	defer srv.Close()

	f, err := NewFetcher(FetcherOptions{SeedURL: srv.URL + "/flags.yaml"}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if _, found := f.Current().Find(7); !found {
		t.Error("Expected flag 7 from remote seed")
	}

	_, err = NewFetcher(FetcherOptions{SeedURL: srv.URL + "/missing"}, zap.NewNop())
	if err == nil {
		t.Error("Expected missing seed to fail")
	}
}

func TestFetcherDefault(t *testing.T) {
	f, err := NewFetcher(FetcherOptions{}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if f.Current().Len() != 4 {
		t.Errorf("Expected embedded catalog, got %d flags", f.Current().Len())
	}

	// Zero interval returns immediately.
	f.Run(context.Background())
}
