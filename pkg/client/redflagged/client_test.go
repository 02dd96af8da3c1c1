package redflagged

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redflagged/redflagged/api"
	"github.com/redflagged/redflagged/internal/models"
)

func TestClient(t *testing.T) {
	var gotToken, gotQuery string
	var gotReport api.ReportRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/flags":
			gotQuery = r.URL.Query().Get("q")
			_ = json.NewEncoder(w).Encode(api.FlagsResponse{
				Status: api.Status{Ok: true},
				Flags:  []models.Flag{{ID: 2, Company: "Acme Corp"}},
			})
		case "/api/flags/2/report":
			_ = json.NewDecoder(r.Body).Decode(&gotReport)
			_ = json.NewEncoder(w).Encode(api.ReportResponse{Status: api.Status{Ok: true}, ID: "r1"})
		case "/api/moderation/submissions":
			gotToken = r.Header.Get("Token")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.Status{Error: "Invalid or expired token"})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.Status{Error: "Flag not found"})
		}
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "", "secret")
	require.NoError(t, err)

	flags, err := client.ListFlags(api.FlagsRequest{Search: "acme"})
	require.NoError(t, err)
	require.Equal(t, "acme", gotQuery)
	require.Len(t, flags, 1)
	require.Equal(t, "Acme Corp", flags[0].Company)

	res, err := client.Report(2, api.ReportRequest{ReportType: "other", Explanation: "Something is off here", Email: "a@b.co"})
	require.NoError(t, err)
	require.Equal(t, "r1", res.ID)
	require.Equal(t, "Something is off here", gotReport.Explanation)

	_, err = client.GetFlag(9)
	require.EqualError(t, err, "failed to fetch flag: Flag not found")

	_, err = client.LoadSubmissions()
	require.EqualError(t, err, "failed to fetch submissions: Invalid or expired token")
	require.Equal(t, "secret", gotToken)
}

func TestClientPrefix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.FlagResponse{
			Status: api.Status{Ok: true},
			Flag:   &models.Flag{ID: 3, Company: "Felt"},
		})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL+"/", "/v2/", "")
	require.NoError(t, err)

	flag, err := client.GetFlag(3)
	require.NoError(t, err)
	require.Equal(t, "/v2/flags/3", gotPath)
	require.Equal(t, "Felt", flag.Company)
}
