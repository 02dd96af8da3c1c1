package redflagged

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/redflagged/redflagged/api"
	"github.com/redflagged/redflagged/internal/models"
)

type Client struct {
	client *resty.Client
	token  string
}

// DefaultPrefix is the path the server mounts its JSON API on unless configured otherwise.
const DefaultPrefix = "/api"

// NewClient talks to the JSON API mounted at prefix on endpoint. An empty prefix means DefaultPrefix.
// The token is only needed for moderation calls.
func NewClient(endpoint, prefix, token string) (*Client, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(endpoint, "/") + "/" + strings.Trim(prefix, "/")).
		SetTimeout(time.Second * 10).
		SetRetryCount(3)

	if token != "" {
		client.Header.Add("Token", token)
	}

	return &Client{client, token}, nil
}

func check(status *api.Status, what string) error {
	if !status.Ok {
		return fmt.Errorf("failed to %s: %s", what, status.Error)
	}
	return nil
}

func (c *Client) ListFlags(req api.FlagsRequest) ([]models.Flag, error) {
	res := &api.FlagsResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetQueryParams(map[string]string{
			"q":      req.Search,
			"tag":    req.Tag,
			"period": req.Period,
			"sort":   req.Sort,
		}).
		Get("/flags")
	if err != nil {
		return nil, err
	}

	if err := check(&res.Status, "list flags"); err != nil {
		return nil, err
	}

	return res.Flags, nil
}

func (c *Client) GetFlag(id int) (*models.Flag, error) {
	res := &api.FlagResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetPathParam("id", strconv.Itoa(id)).
		Get("/flags/{id}")
	if err != nil {
		return nil, err
	}

	if err := check(&res.Status, "fetch flag"); err != nil {
		return nil, err
	}

	return res.Flag, nil
}

func (c *Client) Report(id int, req api.ReportRequest) (*api.ReportResponse, error) {
	res := &api.ReportResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetPathParam("id", strconv.Itoa(id)).
		SetBody(req).
		Post("/flags/{id}/report")
	if err != nil {
		return nil, err
	}

	return res, check(&res.Status, "report flag")
}

func (c *Client) Respond(id int, req api.RespondRequest) (*api.RespondResponse, error) {
	res := &api.RespondResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetPathParam("id", strconv.Itoa(id)).
		SetBody(req).
		Post("/flags/{id}/respond")
	if err != nil {
		return nil, err
	}

	return res, check(&res.Status, "respond to flag")
}

func (c *Client) Submit(req api.SubmissionRequest) (string, error) {
	res := &api.SubmissionResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetBody(req).
		Post("/submissions")
	if err != nil {
		return "", err
	}

	if err := check(&res.Status, "submit flag"); err != nil {
		return "", err
	}

	return res.ID, nil
}

func (c *Client) LoadSubmissions() ([]models.Submission, error) {
	res := &api.SubmissionsResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		Get("/moderation/submissions")
	if err != nil {
		return nil, err
	}

	if err := check(&res.Status, "fetch submissions"); err != nil {
		return nil, err
	}

	return res.Submissions, nil
}

func (c *Client) LoadReports(id int) ([]models.Report, error) {
	res := &api.ReportsResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetPathParam("id", strconv.Itoa(id)).
		Get("/moderation/flags/{id}/reports")
	if err != nil {
		return nil, err
	}

	if err := check(&res.Status, "fetch reports"); err != nil {
		return nil, err
	}

	return res.Reports, nil
}

func (c *Client) LoadResponses(id int) ([]models.Response, error) {
	res := &api.ResponsesResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetPathParam("id", strconv.Itoa(id)).
		Get("/moderation/flags/{id}/responses")
	if err != nil {
		return nil, err
	}

	if err := check(&res.Status, "fetch responses"); err != nil {
		return nil, err
	}

	return res.Responses, nil
}
