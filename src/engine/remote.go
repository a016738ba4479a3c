package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Protocol-Lattice/go-researcher/src/httpx"
)

// Remote talks to a hosted research service that exposes the engine's two
// lifecycle operations over HTTP: POST /research starts a job and returns a
// task id, POST /report renders the report for that task.
type Remote struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRemote constructs a remote engine client for the given base URL. The
// API key is optional; when set it is sent as an X-API-Key header.
func NewRemote(baseURL, apiKey string) *Remote {
	return &Remote{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 5 * time.Minute},
	}
}

func (r *Remote) NewJob(req Request) (Job, error) {
	if strings.TrimSpace(r.BaseURL) == "" {
		return nil, errors.New("remote engine requires a base URL")
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, errors.New("research query is empty")
	}
	if req.ReportSource != SourceLocal && req.ReportSource != SourceWeb {
		return nil, fmt.Errorf("unsupported report source %q", req.ReportSource)
	}
	return &remoteJob{engine: r, req: req}, nil
}

type remoteJob struct {
	engine *Remote
	req    Request
	taskID string
}

type startResearchRequest struct {
	Query        string `json:"query"`
	ReportType   string `json:"report_type"`
	ReportSource string `json:"report_source"`
}

type startResearchResponse struct {
	TaskID string `json:"task_id"`
}

type writeReportRequest struct {
	TaskID string `json:"task_id"`
}

type writeReportResponse struct {
	Report string `json:"report"`
}

func (j *remoteJob) ConductResearch(ctx context.Context) error {
	var out startResearchResponse
	err := j.engine.post(ctx, "/research", startResearchRequest{
		Query:        j.req.Query,
		ReportType:   j.req.ReportType,
		ReportSource: j.req.ReportSource,
	}, &out)
	if err != nil {
		return err
	}
	if out.TaskID == "" {
		return errors.New("research service returned no task id")
	}
	j.taskID = out.TaskID
	return nil
}

func (j *remoteJob) WriteReport(ctx context.Context) (string, error) {
	if j.taskID == "" {
		return "", errors.New("write report called before conduct research")
	}
	var out writeReportResponse
	if err := j.engine.post(ctx, "/report", writeReportRequest{TaskID: j.taskID}, &out); err != nil {
		return "", err
	}
	return out.Report, nil
}

func (r *Remote) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.APIKey != "" {
		req.Header.Set("X-API-Key", r.APIKey)
	}

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httpx.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return fmt.Errorf("research service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("research service returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing research service response: %w", err)
	}
	return nil
}

var _ Engine = (*Remote)(nil)
