package remote

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

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bottlebuddy/internal/domain"
)

// ErrStatus is returned when the backend answers with a non-2xx status.
var ErrStatus = errors.New("unexpected status")

// StatusError carries the HTTP status of a failed find call.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string { return fmt.Sprintf("find failed: %s", e.Status) }

func (e *StatusError) Unwrap() error { return ErrStatus }

// ErrNotArray is returned when a 2xx body is valid JSON but not an array.
var ErrNotArray = errors.New("response is not a JSON array")

// RequestIDHeader correlates a client request with backend and client logs.
const RequestIDHeader = "X-Request-ID"

// maxBody bounds how much of a response is read.
const maxBody = 4 << 20

// Client is a REST client for the wine search backend implementing domain.Finder.
// It does not retry: a failed call is reported once and the user decides.
type Client struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// Config configures the search backend client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

var _ domain.Finder = (*Client)(nil)

// NewClient creates a new search client using the provided configuration.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://127.0.0.1:5000"
	}
	hc := cfg.HTTPClient
	if hc == nil {
		t := cfg.Timeout
		if t == 0 {
			t = 15 * time.Second
		}
		hc = &http.Client{Timeout: t}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  hc,
		log:     log,
	}
}

// Find posts criteria to /find and decodes the JSON array of wine names.
func (c *Client) Find(ctx context.Context, criteria []string) ([]string, error) {
	if criteria == nil {
		criteria = []string{}
	}
	data, err := json.Marshal(domain.FindRequest{Criteria: criteria})
	if err != nil {
		return nil, fmt.Errorf("encode find request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/find", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build find request: %w", err)
	}
	id := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, id)

	log := c.log.With(zap.String("request_id", id), zap.Int("criteria", len(criteria)))
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("find request failed", zap.Error(err))
		return nil, fmt.Errorf("post find: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		log.Warn("find rejected", zap.Int("status", resp.StatusCode))
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		log.Warn("find response unreadable", zap.Error(err))
		return nil, fmt.Errorf("read find response: %w", err)
	}
	var out []string
	if err := json.Unmarshal(payload, &out); err != nil {
		log.Warn("find response undecodable", zap.Error(err))
		return nil, fmt.Errorf("decode find response: %w", err)
	}
	if out == nil {
		log.Warn("find response undecodable", zap.Error(ErrNotArray))
		return nil, fmt.Errorf("decode find response: %w", ErrNotArray)
	}
	log.Debug("find ok", zap.Int("results", len(out)), zap.Duration("took", time.Since(start)))
	return out, nil
}
