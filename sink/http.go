package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dishseed/customerrors"
	"dishseed/models"
	"github.com/google/uuid"
)

const maxErrorBody = 512

// HTTP posts every record as JSON to a single endpoint.
type HTTP struct {
	url    string
	client *http.Client
}

// NewHTTP keeps up to workers idle connections to the endpoint so a batch
// does not reconnect for every request. A zero timeout means none.
func NewHTTP(url string, workers int, timeout time.Duration) *HTTP {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = workers
	return &HTTP{url: url, client: &http.Client{Transport: transport, Timeout: timeout}}
}

func (h *HTTP) Submit(ctx context.Context, r models.Record) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(r.JSON()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", h.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_, _ = io.Copy(io.Discard, resp.Body)
	return &customerrors.StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

func (h *HTTP) Close() error {
	h.client.CloseIdleConnections()
	return nil
}
