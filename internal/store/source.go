package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rcliao/bio-browser/internal/model"
)

// DefaultHTTPTimeout bounds a single document fetch.
const DefaultHTTPTimeout = 30 * time.Second

// FileSource loads records from a JSON document on disk.
type FileSource struct {
	Path string
}

func (f FileSource) Load(ctx context.Context) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: f.Path, Op: OpRead, Cause: err}
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &LoadError{Source: f.Path, Op: OpRead, Cause: err}
	}
	return DecodeRecords(f.Path, data)
}

// HTTPSource loads records from a JSON document served over HTTP.
type HTTPSource struct {
	URL    string
	client *http.Client
}

// NewHTTPSource creates a source fetching url with the given timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &HTTPSource{
		URL:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTPSource) Load(ctx context.Context) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, &LoadError{Source: h.URL, Op: OpFetch, Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: h.URL, Op: OpFetch, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &LoadError{
			Source: h.URL,
			Op:     OpFetch,
			Cause:  fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(b))),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: h.URL, Op: OpFetch, Cause: err}
	}
	return DecodeRecords(h.URL, data)
}

// OpenSource picks a loader for ref: HTTP for http(s) URLs, a file otherwise.
func OpenSource(ref string, timeout time.Duration) Loader {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return NewHTTPSource(ref, timeout)
	}
	return FileSource{Path: ref}
}
