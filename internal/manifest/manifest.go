// Package manifest reads the apps manifest document that drives the
// dashboard.
//
// Every failure, whether transport, status or JSON, is reported as
// ErrLoadFailure. Callers do not distinguish between them.
package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"emmanuelos.dev/internal/models"
)

// DefaultPath is the site-relative location of the manifest document.
const DefaultPath = "/apps_manifest.json"

// ErrLoadFailure covers every way a manifest read can fail.
var ErrLoadFailure = errors.New("manifest load failure")

// Source produces a manifest. Fetch is called at most once per dashboard.
type Source interface {
	Fetch(ctx context.Context) (*models.Manifest, error)
}

// Decode parses a manifest document. The whole input must be one JSON
// value. A missing or null "apps" field yields an empty list.
func Decode(r io.Reader) (*models.Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrLoadFailure, err)
	}

	var m models.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrLoadFailure, err)
	}
	if m.Apps == nil {
		m.Apps = []models.AppDescriptor{}
	}
	return &m, nil
}

// FileSource reads the manifest from disk.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Fetch reads and decodes the file
func (s *FileSource) Fetch(ctx context.Context) (*models.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	defer f.Close()

	return Decode(f)
}

// HTTPSource issues a single GET for the manifest document.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates an HTTPSource. When url has no path, DefaultPath
// is appended.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{URL: resolveURL(url), Client: client}
}

// Fetch performs the request. It is never retried.
func (s *HTTPSource) Fetch(ctx context.Context) (*models.Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrLoadFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrLoadFailure, s.URL, resp.StatusCode)
	}

	return Decode(resp.Body)
}

func resolveURL(url string) string {
	rest, ok := strings.CutPrefix(url, "http://")
	if !ok {
		rest, ok = strings.CutPrefix(url, "https://")
	}
	if ok && !strings.Contains(rest, "/") {
		return url + DefaultPath
	}
	return url
}

// NewSource returns an HTTPSource when url is set and a FileSource for
// path otherwise.
func NewSource(url, path string) Source {
	if url != "" {
		return NewHTTPSource(url, nil)
	}
	return NewFileSource(path)
}
