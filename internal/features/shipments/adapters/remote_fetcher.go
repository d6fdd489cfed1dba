package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/httpclient"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/ports"
)

// RemoteFetcher downloads export files over HTTP.
type RemoteFetcher struct {
	client   *http.Client
	maxBytes int64
	allowed  map[string]bool
}

// NewRemoteFetcher creates a fetcher that rejects bodies larger than maxBytes.
// When allowedHosts is non-empty only those hosts may be contacted, including
// on redirects.
func NewRemoteFetcher(client *http.Client, maxBytes int64, allowedHosts ...string) *RemoteFetcher {
	f := &RemoteFetcher{
		maxBytes: maxBytes,
		allowed:  make(map[string]bool, len(allowedHosts)),
	}
	for _, h := range allowedHosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			f.allowed[h] = true
		}
	}

	c := *client
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		return f.checkHost(req.URL)
	}
	f.client = &c
	return f
}

func (f *RemoteFetcher) checkHost(u *url.URL) error {
	if len(f.allowed) > 0 && !f.allowed[strings.ToLower(u.Hostname())] {
		return fmt.Errorf("%w: host %q", ports.ErrDestinationNotAllowed, u.Hostname())
	}
	return nil
}

// Fetch downloads rawURL. The filename comes from Content-Disposition when
// present, otherwise from the last URL path segment.
func (f *RemoteFetcher) Fetch(ctx context.Context, rawURL string) (*ports.Download, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	if err := f.checkHost(u); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if errors.Is(err, httpclient.ErrBlockedAddress) {
		return nil, fmt.Errorf("%w: %w", ports.ErrDestinationNotAllowed, err)
	}
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if f.maxBytes > 0 && resp.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("body of %d bytes exceeds limit of %d", resp.ContentLength, f.maxBytes)
	}

	limit := f.maxBytes
	if limit <= 0 {
		limit = 1 << 62
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("body exceeds limit of %d bytes", f.maxBytes)
	}

	return &ports.Download{
		Filename: filename(resp.Header.Get("Content-Disposition"), u),
		Body:     body,
	}, nil
}

func filename(disposition string, u *url.URL) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
			return path.Base(params["filename"])
		}
	}
	return path.Base(u.Path)
}
