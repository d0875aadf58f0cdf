// Package source downloads country data files over HTTP.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetries    = 3
	DefaultRetryDelay = 2 * time.Second
	DefaultUserAgent  = "hamkit/1.0"

	// DefaultMaxBytes bounds a download; cty.xml is a few MB uncompressed.
	DefaultMaxBytes = 64 << 20

	maxBodyPreviewSize = 200
)

// Config controls a Fetcher.
type Config struct {
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	UserAgent  string
	MaxBytes   int64
}

// Response is the result of a conditional download.
type Response struct {
	Body         []byte
	LastModified string
	NotModified  bool
}

// Fetcher downloads files with retries and conditional requests.
type Fetcher struct {
	client *http.Client
	config Config
	log    logger.Logger
}

// NewFetcher returns a Fetcher. A nil client gets a default one with the
// configured timeout; zero config values take defaults.
func NewFetcher(client *http.Client, cfg Config, log logger.Logger) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries <= 0 {
		cfg.Retries = DefaultRetries
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = 0
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = GetLogger()
	}
	return &Fetcher{client: client, config: cfg, log: log}
}

// Fetch downloads a URL unconditionally.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := f.FetchIfModified(ctx, rawURL, "")
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// FetchIfModified downloads a URL, sending If-Modified-Since when lastModified
// is set. A 304 answer yields a Response with NotModified set and no body.
// Server errors and transport failures are retried; other non-200 statuses
// fail immediately.
func (f *Fetcher) FetchIfModified(ctx context.Context, rawURL, lastModified string) (*Response, error) {
	log := f.log.With(logger.String("url", logger.RedactURL(rawURL)))

	var lastErr error
	for attempt := range f.config.Retries {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, f.wrap(ctx.Err(), rawURL, "wait_retry")
			case <-time.After(f.config.RetryDelay * time.Duration(attempt)):
			}
		}

		resp, retry, err := f.do(ctx, rawURL, lastModified)
		if err == nil {
			log.Debug("download complete",
				logger.Int("attempt", attempt+1),
				logger.Int("bytes", len(resp.Body)),
				logger.Bool("not_modified", resp.NotModified))
			return resp, nil
		}

		lastErr = err
		if !retry || ctx.Err() != nil {
			break
		}
		log.Warn("download failed, retrying",
			logger.Int("attempt", attempt+1),
			logger.Int("max_attempts", f.config.Retries),
			logger.Error(err))
	}

	return nil, lastErr
}

func (f *Fetcher) do(ctx context.Context, rawURL, lastModified string) (resp *Response, retry bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, false, f.wrap(err, rawURL, "create_request")
	}
	req.Header.Set("User-Agent", f.config.UserAgent)
	if lastModified != "" {
		req.Header.Set("If-Modified-Since", lastModified)
	}

	httpResp, err := f.client.Do(req)
	if err != nil {
		return nil, true, f.wrap(err, rawURL, "request")
	}
	defer func() { _ = httpResp.Body.Close() }()

	switch {
	case httpResp.StatusCode == http.StatusNotModified:
		return &Response{NotModified: true, LastModified: lastModified}, false, nil
	case httpResp.StatusCode != http.StatusOK:
		preview, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyPreviewSize))
		err := errors.New(fmt.Errorf("unexpected status %d", httpResp.StatusCode)).
			Component("source").
			Category(errors.CategoryNetwork).
			NetworkContext(rawURL, f.config.Timeout).
			Context("status_code", httpResp.StatusCode).
			Context("body_preview", logger.RedactSensitiveData(string(preview))).
			Build()
		return nil, httpResp.StatusCode >= http.StatusInternalServerError, err
	}

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, f.config.MaxBytes+1))
	if err != nil {
		return nil, true, f.wrap(err, rawURL, "read_body")
	}
	if int64(len(body)) > f.config.MaxBytes {
		return nil, false, errors.Newf("download exceeds %d bytes", f.config.MaxBytes).
			Component("source").
			Category(errors.CategoryLimit).
			NetworkContext(rawURL, f.config.Timeout).
			Build()
	}

	return &Response{
		Body:         body,
		LastModified: httpResp.Header.Get("Last-Modified"),
	}, false, nil
}

func (f *Fetcher) wrap(err error, rawURL, operation string) error {
	// url.Error embeds the full URL, api key included
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = logger.RedactURL(urlErr.URL)
	}

	category := errors.CategoryNetwork
	switch {
	case errors.Is(err, context.Canceled):
		category = errors.CategoryCancellation
	case errors.Is(err, context.DeadlineExceeded):
		category = errors.CategoryTimeout
	}
	return errors.New(err).
		Component("source").
		Category(category).
		NetworkContext(rawURL, f.config.Timeout).
		Context("operation", operation).
		Build()
}
