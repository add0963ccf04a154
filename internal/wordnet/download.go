package wordnet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Downloader fetches dataset files over HTTP.
type Downloader struct {
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewDownloader creates a Downloader whose requests time out after timeout.
func NewDownloader(timeout time.Duration, logger *slog.Logger) *Downloader {
	return &Downloader{
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "download"),
	}
}

// Fetch downloads url into dest. The body is streamed to a temp file next to
// dest and renamed into place, so dest never holds a partial download.
func (d *Downloader) Fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("download: create request: %w", err)
	}

	resp, err := d.doWithRetry(ctx, req)
	if err != nil {
		return fmt.Errorf("download: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("download: create directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(dest)+".part.*")
	if err != nil {
		return fmt.Errorf("download: create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer func() {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
	}()

	n, err := io.Copy(tempFile, resp.Body)
	if err != nil {
		return fmt.Errorf("download: read body: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("download: close temp file: %w", err)
	}
	if err := os.Rename(tempPath, dest); err != nil {
		return fmt.Errorf("download: replace %s: %w", dest, err)
	}

	d.log.InfoContext(ctx, "download complete",
		slog.String("url", url),
		slog.Int64("bytes", n),
	)
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (d *Downloader) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := d.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	d.log.WarnContext(ctx, "download retry", slog.String("url", req.URL.String()), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(d.retryDelay):
	}

	return d.httpClient.Do(req)
}
