package wordnet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/heartmarshall/wordnet-vocab/internal/domain"
)

// Fetcher retrieves a dataset from url and stores it at dest.
// Implemented by Downloader.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// Loader opens the configured dataset, acquiring it once when absent.
type Loader struct {
	path    string
	url     string
	fetcher Fetcher
	log     *slog.Logger
}

// NewLoader creates a Loader. An empty url disables acquisition.
func NewLoader(path, url string, fetcher Fetcher, logger *slog.Logger) *Loader {
	return &Loader{
		path:    path,
		url:     url,
		fetcher: fetcher,
		log:     logger.With("component", "wordnet"),
	}
}

// Open returns a Source for the dataset. If the dataset path does not exist,
// one download attempt is made; if the dataset is still unavailable
// afterwards, the error matches domain.ErrDatasetUnavailable.
func (l *Loader) Open(ctx context.Context) (Source, error) {
	src, err := Open(l.path)
	if err == nil {
		return src, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", domain.ErrDatasetUnavailable, err)
	}

	if l.url == "" || l.fetcher == nil {
		return nil, fmt.Errorf("%w: %s not found and no download URL configured", domain.ErrDatasetUnavailable, l.path)
	}

	l.log.WarnContext(ctx, "dataset not found, downloading",
		slog.String("path", l.path),
		slog.String("url", l.url),
	)

	if err := l.fetcher.Fetch(ctx, l.url, l.path); err != nil {
		return nil, fmt.Errorf("%w: download %s: %w", domain.ErrDatasetUnavailable, l.url, err)
	}

	src, err = Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDatasetUnavailable, err)
	}

	l.log.InfoContext(ctx, "dataset downloaded", slog.String("path", l.path))
	return src, nil
}
