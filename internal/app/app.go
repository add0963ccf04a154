package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordnet-vocab/internal/adapter/postgres"
	"github.com/heartmarshall/wordnet-vocab/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/wordnet-vocab/internal/config"
	"github.com/heartmarshall/wordnet-vocab/internal/domain"
	"github.com/heartmarshall/wordnet-vocab/internal/vocab"
	"github.com/heartmarshall/wordnet-vocab/internal/wordnet"
	"github.com/heartmarshall/wordnet-vocab/pkg/ctxutil"
)

// DefaultOutputPath is used when no output path is given on the command line.
const DefaultOutputPath = "vocab.txt"

// DatasetOpener opens the lexical database. Implemented by wordnet.Loader.
type DatasetOpener interface {
	Open(ctx context.Context) (wordnet.Source, error)
}

// ExportRepo persists a finished run. Implemented by vocabulary.Repo.
type ExportRepo interface {
	SaveExport(ctx context.Context, export domain.VocabularyExport, entries []domain.VocabularyEntry) (domain.VocabularyExport, error)
}

// Result holds the outcome of one extraction run.
type Result struct {
	Path     string
	Words    int
	Stats    vocab.Stats
	Export   *domain.VocabularyExport
	Duration time.Duration
}

// Extractor runs dataset → vocabulary → file (→ database).
type Extractor struct {
	log    *slog.Logger
	opener DatasetOpener
	repo   ExportRepo
	policy vocab.Policy
}

// NewExtractor creates an Extractor. repo may be nil, in which case nothing
// is persisted beyond the output file.
func NewExtractor(logger *slog.Logger, opener DatasetOpener, repo ExportRepo, policy vocab.Policy) *Extractor {
	return &Extractor{
		log:    logger,
		opener: opener,
		repo:   repo,
		policy: policy,
	}
}

// Run extracts the vocabulary and writes it to outputPath.
// Words is the number of lines written. The persisted export reuses the
// run ID from ctx when one is set.
func (e *Extractor) Run(ctx context.Context, outputPath string) (Result, error) {
	start := time.Now()

	src, err := e.opener.Open(ctx)
	if err != nil {
		return Result{}, err
	}

	groups, err := src.SenseGroups(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read sense groups: %w", err)
	}

	v := vocab.Build(groups)
	stats := v.Stats()
	e.log.InfoContext(ctx, "vocabulary built",
		slog.Int("groups", stats.Groups),
		slog.Int("skipped_groups", stats.SkippedGroups),
		slog.Int("labels", stats.Labels),
		slog.Int("rejected_labels", stats.RejectedLabels),
		slog.Int("words", stats.Words),
	)

	entries := v.Entries()
	n, err := vocab.Save(outputPath, entries, e.policy)
	if err != nil {
		return Result{}, fmt.Errorf("save vocabulary: %w", err)
	}

	result := Result{Path: outputPath, Words: n, Stats: stats}

	if e.repo != nil {
		runID, _ := ctxutil.RunIDFromCtx(ctx)
		export, err := e.repo.SaveExport(ctx, domain.VocabularyExport{
			ID:         runID,
			OutputPath: outputPath,
			Mode:       string(e.policy.Mode),
			Labels:     string(e.policy.Labels),
			WordCount:  n,
		}, entries)
		if err != nil {
			return result, fmt.Errorf("persist export: %w", err)
		}
		result.Export = &export
		e.log.InfoContext(ctx, "export persisted",
			slog.String("export_id", export.ID.String()),
			slog.Int("entries", len(entries)),
		)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// Run is the application entry point. It wires the dataset loader, the
// optional database sink and the extractor from cfg, runs one extraction
// into outputPath and reports "Saved N words to PATH" on stdout.
func Run(ctx context.Context, cfg *config.Config, outputPath string, logger *slog.Logger, stdout io.Writer) error {
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	logger = logger.With(slog.String("run_id", runID.String()))

	logger.InfoContext(ctx, "starting vocabulary extraction",
		slog.String("version", BuildVersion()),
		slog.String("dataset", cfg.WordNet.Path),
		slog.String("output", outputPath),
	)

	policy, err := vocab.ParsePolicy(cfg.Vocab.Mode, cfg.Vocab.Labels)
	if err != nil {
		return err
	}

	loader := wordnet.NewLoader(
		filepath.Clean(cfg.WordNet.Path),
		cfg.WordNet.DownloadURL,
		wordnet.NewDownloader(cfg.WordNet.DownloadTimeout, logger),
		logger,
	)

	var repo ExportRepo
	if cfg.Database.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "database ready", slog.Int("migrations_applied", applied))

		repo = vocabulary.New(pool, postgres.NewTxManager(pool), cfg.Database.BatchSize)
	}

	result, err := NewExtractor(logger, loader, repo, policy).Run(ctx, outputPath)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "extraction completed",
		slog.Int("words", result.Words),
		slog.Duration("duration", result.Duration),
	)

	_, err = fmt.Fprintf(stdout, "Saved %d words to %s\n", result.Words, result.Path)
	return err
}
