// Package vocabulary persists extracted vocabulary exports in PostgreSQL.
// Every export is stored as one vocabulary_exports row plus one
// vocabulary_entries row per word.
package vocabulary

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordnet-vocab/internal/adapter/postgres"
	"github.com/heartmarshall/wordnet-vocab/internal/domain"
)

const (
	exportsTable = "vocabulary_exports"
	entriesTable = "vocabulary_entries"

	defaultBatchSize = 1000
)

var exportColumns = []string{"id", "output_path", "mode", "labels", "word_count", "created_at"}

// builder returns a squirrel builder with PostgreSQL placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// TxRunner runs fn inside a transaction carried by ctx.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides vocabulary export persistence backed by PostgreSQL.
type Repo struct {
	pool      *pgxpool.Pool
	tx        TxRunner
	batchSize int
}

// New creates a new vocabulary repository. batchSize caps the number of
// entries per multi-row INSERT; non-positive values fall back to 1000.
func New(pool *pgxpool.Pool, tx TxRunner, batchSize int) *Repo {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Repo{pool: pool, tx: tx, batchSize: batchSize}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// SaveExport stores the export header and all of its entries in one
// transaction. A zero ID is replaced with a fresh UUID and a zero CreatedAt
// with the current time; the stored export is returned.
func (r *Repo) SaveExport(ctx context.Context, export domain.VocabularyExport, entries []domain.VocabularyEntry) (domain.VocabularyExport, error) {
	if export.ID == uuid.Nil {
		export.ID = uuid.New()
	}
	if export.CreatedAt.IsZero() {
		export.CreatedAt = time.Now().UTC()
	}

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		insert := builder().
			Insert(exportsTable).
			Columns(exportColumns...).
			Values(export.ID, export.OutputPath, export.Mode, export.Labels, export.WordCount, export.CreatedAt)

		sql, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build export insert: %w", err)
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return postgres.MapError(err, "export", export.ID.String())
		}

		for chunk := range slices.Chunk(entries, r.batchSize) {
			if err := r.insertEntries(ctx, q, export.ID, chunk); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.VocabularyExport{}, err
	}

	return export, nil
}

func (r *Repo) insertEntries(ctx context.Context, q postgres.Querier, exportID uuid.UUID, entries []domain.VocabularyEntry) error {
	insert := builder().
		Insert(entriesTable).
		Columns("export_id", "word", "categories")

	for _, e := range entries {
		insert = insert.Values(exportID, e.Word, categoryStrings(e.Categories))
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build entries insert: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "entries", fmt.Sprintf("%s (%d rows)", exportID, len(entries)))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// LatestExport returns the most recently created export.
// Returns domain.ErrNotFound if nothing has been exported yet.
func (r *Repo) LatestExport(ctx context.Context) (domain.VocabularyExport, error) {
	query := builder().
		Select(exportColumns...).
		From(exportsTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(1)

	return r.getExport(ctx, query, "latest")
}

// ExportByID returns a single export by primary key.
// Returns domain.ErrNotFound if the export does not exist.
func (r *Repo) ExportByID(ctx context.Context, id uuid.UUID) (domain.VocabularyExport, error) {
	query := builder().
		Select(exportColumns...).
		From(exportsTable).
		Where(squirrel.Eq{"id": id})

	return r.getExport(ctx, query, id.String())
}

// EntriesByExport returns the entries of an export ordered by word.
// An unknown export yields an empty slice.
func (r *Repo) EntriesByExport(ctx context.Context, exportID uuid.UUID) ([]domain.VocabularyEntry, error) {
	query := builder().
		Select("word", "categories").
		From(entriesTable).
		Where(squirrel.Eq{"export_id": exportID}).
		OrderBy("word")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entries select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "entries", exportID.String())
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VocabularyEntry, error) {
		var (
			word       string
			categories []string
		)
		if err := row.Scan(&word, &categories); err != nil {
			return domain.VocabularyEntry{}, err
		}
		return domain.VocabularyEntry{Word: word, Categories: toCategoryNames(categories)}, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "entries", exportID.String())
	}

	return entries, nil
}

func (r *Repo) getExport(ctx context.Context, query squirrel.SelectBuilder, key string) (domain.VocabularyExport, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return domain.VocabularyExport{}, fmt.Errorf("build export select: %w", err)
	}

	var e domain.VocabularyExport
	q := postgres.QuerierFromCtx(ctx, r.pool)
	err = q.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.OutputPath, &e.Mode, &e.Labels, &e.WordCount, &e.CreatedAt)
	if err != nil {
		return domain.VocabularyExport{}, postgres.MapError(err, "export", key)
	}
	return e, nil
}

// ---------------------------------------------------------------------------
// Converters
// ---------------------------------------------------------------------------

func categoryStrings(cs []domain.CategoryName) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

func toCategoryNames(ss []string) []domain.CategoryName {
	out := make([]domain.CategoryName, len(ss))
	for i, s := range ss {
		out[i] = domain.CategoryName(s)
	}
	return out
}
