package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordnet-vocab/internal/domain"
)

// SeedExport inserts a bare vocabulary_exports row and returns it.
func SeedExport(t *testing.T, pool *pgxpool.Pool, wordCount int) domain.VocabularyExport {
	t.Helper()

	export := domain.VocabularyExport{
		ID:         uuid.New(),
		OutputPath: "vocab-" + uuid.New().String()[:8] + ".txt",
		Mode:       "aggregate",
		Labels:     "name",
		WordCount:  wordCount,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO vocabulary_exports (id, output_path, mode, labels, word_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		export.ID, export.OutputPath, export.Mode, export.Labels, export.WordCount, export.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed export: %v", err)
	}
	return export
}

// ExportExists reports whether a vocabulary_exports row with the given ID exists.
func ExportExists(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM vocabulary_exports WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: export exists: %v", err)
	}
	return exists
}
