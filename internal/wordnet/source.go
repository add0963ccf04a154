// Package wordnet reads Open English WordNet datasets into sense groups.
//
// Two on-disk layouts are supported:
//
//	directory: OEWN JSON synset files noun.*.json, verb.*.json, adj.*.json, adv.*.json
//	file:      a GWN-LMF JSON document, optionally gzip-compressed
//
// Readers are pure: path in, domain structs out. No database dependencies.
package wordnet

import (
	"context"
	"fmt"
	"os"

	"github.com/heartmarshall/wordnet-vocab/internal/domain"
)

// Source enumerates every sense group of a lexical database.
// Order is unspecified; consumers must not depend on it.
type Source interface {
	SenseGroups(ctx context.Context) ([]domain.SenseGroup, error)
}

// Stats holds reader statistics for logging.
type Stats struct {
	Files   int
	Synsets int
	Entries int
}

// Open picks a reader for path: a directory is read as OEWN JSON, a regular
// file as GWN-LMF JSON. A missing path yields an error matching fs.ErrNotExist.
func Open(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	if info.IsDir() {
		return NewOEWNDir(path), nil
	}
	return NewLMFFile(path), nil
}
