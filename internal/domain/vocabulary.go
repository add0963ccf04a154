package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SenseGroup is one synset as provided by the lexical database: a category
// code and the surface labels of its member lemmas, in source order.
type SenseGroup struct {
	Category CategoryCode
	Labels   []string
}

// VocabularyEntry is a retained word with every category it is attested under.
// Categories are sorted and free of duplicates.
type VocabularyEntry struct {
	Word       string
	Categories []CategoryName
}

// CategoryList returns the categories comma-joined, e.g. "noun,verb".
func (e VocabularyEntry) CategoryList() string {
	parts := make([]string, len(e.Categories))
	for i, c := range e.Categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

// VocabularyExport records one extraction run persisted to the database.
type VocabularyExport struct {
	ID         uuid.UUID
	OutputPath string
	Mode       string
	Labels     string
	WordCount  int
	CreatedAt  time.Time
}
