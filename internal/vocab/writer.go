package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gofrs/flock"

	"github.com/heartmarshall/wordnet-vocab/internal/domain"
)

// Lines renders entries as output lines (without the trailing newline).
// Entries must already be sorted by word, as returned by Vocabulary.Entries.
func Lines(entries []domain.VocabularyEntry, p Policy) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if len(e.Categories) == 0 {
			continue
		}
		switch p.Mode {
		case ModeWords:
			lines = append(lines, e.Word)
		case ModePairs:
			for _, c := range renderCategories(e.Categories, p) {
				lines = append(lines, e.Word+"\t"+c)
			}
		default:
			lines = append(lines, e.Word+"\t"+strings.Join(renderCategories(e.Categories, p), ","))
		}
	}
	return lines
}

// renderCategories maps categories to their labels, sorted and deduplicated.
func renderCategories(cats []domain.CategoryName, p Policy) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, p.render(c))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Write serializes entries to w, one "\n"-terminated line each.
// Returns the number of lines written.
func Write(w io.Writer, entries []domain.VocabularyEntry, p Policy) (int, error) {
	bw := bufio.NewWriter(w)
	lines := Lines(entries, p)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return 0, fmt.Errorf("write line: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return 0, fmt.Errorf("write line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("flush: %w", err)
	}
	return len(lines), nil
}

// Save writes entries to path, replacing any existing file atomically.
// A sidecar "<path>.lock" guards against concurrent runs; if another process
// holds it, Save fails with domain.ErrOutputLocked and the destination is untouched.
// On any error the destination keeps its previous content.
func Save(path string, entries []domain.VocabularyEntry, p Policy) (int, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return 0, fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return 0, fmt.Errorf("%s: %w", path, domain.ErrOutputLocked)
	}
	defer func() { _ = lock.Unlock() }()

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	tempFile, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer func() {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
	}()

	n, err := Write(tempFile, entries, p)
	if err != nil {
		return 0, err
	}
	if err := tempFile.Close(); err != nil {
		return 0, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0o644); err != nil {
		return 0, fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return 0, fmt.Errorf("replace %s: %w", path, err)
	}
	return n, nil
}
