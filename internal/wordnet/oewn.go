package wordnet

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/heartmarshall/wordnet-vocab/internal/domain"
)

// oewnSynset holds a single synset from a {pos}.{category}.json file.
type oewnSynset struct {
	PartOfSpeech string   `json:"partOfSpeech"`
	Members      []string `json:"members"`
}

// OEWNDir reads an OEWN JSON directory as distributed by
// https://github.com/globalwordnet/english-wordnet.
type OEWNDir struct {
	dir   string
	stats Stats
}

// NewOEWNDir creates a reader for the given directory.
func NewOEWNDir(dir string) *OEWNDir {
	return &OEWNDir{dir: dir}
}

// Stats returns counters from the last SenseGroups call.
func (d *OEWNDir) Stats() Stats { return d.stats }

// SenseGroups reads every synset file. Files are visited in name order and
// synsets in ID order, so repeated calls return identical slices.
func (d *OEWNDir) SenseGroups(ctx context.Context) ([]domain.SenseGroup, error) {
	files, err := globSynsetFiles(d.dir)
	if err != nil {
		return nil, fmt.Errorf("glob synset files: %w", err)
	}

	var stats Stats
	var groups []domain.SenseGroup
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		synsets, err := readSynsetFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		stats.Files++

		ids := make([]string, 0, len(synsets))
		for id := range synsets {
			ids = append(ids, id)
		}
		slices.Sort(ids)

		for _, id := range ids {
			s := synsets[id]
			stats.Synsets++
			groups = append(groups, domain.SenseGroup{
				Category: domain.CategoryCode(s.PartOfSpeech),
				Labels:   s.Members,
			})
		}
	}

	d.stats = stats
	return groups, nil
}

// readSynsetFile reads a single synset file ({pos}.{category}.json).
func readSynsetFile(path string) (map[string]oewnSynset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var synsets map[string]oewnSynset
	if err := json.NewDecoder(f).Decode(&synsets); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return synsets, nil
}

// globSynsetFiles finds all synset files in the directory.
// Synset files follow the pattern {pos}.{category}.json where pos is noun/verb/adj/adv;
// entries-*.json and frames.json are ignored.
func globSynsetFiles(dir string) ([]string, error) {
	var result []string
	for _, prefix := range []string{"adj.", "adv.", "noun.", "verb."} {
		matches, err := filepath.Glob(filepath.Join(dir, prefix+"*.json"))
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}
	return result, nil
}
