// Package vocab builds a lemma/part-of-speech vocabulary from WordNet sense
// groups and serializes it deterministically.
// Pure functions: sense groups in, sorted entries out. No I/O except Save.
package vocab

import (
	"cmp"
	"slices"

	"github.com/heartmarshall/wordnet-vocab/internal/domain"
)

// Stats holds extraction statistics for logging.
type Stats struct {
	Groups         int
	SkippedGroups  int // category code not in the table
	Labels         int
	RejectedLabels int // not a single [a-z]+ token after lowercasing
	Words          int
}

// Vocabulary accumulates word → category set. Entries only ever gain
// categories; nothing is removed.
type Vocabulary struct {
	words map[string]map[domain.CategoryName]struct{}
	stats Stats
}

// New returns an empty Vocabulary.
func New() *Vocabulary {
	return &Vocabulary{words: make(map[string]map[domain.CategoryName]struct{})}
}

// Build runs a single pass over groups and returns the resulting Vocabulary.
func Build(groups []domain.SenseGroup) *Vocabulary {
	v := New()
	for _, g := range groups {
		v.Add(g)
	}
	return v
}

// Add merges one sense group. Groups with an unmapped category contribute
// nothing, and labels that are not single alphabetic tokens are skipped.
func (v *Vocabulary) Add(g domain.SenseGroup) {
	v.stats.Groups++

	category, ok := domain.ResolveCategory(g.Category)
	if !ok {
		v.stats.SkippedGroups++
		return
	}

	for _, label := range g.Labels {
		v.stats.Labels++
		word, ok := domain.NormalizeLemma(label)
		if !ok {
			v.stats.RejectedLabels++
			continue
		}
		set, exists := v.words[word]
		if !exists {
			set = make(map[domain.CategoryName]struct{}, 1)
			v.words[word] = set
		}
		set[category] = struct{}{}
	}
}

// Len returns the number of distinct retained words.
func (v *Vocabulary) Len() int { return len(v.words) }

// Stats returns the extraction statistics so far.
func (v *Vocabulary) Stats() Stats {
	s := v.stats
	s.Words = len(v.words)
	return s
}

// Entries returns every retained word sorted by byte order, each with its
// categories sorted. Words with an empty category set are omitted.
func (v *Vocabulary) Entries() []domain.VocabularyEntry {
	entries := make([]domain.VocabularyEntry, 0, len(v.words))
	for word, set := range v.words {
		if len(set) == 0 {
			continue
		}
		cats := make([]domain.CategoryName, 0, len(set))
		for c := range set {
			cats = append(cats, c)
		}
		slices.Sort(cats)
		entries = append(entries, domain.VocabularyEntry{Word: word, Categories: cats})
	}
	slices.SortFunc(entries, func(a, b domain.VocabularyEntry) int {
		return cmp.Compare(a.Word, b.Word)
	})
	return entries
}
