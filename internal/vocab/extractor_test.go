package vocab

import (
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordnet-vocab/internal/domain"
)

var wordPattern = regexp.MustCompile(`^[a-z]+$`)

func group(code string, labels ...string) domain.SenseGroup {
	return domain.SenseGroup{Category: domain.CategoryCode(code), Labels: labels}
}

func TestBuild_MergesCategoriesAcrossGroups(t *testing.T) {
	t.Parallel()

	v := Build([]domain.SenseGroup{
		group("n", "Dog"),
		group("v", "dog"),
	})

	entries := v.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "dog", entries[0].Word)
	assert.Equal(t, []domain.CategoryName{domain.CategoryNoun, domain.CategoryVerb}, entries[0].Categories)
}

func TestBuild_UnmappedCategorySkipsWholeGroup(t *testing.T) {
	t.Parallel()

	v := Build([]domain.SenseGroup{
		group("x", "foo", "bar"),
		group("n", "bar"),
	})

	entries := v.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "bar", entries[0].Word)

	stats := v.Stats()
	assert.Equal(t, 2, stats.Groups)
	assert.Equal(t, 1, stats.SkippedGroups)
	assert.Equal(t, 1, stats.Labels, "labels of a skipped group are not counted")
	assert.Equal(t, 1, stats.Words)
}

func TestBuild_SatelliteCollapsesToAdjective(t *testing.T) {
	t.Parallel()

	v := Build([]domain.SenseGroup{
		group("a", "happy"),
		group("s", "happy", "glad"),
	})

	entries := v.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "glad", entries[0].Word)
	assert.Equal(t, []domain.CategoryName{domain.CategoryAdjective}, entries[0].Categories)
	assert.Equal(t, "happy", entries[1].Word)
	assert.Equal(t, []domain.CategoryName{domain.CategoryAdjective}, entries[1].Categories)
}

func TestBuild_RejectsNonAlphabeticLabels(t *testing.T) {
	t.Parallel()

	v := Build([]domain.SenseGroup{
		group("n", "ice_cream", "well-known", "4x4", "a.m.", "ice", "cream", "café"),
	})

	var words []string
	for _, e := range v.Entries() {
		words = append(words, e.Word)
	}
	assert.Equal(t, []string{"cream", "ice"}, words)
	assert.Equal(t, 5, v.Stats().RejectedLabels)
}

func TestBuild_DuplicateLabelsInOneGroup(t *testing.T) {
	t.Parallel()

	v := Build([]domain.SenseGroup{group("n", "Run", "run", "RUN")})
	entries := v.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, []domain.CategoryName{domain.CategoryNoun}, entries[0].Categories)
}

func TestBuild_EmptyInput(t *testing.T) {
	t.Parallel()

	v := Build(nil)
	assert.Equal(t, 0, v.Len())
	assert.Empty(t, v.Entries())
	assert.Equal(t, Stats{}, v.Stats())
}

func TestEntries_SortedAndWellFormed(t *testing.T) {
	t.Parallel()

	v := Build([]domain.SenseGroup{
		group("v", "zoom", "Run", "walk"),
		group("n", "walk", "apple", "Zoom", "run"),
		group("r", "fast", "quickly"),
		group("a", "fast", "quick"),
		group("s", "quick"),
		group("n", "run_out", "o'clock", "B-52"),
	})

	entries := v.Entries()
	require.NotEmpty(t, entries)

	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
		assert.Regexp(t, wordPattern, e.Word)
		require.NotEmpty(t, e.Categories, "word %q has no categories", e.Word)
		assert.True(t, slices.IsSorted(e.Categories), "categories of %q not sorted", e.Word)
		assert.Len(t, slices.Compact(slices.Clone(e.Categories)), len(e.Categories), "duplicate categories for %q", e.Word)
	}
	assert.True(t, slices.IsSorted(words))
	assert.Equal(t, []string{"apple", "fast", "quick", "quickly", "run", "walk", "zoom"}, words)
}

func TestVocabulary_AddIsIncremental(t *testing.T) {
	t.Parallel()

	v := New()
	v.Add(group("n", "light"))
	require.Equal(t, 1, v.Len())

	v.Add(group("a", "light"))
	v.Add(group("v", "light"))
	entries := v.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "adjective,noun,verb", entries[0].CategoryList())
}
