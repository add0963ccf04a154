package domain

import "testing"

func TestResolveCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   CategoryCode
		want   CategoryName
		wantOK bool
	}{
		{code: CategoryCodeNoun, want: CategoryNoun, wantOK: true},
		{code: CategoryCodeVerb, want: CategoryVerb, wantOK: true},
		{code: CategoryCodeAdjective, want: CategoryAdjective, wantOK: true},
		{code: CategoryCodeAdjectiveSatellite, want: CategoryAdjective, wantOK: true},
		{code: CategoryCodeAdverb, want: CategoryAdverb, wantOK: true},
		{code: "x", wantOK: false},
		{code: "", wantOK: false},
		{code: "N", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			t.Parallel()
			got, ok := ResolveCategory(tt.code)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ResolveCategory(%q) = (%q, %v), want (%q, %v)", tt.code, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCategoryName_Tag(t *testing.T) {
	t.Parallel()

	tests := map[CategoryName]string{
		CategoryNoun:      "n",
		CategoryVerb:      "v",
		CategoryAdjective: "a",
		CategoryAdverb:    "r",
		"other":           "",
	}
	for name, want := range tests {
		if got := name.Tag(); got != want {
			t.Errorf("%q.Tag() = %q, want %q", name, got, want)
		}
	}
}

func TestCategoryName_IsValid(t *testing.T) {
	t.Parallel()

	for _, n := range []CategoryName{CategoryNoun, CategoryVerb, CategoryAdjective, CategoryAdverb} {
		if !n.IsValid() {
			t.Errorf("%q should be valid", n)
		}
	}
	if CategoryName("satellite").IsValid() {
		t.Error("unknown category should be invalid")
	}
}

func TestVocabularyEntry_CategoryList(t *testing.T) {
	t.Parallel()

	e := VocabularyEntry{Word: "dog", Categories: []CategoryName{CategoryNoun, CategoryVerb}}
	if got := e.CategoryList(); got != "noun,verb" {
		t.Errorf("CategoryList() = %q, want %q", got, "noun,verb")
	}

	empty := VocabularyEntry{Word: "x"}
	if got := empty.CategoryList(); got != "" {
		t.Errorf("CategoryList() on empty = %q, want empty", got)
	}
}
