package domain

// CategoryCode is the short part-of-speech tag attached to a WordNet synset.
type CategoryCode string

const (
	CategoryCodeNoun               CategoryCode = "n"
	CategoryCodeVerb               CategoryCode = "v"
	CategoryCodeAdjective          CategoryCode = "a"
	CategoryCodeAdjectiveSatellite CategoryCode = "s"
	CategoryCodeAdverb             CategoryCode = "r"
)

func (c CategoryCode) String() string { return string(c) }

// CategoryName is the human-readable grammatical category of a word.
type CategoryName string

const (
	CategoryNoun      CategoryName = "noun"
	CategoryVerb      CategoryName = "verb"
	CategoryAdjective CategoryName = "adjective"
	CategoryAdverb    CategoryName = "adverb"
)

func (n CategoryName) String() string { return string(n) }

func (n CategoryName) IsValid() bool {
	switch n {
	case CategoryNoun, CategoryVerb, CategoryAdjective, CategoryAdverb:
		return true
	}
	return false
}

// Tag returns the single-letter tag for the category. Satellite adjectives
// have already collapsed into CategoryAdjective, so they tag as "a".
func (n CategoryName) Tag() string {
	switch n {
	case CategoryNoun:
		return "n"
	case CategoryVerb:
		return "v"
	case CategoryAdjective:
		return "a"
	case CategoryAdverb:
		return "r"
	}
	return ""
}

// categoryNames maps WordNet codes to category names.
var categoryNames = map[CategoryCode]CategoryName{
	CategoryCodeNoun:               CategoryNoun,
	CategoryCodeVerb:               CategoryVerb,
	CategoryCodeAdjective:          CategoryAdjective,
	CategoryCodeAdjectiveSatellite: CategoryAdjective,
	CategoryCodeAdverb:             CategoryAdverb,
}

// ResolveCategory looks up the category name for a code.
// Codes outside the table report ok=false; that is not an error.
func ResolveCategory(code CategoryCode) (CategoryName, bool) {
	name, ok := categoryNames[code]
	return name, ok
}
