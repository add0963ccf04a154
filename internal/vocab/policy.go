package vocab

import (
	"strings"

	"github.com/heartmarshall/wordnet-vocab/internal/domain"
)

// Mode controls how retained words are laid out in the output file.
type Mode string

const (
	// ModeAggregate writes one line per word: word<TAB>cat1,cat2.
	ModeAggregate Mode = "aggregate"
	// ModePairs writes one line per distinct (word, category) pair.
	ModePairs Mode = "pairs"
	// ModeWords writes bare words, one per line.
	ModeWords Mode = "words"
)

// Labels controls how categories are rendered.
type Labels string

const (
	// LabelsName renders categories as "noun", "verb", "adjective", "adverb".
	LabelsName Labels = "name"
	// LabelsTag renders categories as "n", "v", "a", "r".
	LabelsTag Labels = "tag"
)

// Policy selects the output layout. The zero value is not valid; use
// DefaultPolicy or ParsePolicy.
type Policy struct {
	Mode   Mode
	Labels Labels
}

// DefaultPolicy aggregates categories per word using human-readable names.
func DefaultPolicy() Policy {
	return Policy{Mode: ModeAggregate, Labels: LabelsName}
}

// ParsePolicy builds a Policy from configuration strings (case-insensitive).
// Empty values fall back to the defaults.
func ParsePolicy(mode, labels string) (Policy, error) {
	p := DefaultPolicy()
	var errs []domain.FieldError

	switch m := Mode(strings.ToLower(strings.TrimSpace(mode))); m {
	case "":
	case ModeAggregate, ModePairs, ModeWords:
		p.Mode = m
	default:
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be one of aggregate, pairs, words"})
	}

	switch l := Labels(strings.ToLower(strings.TrimSpace(labels))); l {
	case "":
	case LabelsName, LabelsTag:
		p.Labels = l
	default:
		errs = append(errs, domain.FieldError{Field: "labels", Message: "must be one of name, tag"})
	}

	if len(errs) > 0 {
		return Policy{}, domain.NewValidationErrors(errs)
	}
	return p, nil
}

func (p Policy) render(c domain.CategoryName) string {
	if p.Labels == LabelsTag {
		return c.Tag()
	}
	return string(c)
}
