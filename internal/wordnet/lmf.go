package wordnet

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/heartmarshall/wordnet-vocab/internal/domain"
)

// GWN-LMF JSON deserialization types.

type lmfDocument struct {
	Graph []lmfLexicon `json:"@graph"`
}

type lmfLexicon struct {
	Entries []lmfEntry  `json:"entry"`
	Synsets []lmfSynset `json:"synset"`
}

type lmfEntry struct {
	ID    string     `json:"@id"`
	Lemma lmfLemma   `json:"lemma"`
	Sense []lmfSense `json:"sense"`
}

type lmfLemma struct {
	WrittenForm  string `json:"writtenForm"`
	PartOfSpeech string `json:"partOfSpeech"`
}

type lmfSense struct {
	ID     string `json:"@id"`
	Synset string `json:"synset"`
}

type lmfSynset struct {
	ID           string `json:"@id"`
	PartOfSpeech string `json:"partOfSpeech"`
}

// LMFFile reads a GWN-LMF JSON document such as english-wordnet-2024.json
// or its .json.gz release artifact.
type LMFFile struct {
	path  string
	stats Stats
}

// NewLMFFile creates a reader for the given file.
func NewLMFFile(path string) *LMFFile {
	return &LMFFile{path: path}
}

// Stats returns counters from the last SenseGroups call.
func (f *LMFFile) Stats() Stats { return f.stats }

// SenseGroups decodes the document and groups lemma written forms by the
// synset their senses point at. A synset's category is its own partOfSpeech,
// falling back to the lemma's when the synset declares none or is not listed.
func (f *LMFFile) SenseGroups(ctx context.Context) ([]domain.SenseGroup, error) {
	doc, err := f.decode()
	if err != nil {
		return nil, err
	}

	stats := Stats{Files: 1}
	var groups []domain.SenseGroup
	for _, lex := range doc.Graph {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stats.Entries += len(lex.Entries)
		stats.Synsets += len(lex.Synsets)
		groups = append(groups, lexiconGroups(lex)...)
	}

	f.stats = stats
	return groups, nil
}

// lexiconGroups builds one group per synset: listed synsets first, in document
// order, then synsets only referenced from senses, in first-seen order.
func lexiconGroups(lex lmfLexicon) []domain.SenseGroup {
	index := make(map[string]int, len(lex.Synsets))
	groups := make([]domain.SenseGroup, 0, len(lex.Synsets))
	for _, s := range lex.Synsets {
		if _, dup := index[s.ID]; dup {
			continue
		}
		index[s.ID] = len(groups)
		groups = append(groups, domain.SenseGroup{Category: domain.CategoryCode(s.PartOfSpeech)})
	}

	for _, e := range lex.Entries {
		for _, sense := range e.Sense {
			i, ok := index[sense.Synset]
			if !ok {
				i = len(groups)
				index[sense.Synset] = i
				groups = append(groups, domain.SenseGroup{})
			}
			if groups[i].Category == "" {
				groups[i].Category = domain.CategoryCode(e.Lemma.PartOfSpeech)
			}
			groups[i].Labels = append(groups[i].Labels, e.Lemma.WrittenForm)
		}
	}
	return groups
}

func (f *LMFFile) decode() (lmfDocument, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return lmfDocument{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	r, err := maybeGunzip(bufio.NewReader(file))
	if err != nil {
		return lmfDocument{}, fmt.Errorf("open gzip stream: %w", err)
	}

	var doc lmfDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return lmfDocument{}, fmt.Errorf("decode JSON: %w", err)
	}
	return doc, nil
}

// maybeGunzip wraps br in a gzip reader when the stream starts with the gzip magic bytes.
func maybeGunzip(br *bufio.Reader) (io.Reader, error) {
	magic, err := br.Peek(2)
	if err != nil || magic[0] != 0x1f || magic[1] != 0x8b {
		// Short or plain streams go straight to the JSON decoder, which reports its own errors.
		return br, nil
	}
	return gzip.NewReader(br)
}
