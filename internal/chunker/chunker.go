// Package chunker splits extracted page and slide text into bounded pieces
// and assigns them stable, dense identifiers.
package chunker

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"kvkkrag/internal/domain"
)

const (
	// MaxChunkChars is the default upper bound of a chunk, in runes.
	MaxChunkChars = 500
	// MinChunkChars is the default length under which pieces are dropped.
	MinChunkChars = 20
)

// ErrInvalidUnit is returned for source units missing a document name or a valid index.
var ErrInvalidUnit = errors.New("invalid source unit")

// Split breaks text into pieces of at most maxChars runes along paragraph
// boundaries, falling back to word boundaries for oversized paragraphs.
// A single word longer than maxChars is emitted as is.
func Split(text string, maxChars int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if maxChars <= 0 || runeLen(text) <= maxChars {
		return []string{text}
	}

	var chunks []string
	var buf string
	flush := func() {
		if s := strings.TrimSpace(buf); s != "" {
			chunks = append(chunks, s)
		}
		buf = ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, para := range strings.Split(text, "\n") {
		candidate := para
		if buf != "" {
			candidate = strings.TrimSpace(buf + "\n" + para)
		}
		if runeLen(candidate) <= maxChars {
			buf = candidate
			continue
		}
		flush()
		if runeLen(para) <= maxChars {
			buf = para
			continue
		}
		for _, word := range strings.Fields(para) {
			candidate := word
			if buf != "" {
				candidate = buf + " " + word
			}
			if runeLen(candidate) <= maxChars {
				buf = candidate
				continue
			}
			flush()
			buf = word
		}
	}
	flush()
	return chunks
}

// Index splits every unit and numbers the resulting chunks. IDs are dense
// and shared across units; sequence numbers restart at 1 per unit. Pieces
// shorter than minChars are dropped without consuming an ID.
func Index(units []domain.SourceUnit, minChars, maxChars int) ([]domain.Chunk, error) {
	var out []domain.Chunk
	for _, u := range units {
		if u.Document == "" {
			return nil, fmt.Errorf("unit %d: empty document name: %w", u.Index, ErrInvalidUnit)
		}
		if u.Index < 1 {
			return nil, fmt.Errorf("%s unit %d: index must be >= 1: %w", u.Document, u.Index, ErrInvalidUnit)
		}
		seq := 0
		for _, piece := range Split(u.Text, maxChars) {
			if runeLen(piece) < minChars {
				continue
			}
			seq++
			out = append(out, domain.Chunk{
				ID:       len(out),
				Document: u.Document,
				Unit:     u.Index,
				Sequence: seq,
				Text:     piece,
			})
		}
	}
	return out, nil
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
