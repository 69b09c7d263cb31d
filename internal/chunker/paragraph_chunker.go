package chunker

import "kvkkrag/internal/domain"

// ParagraphChunker indexes source units with fixed length limits.
type ParagraphChunker struct {
	minChars int
	maxChars int
}

func NewParagraphChunker(minChars, maxChars int) *ParagraphChunker {
	if maxChars <= 0 {
		maxChars = MaxChunkChars
	}
	if minChars < 0 {
		minChars = 0
	}
	return &ParagraphChunker{minChars: minChars, maxChars: maxChars}
}

func (c *ParagraphChunker) Chunk(units []domain.SourceUnit) ([]domain.Chunk, error) {
	return Index(units, c.minChars, c.maxChars)
}

// Limits reports the configured minimum and maximum chunk length in runes.
func (c *ParagraphChunker) Limits() (minChars, maxChars int) {
	return c.minChars, c.maxChars
}
