package domain

// Chunker splits extracted source units into indexed chunks.
type Chunker interface {
	Chunk(units []SourceUnit) ([]Chunk, error)
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}
