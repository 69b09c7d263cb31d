// Package artifact reads and writes the files that hand work from one
// pipeline stage to the next: extracted chunks, vectors and metadata.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"kvkkrag/internal/domain"
)

const (
	ChunksFile   = "extracted_chunks.json"
	MetadataFile = "metadata.json"
	VectorsFile  = "vectors.json"
	SummaryFile  = "ozet_rapor.txt"
)

var (
	ErrNotFound = errors.New("artifact not found")
	ErrMismatch = errors.New("vectors do not match chunks")
)

// Metadata describes a vectorised corpus.
type Metadata struct {
	Model       string         `json:"model"`
	Dimension   int            `json:"vektor_boyutu"`
	TotalChunks int            `json:"toplam_parca"`
	Chunks      []domain.Chunk `json:"chunks"`
}

func NewMetadata(model string, dimension int, chunks []domain.Chunk) Metadata {
	return Metadata{Model: model, Dimension: dimension, TotalChunks: len(chunks), Chunks: chunks}
}

func SaveChunks(dir string, chunks []domain.Chunk) (string, error) {
	if chunks == nil {
		chunks = []domain.Chunk{}
	}
	return writeJSON(dir, ChunksFile, chunks)
}

func LoadChunks(dir string) ([]domain.Chunk, error) {
	var chunks []domain.Chunk
	if err := readJSON(dir, ChunksFile, &chunks); err != nil {
		return nil, err
	}
	return chunks, nil
}

func SaveMetadata(dir string, meta Metadata) (string, error) {
	return writeJSON(dir, MetadataFile, meta)
}

func LoadMetadata(dir string) (Metadata, error) {
	var meta Metadata
	if err := readJSON(dir, MetadataFile, &meta); err != nil {
		return Metadata{}, err
	}
	return meta, nil
}

func SaveVectors(dir string, vectors [][]float64) (string, error) {
	return writeJSON(dir, VectorsFile, vectors)
}

func LoadVectors(dir string) ([][]float64, error) {
	var vectors [][]float64
	if err := readJSON(dir, VectorsFile, &vectors); err != nil {
		return nil, err
	}
	return vectors, nil
}

// Index is a vectorised corpus loaded back from disk.
type Index struct {
	Metadata Metadata
	Vectors  [][]float64
}

// LoadIndex reads metadata and vectors and checks that they line up.
func LoadIndex(dir string) (Index, error) {
	meta, err := LoadMetadata(dir)
	if err != nil {
		return Index{}, err
	}
	vectors, err := LoadVectors(dir)
	if err != nil {
		return Index{}, err
	}
	if len(vectors) != len(meta.Chunks) {
		return Index{}, fmt.Errorf("%w: %d vectors for %d chunks", ErrMismatch, len(vectors), len(meta.Chunks))
	}
	for i, v := range vectors {
		if len(v) != meta.Dimension {
			return Index{}, fmt.Errorf("%w: vector %d has %d dimensions, want %d", ErrMismatch, i, len(v), meta.Dimension)
		}
	}
	return Index{Metadata: meta, Vectors: vectors}, nil
}

func writeJSON(dir, name string, v any) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func readJSON(dir, name string, v any) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
