// Package service runs the pipeline stages: extraction, vectorisation,
// search, analysis and reporting.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"kvkkrag/internal/artifact"
	"kvkkrag/internal/chunker"
	"kvkkrag/internal/domain"
	"kvkkrag/internal/embedding"
	"kvkkrag/internal/extract"
	"kvkkrag/internal/mention"
	"kvkkrag/internal/metrics"
	"kvkkrag/internal/notation"
	"kvkkrag/internal/storage"
	"kvkkrag/internal/vectorstore"
	"kvkkrag/pkg/logger"
)

var log = logger.New("service")

var (
	ErrNoChunks      = errors.New("no chunks to vectorize")
	ErrModelMismatch = errors.New("index was built with a different embedder")
)

// Options holds the directories and tuning knobs of a run.
type Options struct {
	VectorsDir       string
	TXTDir           string
	BatchSize        int
	SummarySentences int
}

type Pipeline struct {
	chunker    domain.Chunker
	embedder   embedding.Embedder
	store      vectorstore.Storage
	summarizer domain.Summarizer
	scanner    *notation.Scanner
	mentions   *mention.Extractor
	metrics    *metrics.Recorder
	opts       Options
	official   OfficialSource
	publisher  storage.Storage

	chunks []domain.Chunk
}

func NewPipeline(ch domain.Chunker, emb embedding.Embedder, store vectorstore.Storage, sum domain.Summarizer, rec *metrics.Recorder, opts Options) *Pipeline {
	if rec == nil {
		rec = metrics.New()
	}
	return &Pipeline{
		chunker:    ch,
		embedder:   emb,
		store:      store,
		summarizer: sum,
		scanner:    notation.NewScanner(),
		mentions:   mention.NewExtractor(),
		metrics:    rec,
		opts:       opts,
	}
}

func (p *Pipeline) Metrics() *metrics.Recorder { return p.metrics }

// Chunks returns the chunks of the last extraction or loaded index.
func (p *Pipeline) Chunks() []domain.Chunk { return p.chunks }

// Extract reads every supported document under dir, chunks it and saves
// the chunks for a later vectorize run.
func (p *Pipeline) Extract(ctx context.Context, dir string) ([]extract.Document, []domain.Chunk, error) {
	defer p.metrics.ObserveStage("extract", time.Now())
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	docs, err := extract.Dir(dir)
	if err != nil {
		return nil, nil, err
	}
	units := extract.Units(docs)
	chunks, err := p.chunker.Chunk(units)
	if err != nil {
		return nil, nil, fmt.Errorf("chunk: %w", err)
	}
	p.metrics.Documents.Add(float64(len(docs)))
	p.metrics.Units.Add(float64(len(units)))
	p.metrics.ChunkOutcome(len(chunks), p.dropped(units, len(chunks)))

	if _, err := artifact.SaveChunks(p.opts.VectorsDir, chunks); err != nil {
		return nil, nil, err
	}
	log.Info("extracted", "documents", len(docs), "units", len(units), "chunks", len(chunks))
	p.chunks = chunks
	return docs, chunks, nil
}

// dropped counts split pieces that fell under the minimum length.
func (p *Pipeline) dropped(units []domain.SourceUnit, emitted int) int {
	limited, ok := p.chunker.(interface{ Limits() (int, int) })
	if !ok {
		return 0
	}
	_, maxChars := limited.Limits()
	pieces := 0
	for _, u := range units {
		pieces += len(chunker.Split(u.Text, maxChars))
	}
	return pieces - emitted
}

// ExportTXT writes one TXT file per document and returns their paths.
func (p *Pipeline) ExportTXT(docs []extract.Document) ([]string, error) {
	paths := make([]string, 0, len(docs))
	for _, d := range docs {
		path, err := extract.WriteTXT(p.opts.TXTDir, d)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	log.Info("txt exported", "files", len(paths), "dir", p.opts.TXTDir)
	return paths, nil
}

// Vectorize embeds chunks, fills the vector store and writes metadata,
// vectors and the summary report.
func (p *Pipeline) Vectorize(ctx context.Context, chunks []domain.Chunk) (artifact.Metadata, error) {
	defer p.metrics.ObserveStage("vectorize", time.Now())
	if len(chunks) == 0 {
		return artifact.Metadata{}, ErrNoChunks
	}
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	if err := p.embedder.Prepare(ctx, texts); err != nil {
		return artifact.Metadata{}, fmt.Errorf("prepare embedder: %w", err)
	}
	vectors, err := embedding.EmbedAll(ctx, p.embedder, texts, p.opts.BatchSize)
	if err != nil {
		return artifact.Metadata{}, err
	}
	p.metrics.Embeddings.Add(float64(len(vectors)))

	dim := len(vectors[0])
	if err := p.fill(ctx, dim, chunks, vectors); err != nil {
		return artifact.Metadata{}, err
	}

	meta := artifact.NewMetadata(p.embedder.Name(), dim, chunks)
	if _, err := artifact.SaveMetadata(p.opts.VectorsDir, meta); err != nil {
		return meta, err
	}
	if _, err := artifact.SaveVectors(p.opts.VectorsDir, vectors); err != nil {
		return meta, err
	}
	if _, err := artifact.WriteSummary(p.opts.VectorsDir, meta, p.documentSummaries(chunks)); err != nil {
		return meta, err
	}
	log.Info("vectorized", "model", meta.Model, "dimension", dim, "chunks", len(chunks))
	p.chunks = chunks
	return meta, nil
}

// LoadIndex restores a vectorised corpus from disk into the vector store.
// Corpus-fitted embedders are prepared again on the stored chunk texts.
func (p *Pipeline) LoadIndex(ctx context.Context) (artifact.Metadata, error) {
	idx, err := artifact.LoadIndex(p.opts.VectorsDir)
	if err != nil {
		return artifact.Metadata{}, err
	}
	meta := idx.Metadata
	if meta.Model != p.embedder.Name() {
		return meta, fmt.Errorf("%w: %s, configured %s", ErrModelMismatch, meta.Model, p.embedder.Name())
	}
	texts := make([]string, len(meta.Chunks))
	for i, c := range meta.Chunks {
		texts[i] = c.Text
	}
	if err := p.embedder.Prepare(ctx, texts); err != nil {
		return meta, fmt.Errorf("prepare embedder: %w", err)
	}
	if len(meta.Chunks) > 0 {
		if err := p.fill(ctx, meta.Dimension, meta.Chunks, idx.Vectors); err != nil {
			return meta, err
		}
	}
	p.chunks = meta.Chunks
	log.Debug("index loaded", "model", meta.Model, "chunks", meta.TotalChunks)
	return meta, nil
}

func (p *Pipeline) fill(ctx context.Context, dim int, chunks []domain.Chunk, vectors [][]float64) error {
	if err := p.store.Init(ctx, dim); err != nil {
		return fmt.Errorf("init vector store: %w", err)
	}
	if err := p.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear vector store: %w", err)
	}
	if err := p.store.Upsert(ctx, chunks, vectors); err != nil {
		return fmt.Errorf("upsert vectors: %w", err)
	}
	return nil
}

// documentSummaries returns a short extractive summary per document.
// Summarizer failures leave the document without a summary.
func (p *Pipeline) documentSummaries(chunks []domain.Chunk) map[string]string {
	if p.summarizer == nil {
		return nil
	}
	texts := map[string][]string{}
	for _, c := range chunks {
		texts[c.Document] = append(texts[c.Document], c.Text)
	}
	names := make([]string, 0, len(texts))
	for name := range texts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]string, len(texts))
	for _, name := range names {
		s, err := p.summarizer.Summarize(strings.Join(texts[name], "\n"), p.opts.SummarySentences)
		if err != nil {
			log.Warn("summary failed", "document", name, "error", err)
			continue
		}
		out[name] = s
	}
	return out
}
