package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"kvkkrag/internal/cache"
	"kvkkrag/internal/chunker"
	"kvkkrag/internal/config"
	"kvkkrag/internal/domain"
	"kvkkrag/internal/embedding"
	"kvkkrag/internal/embedding/gemini"
	"kvkkrag/internal/embedding/openai"
	"kvkkrag/internal/embedding/tfidf"
	"kvkkrag/internal/metrics"
	"kvkkrag/internal/official"
	"kvkkrag/internal/storage"
	"kvkkrag/internal/summarizer"
	"kvkkrag/internal/vectorstore"
	"kvkkrag/internal/vectorstore/memory"
	"kvkkrag/internal/vectorstore/qdrant"
)

// App is a pipeline assembled from configuration together with the
// connections it holds open.
type App struct {
	Pipeline *Pipeline
	Config   *config.AppConfig
	closers  []func() error
}

// Close releases every connection opened by New.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// New assembles the pipeline selected by cfg.
func New(ctx context.Context, cfg *config.AppConfig) (*App, error) {
	app := &App{Config: cfg}
	rec := metrics.New()

	emb, err := app.embedder(ctx, cfg, rec)
	if err != nil {
		app.Close()
		return nil, err
	}
	store, err := app.vectorStore(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	sum, err := newSummarizer(cfg.Summarizer)
	if err != nil {
		app.Close()
		return nil, err
	}

	p := NewPipeline(
		chunker.NewParagraphChunker(cfg.Chunker.MinChars, cfg.Chunker.MaxChars),
		emb, store, sum, rec,
		Options{
			VectorsDir:       cfg.Paths.VectorsDir(),
			TXTDir:           cfg.Paths.TXTDir(),
			BatchSize:        cfg.Embedder.BatchSize,
			SummarySentences: cfg.Summarizer.MaxSentences,
		},
	)
	p.WithOfficial(official.NewFetcher(
		&http.Client{Timeout: time.Duration(cfg.Report.TimeoutSecs) * time.Second},
		cfg.Report.OfficialURL,
	))

	pub, err := newPublisher(ctx, cfg.Storage)
	if err != nil {
		app.Close()
		return nil, err
	}
	if pub != nil {
		p.WithPublisher(pub)
	}
	app.Pipeline = p
	return app, nil
}

func (a *App) embedder(ctx context.Context, cfg *config.AppConfig, rec *metrics.Recorder) (embedding.Embedder, error) {
	var emb embedding.Embedder
	switch cfg.Embedder.Type {
	case "tfidf", "":
		// vectors depend on the fitted vocabulary, so they are neither cached nor throttled
		return tfidf.NewEmbedder(), nil
	case "openai":
		oc := cfg.Embedder.OpenAI
		if oc == nil {
			return nil, fmt.Errorf("openai embedder config missing")
		}
		client, err := openai.NewClient(openai.Config{
			BaseURL:    oc.BaseURL,
			APIKeyEnv:  oc.APIKeyEnv,
			Model:      oc.Model,
			Dimensions: oc.Dimensions,
			Timeout:    time.Duration(oc.TimeoutSecs) * time.Second,
			MaxRetries: oc.MaxRetries,
		})
		if err != nil {
			return nil, fmt.Errorf("openai embedder init failed: %w", err)
		}
		emb = client
	case "gemini":
		gc := cfg.Embedder.Gemini
		if gc == nil {
			return nil, fmt.Errorf("gemini embedder config missing")
		}
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKeyEnv: gc.APIKeyEnv,
			Model:     gc.Model,
			Dimension: gc.Dimension,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini embedder init failed: %w", err)
		}
		emb = client
	default:
		return nil, fmt.Errorf("unknown embedder: %s", cfg.Embedder.Type)
	}

	if rl := cfg.Embedder.RateLimit; rl.RPS > 0 {
		emb = embedding.NewRateLimited(emb, rl.RPS, rl.Burst)
	}
	switch cfg.Cache.Type {
	case "none", "":
	case "redis":
		rc := cfg.Cache.Redis
		if rc == nil {
			return nil, fmt.Errorf("redis cache config missing")
		}
		client, err := cache.Dial(ctx, rc.Addr, rc.Password, rc.DB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		cached := embedding.NewCached(emb, cache.NewRedis(client, rc.Prefix, rc.TTL()))
		cached.OnLookup = rec.CacheLookup
		emb = cached
	default:
		return nil, fmt.Errorf("unknown cache: %s", cfg.Cache.Type)
	}
	return emb, nil
}

func (a *App) vectorStore(cfg *config.AppConfig) (vectorstore.Storage, error) {
	switch cfg.VectorStore.Type {
	case "memory", "":
		return memory.NewStorage(), nil
	case "qdrant":
		qc := cfg.VectorStore.Qdrant
		if qc == nil {
			return nil, fmt.Errorf("qdrant config missing")
		}
		st, err := qdrant.NewStorage(qdrant.Config{
			Host:       qc.Host,
			Port:       qc.Port,
			APIKey:     qc.APIKey,
			UseTLS:     qc.UseTLS,
			Collection: qc.Collection,
		})
		if err != nil {
			return nil, fmt.Errorf("qdrant init failed: %w", err)
		}
		a.closers = append(a.closers, st.Close)
		return st, nil
	default:
		return nil, fmt.Errorf("unknown vector store: %s", cfg.VectorStore.Type)
	}
}

func newSummarizer(cfg config.SummarizerConfig) (domain.Summarizer, error) {
	switch cfg.Type {
	case "frequency", "":
		return summarizer.NewFrequencySummarizer(), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Type)
	}
}

func newPublisher(ctx context.Context, cfg config.StorageConfig) (storage.Storage, error) {
	switch cfg.Type {
	case "none", "":
		return nil, nil
	case "local":
		return storage.New(ctx, storage.Config{Type: storage.TypeLocal, LocalPath: cfg.LocalPath})
	case "s3":
		sc := cfg.S3
		if sc == nil {
			return nil, fmt.Errorf("s3 storage config missing")
		}
		return storage.New(ctx, storage.Config{
			Type:       storage.TypeS3,
			S3Bucket:   sc.Bucket,
			S3Region:   sc.Region,
			S3Endpoint: sc.Endpoint,
			S3Prefix:   sc.Prefix,
		})
	default:
		return nil, fmt.Errorf("unknown storage: %s", cfg.Type)
	}
}
