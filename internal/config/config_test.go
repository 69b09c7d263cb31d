package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{inputDirEnv, outputDirEnv, qdrantEnv, qdrantPort, redisEnv, bucketEnv, logLevelEnv} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Chunker.MaxChars != 500 || cfg.Chunker.MinChars != 20 {
		t.Errorf("chunker = %+v", cfg.Chunker)
	}
	if cfg.Embedder.Type != "tfidf" || cfg.VectorStore.Type != "memory" || cfg.Cache.Type != "none" {
		t.Errorf("components = %s/%s/%s", cfg.Embedder.Type, cfg.VectorStore.Type, cfg.Cache.Type)
	}
	if cfg.Paths.VectorsDir() != filepath.Join("output", "vectors") {
		t.Errorf("vectors dir = %s", cfg.Paths.VectorsDir())
	}
}

func TestLoad_FileAndDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
paths:
  input_dir: decks
chunker:
  max_chars: 300
embedder:
  type: openai
vector_store:
  type: qdrant
cache:
  type: redis
  redis:
    ttl_hours: 24
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Paths.InputDir != "decks" || cfg.Paths.OutputDir != "output" {
		t.Errorf("paths = %+v", cfg.Paths)
	}
	if cfg.Chunker.MaxChars != 300 || cfg.Chunker.MinChars != 20 {
		t.Errorf("chunker = %+v", cfg.Chunker)
	}
	if cfg.Embedder.OpenAI == nil || cfg.Embedder.OpenAI.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("openai defaults missing: %+v", cfg.Embedder.OpenAI)
	}
	if q := cfg.VectorStore.Qdrant; q == nil || q.Port != 6334 || q.Collection != "kvkk_chunks" {
		t.Errorf("qdrant defaults = %+v", q)
	}
	if r := cfg.Cache.Redis; r == nil || r.Addr != "localhost:6379" || r.TTL().Hours() != 24 {
		t.Errorf("redis = %+v", r)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(inputDirEnv, "/data/in")
	t.Setenv(qdrantEnv, "qdrant.internal")
	t.Setenv(qdrantPort, "7000")
	t.Setenv(redisEnv, "cache:6379")
	t.Setenv(bucketEnv, "kvkk-reports")
	t.Setenv(logLevelEnv, "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Paths.InputDir != "/data/in" || cfg.Log.Level != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.VectorStore.Qdrant.Host != "qdrant.internal" || cfg.VectorStore.Qdrant.Port != 7000 {
		t.Errorf("qdrant = %+v", cfg.VectorStore.Qdrant)
	}
	if cfg.Cache.Redis.Addr != "cache:6379" || cfg.Storage.S3.Bucket != "kvkk-reports" {
		t.Errorf("redis/s3 = %+v / %+v", cfg.Cache.Redis, cfg.Storage.S3)
	}
}

func TestSaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Search.TopK = 9
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Search.TopK != 9 {
		t.Errorf("top k = %d", got.Search.TopK)
	}
}
