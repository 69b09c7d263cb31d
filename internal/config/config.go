package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	inputDirEnv  = "KVKKRAG_INPUT_DIR"
	outputDirEnv = "KVKKRAG_OUTPUT_DIR"
	qdrantEnv    = "QDRANT_HOST"
	qdrantPort   = "QDRANT_PORT"
	redisEnv     = "REDIS_ADDR"
	bucketEnv    = "AWS_S3_BUCKET"
	logLevelEnv  = "LOG_LEVEL"
)

// PathsConfig locates inputs and outputs.
type PathsConfig struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
}

func (p PathsConfig) VectorsDir() string { return filepath.Join(p.OutputDir, "vectors") }
func (p PathsConfig) TXTDir() string     { return filepath.Join(p.OutputDir, "txt") }
func (p PathsConfig) ReportsDir() string { return filepath.Join(p.OutputDir, "reports") }

// ChunkerConfig configures how units are split into chunks. Lengths are in characters.
type ChunkerConfig struct {
	MaxChars int `yaml:"max_chars"`
	MinChars int `yaml:"min_chars"`
}

// OpenAIEmbedderConfig holds configuration for the OpenAI-compatible embedder.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	Dimensions  int    `yaml:"dimensions"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	MaxRetries  int    `yaml:"max_retries"`
}

// GeminiEmbedderConfig holds configuration for the Gemini embedder.
type GeminiEmbedderConfig struct {
	APIKeyEnv string `yaml:"api_key_env"`
	Model     string `yaml:"model"`
	Dimension int    `yaml:"dimension"`
}

// RateLimitConfig throttles remote embedders. Zero RPS disables it.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// EmbedderConfig selects and configures the text embedder implementation.
type EmbedderConfig struct {
	Type      string                `yaml:"type"`
	BatchSize int                   `yaml:"batch_size"`
	OpenAI    *OpenAIEmbedderConfig `yaml:"openai,omitempty"`
	Gemini    *GeminiEmbedderConfig `yaml:"gemini,omitempty"`
	RateLimit RateLimitConfig       `yaml:"rate_limit"`
}

// RedisConfig contains connection details for the embedding cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
	TTLHours int    `yaml:"ttl_hours"`
}

func (r RedisConfig) TTL() time.Duration { return time.Duration(r.TTLHours) * time.Hour }

// CacheConfig selects the embedding cache. Type is "none" or "redis".
type CacheConfig struct {
	Type  string       `yaml:"type"`
	Redis *RedisConfig `yaml:"redis,omitempty"`
}

// VectorStoreConfig selects and configures the vector store implementation.
type VectorStoreConfig struct {
	Type   string        `yaml:"type"`
	Qdrant *QdrantConfig `yaml:"qdrant,omitempty"`
}

// QdrantConfig contains connection details for a Qdrant vector store.
type QdrantConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	APIKey     string `yaml:"api_key"`
	UseTLS     bool   `yaml:"use_tls"`
	Collection string `yaml:"collection"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type         string `yaml:"type"`
	MaxSentences int    `yaml:"max_sentences"`
}

// SearchConfig holds query defaults.
type SearchConfig struct {
	TopK int `yaml:"top_k"`
}

// ReportConfig configures the HTML report.
type ReportConfig struct {
	Output      string `yaml:"output"`
	Online      bool   `yaml:"online"`
	OfficialURL string `yaml:"official_url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// S3Config contains the bucket that receives published outputs.
type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Prefix   string `yaml:"prefix"`
}

// StorageConfig selects where outputs are published. Type is "none", "local" or "s3".
type StorageConfig struct {
	Type      string    `yaml:"type"`
	LocalPath string    `yaml:"local_path"`
	S3        *S3Config `yaml:"s3,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig enables the Prometheus textfile written after each run.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Paths       PathsConfig       `yaml:"paths"`
	Chunker     ChunkerConfig     `yaml:"chunker"`
	Embedder    EmbedderConfig    `yaml:"embedder"`
	Cache       CacheConfig       `yaml:"cache"`
	VectorStore VectorStoreConfig `yaml:"vector_store"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Search      SearchConfig      `yaml:"search"`
	Report      ReportConfig      `yaml:"report"`
	Storage     StorageConfig     `yaml:"storage"`
	Log         LogConfig         `yaml:"log"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment overrides apply in both cases.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			cfg.applyEnvOverrides()
			applyConfigDefaults(cfg)
			return cfg, nil
		}
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	applyConfigDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/kvkkrag/config.yaml.
// If neither exists, it writes defaults to ~/.config/kvkkrag/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	if err := Save(userPath, defaultConfig()); err != nil {
		return nil, "", err
	}
	cfg, err := Load(userPath)
	return cfg, userPath, err
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "kvkkrag", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Paths:       PathsConfig{InputDir: ".", OutputDir: "output"},
		Chunker:     ChunkerConfig{MaxChars: 500, MinChars: 20},
		Embedder:    EmbedderConfig{Type: "tfidf", BatchSize: 64},
		Cache:       CacheConfig{Type: "none"},
		VectorStore: VectorStoreConfig{Type: "memory"},
		Summarizer:  SummarizerConfig{Type: "frequency", MaxSentences: 2},
		Search:      SearchConfig{TopK: 5},
		Report:      ReportConfig{Output: "KVKK_Analiz_Raporu.html", TimeoutSecs: 15},
		Storage:     StorageConfig{Type: "none"},
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

func (c *AppConfig) applyEnvOverrides() {
	if v := os.Getenv(inputDirEnv); v != "" {
		c.Paths.InputDir = v
	}
	if v := os.Getenv(outputDirEnv); v != "" {
		c.Paths.OutputDir = v
	}
	if v := os.Getenv(qdrantEnv); v != "" {
		if c.VectorStore.Qdrant == nil {
			c.VectorStore.Qdrant = &QdrantConfig{}
		}
		c.VectorStore.Qdrant.Host = v
		if p, err := strconv.Atoi(os.Getenv(qdrantPort)); err == nil {
			c.VectorStore.Qdrant.Port = p
		}
	}
	if v := os.Getenv(redisEnv); v != "" {
		if c.Cache.Redis == nil {
			c.Cache.Redis = &RedisConfig{}
		}
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv(bucketEnv); v != "" {
		if c.Storage.S3 == nil {
			c.Storage.S3 = &S3Config{}
		}
		c.Storage.S3.Bucket = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Log.Level = v
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Paths.OutputDir == "" {
		cfg.Paths.OutputDir = "output"
	}
	if cfg.Paths.InputDir == "" {
		cfg.Paths.InputDir = "."
	}
	if cfg.Chunker.MaxChars <= 0 {
		cfg.Chunker.MaxChars = 500
	}
	if cfg.Chunker.MinChars < 0 {
		cfg.Chunker.MinChars = 0
	}
	if cfg.Embedder.BatchSize <= 0 {
		cfg.Embedder.BatchSize = 64
	}
	if cfg.Embedder.Type == "openai" {
		if cfg.Embedder.OpenAI == nil {
			cfg.Embedder.OpenAI = &OpenAIEmbedderConfig{}
		}
		if cfg.Embedder.OpenAI.BaseURL == "" {
			cfg.Embedder.OpenAI.BaseURL = "https://api.openai.com/v1/"
		}
		if cfg.Embedder.OpenAI.APIKeyEnv == "" {
			cfg.Embedder.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedder.OpenAI.Model == "" {
			cfg.Embedder.OpenAI.Model = "text-embedding-3-small"
		}
		if cfg.Embedder.OpenAI.TimeoutSecs == 0 {
			cfg.Embedder.OpenAI.TimeoutSecs = 30
		}
		if cfg.Embedder.OpenAI.MaxRetries == 0 {
			cfg.Embedder.OpenAI.MaxRetries = 5
		}
	}
	if cfg.Embedder.Type == "gemini" {
		if cfg.Embedder.Gemini == nil {
			cfg.Embedder.Gemini = &GeminiEmbedderConfig{}
		}
		if cfg.Embedder.Gemini.APIKeyEnv == "" {
			cfg.Embedder.Gemini.APIKeyEnv = "GEMINI_API_KEY"
		}
	}
	if cfg.Embedder.RateLimit.RPS > 0 && cfg.Embedder.RateLimit.Burst <= 0 {
		cfg.Embedder.RateLimit.Burst = 1
	}
	if cfg.Cache.Type == "" {
		cfg.Cache.Type = "none"
	}
	if r := cfg.Cache.Redis; r != nil {
		if r.Addr == "" {
			r.Addr = "localhost:6379"
		}
		if r.Prefix == "" {
			r.Prefix = "kvkkrag:emb:"
		}
	}
	if cfg.VectorStore.Type == "" {
		cfg.VectorStore.Type = "memory"
	}
	if cfg.VectorStore.Type == "qdrant" && cfg.VectorStore.Qdrant == nil {
		cfg.VectorStore.Qdrant = &QdrantConfig{}
	}
	if q := cfg.VectorStore.Qdrant; q != nil {
		if q.Host == "" {
			q.Host = "localhost"
		}
		if q.Port == 0 {
			q.Port = 6334
		}
		if q.Collection == "" {
			q.Collection = "kvkk_chunks"
		}
	}
	if cfg.Summarizer.MaxSentences <= 0 {
		cfg.Summarizer.MaxSentences = 2
	}
	if cfg.Search.TopK <= 0 {
		cfg.Search.TopK = 5
	}
	if cfg.Report.Output == "" {
		cfg.Report.Output = "KVKK_Analiz_Raporu.html"
	}
	if cfg.Report.TimeoutSecs <= 0 {
		cfg.Report.TimeoutSecs = 15
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "none"
	}
	if cfg.Storage.Type == "local" && cfg.Storage.LocalPath == "" {
		cfg.Storage.LocalPath = filepath.Join(cfg.Paths.OutputDir, "published")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
