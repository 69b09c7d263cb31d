package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"kvkkrag/internal/artifact"
	"kvkkrag/internal/config"
	"kvkkrag/internal/domain"
	"kvkkrag/internal/extract"
	"kvkkrag/internal/service"
	"kvkkrag/internal/tui"
	"kvkkrag/pkg/logger"
)

const previewRunes = 300

var (
	cfgPath  string
	logLevel string
	cfg      *config.AppConfig
)

var log = logger.New("cli")

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "kvkkrag",
		Short: "KVKK training material analyzer",
		Long: `kvkkrag extracts KVKK training decks, indexes them for semantic
search and reports which articles of Law No. 6698 they cover and which
amendments they record.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfgPath == "" {
				cfg, _, err = config.LoadDefault()
			} else {
				cfg, err = config.Load(cfgPath)
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			logger.Init(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (default ./config.yaml or ~/.config/kvkkrag/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(vectorizeCmd())
	rootCmd.AddCommand(allCmd())
	rootCmd.AddCommand(txtCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(reportCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// withApp assembles the pipeline for one command and flushes metrics after it.
func withApp(fn func(ctx context.Context, app *service.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := service.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer app.Close()
		if err := fn(ctx, app, args); err != nil {
			return err
		}
		if path := cfg.Metrics.Textfile; path != "" {
			if err := app.Pipeline.Metrics().WriteTextfile(path); err != nil {
				log.Warn("metrics textfile not written", "path", path, "error", err)
			}
		}
		return nil
	}
}

func extractCmd() *cobra.Command {
	var withTXT bool
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract documents into chunks",
		Long: `Extract every .pptx, .pdf, .docx and .txt file in the input directory
and write the chunks to extracted_chunks.json.

Example:
  kvkkrag extract
  kvkkrag extract --txt`,
		Args: cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, app *service.App, _ []string) error {
			docs, chunks, err := app.Pipeline.Extract(ctx, cfg.Paths.InputDir)
			if err != nil {
				return err
			}
			fmt.Printf("%d dosyadan %d parça çıkarıldı → %s\n", len(docs), len(chunks),
				filepath.Join(cfg.Paths.VectorsDir(), artifact.ChunksFile))
			if withTXT {
				return exportTXT(app, docs)
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&withTXT, "txt", false, "Also write one TXT export per document")
	return cmd
}

func vectorizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vectorize",
		Short: "Embed previously extracted chunks",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, app *service.App, _ []string) error {
			chunks, err := artifact.LoadChunks(cfg.Paths.VectorsDir())
			if err != nil {
				if errors.Is(err, artifact.ErrNotFound) {
					return fmt.Errorf("%w: run `kvkkrag extract` first", err)
				}
				return err
			}
			return vectorize(ctx, app, chunks)
		}),
	}
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Extract, export TXT and vectorize in one run",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, app *service.App, _ []string) error {
			docs, chunks, err := app.Pipeline.Extract(ctx, cfg.Paths.InputDir)
			if err != nil {
				return err
			}
			if err := exportTXT(app, docs); err != nil {
				return err
			}
			return vectorize(ctx, app, chunks)
		}),
	}
}

func txtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "txt",
		Short: "Write one TXT export per document",
		Args:  cobra.NoArgs,
		RunE: withApp(func(_ context.Context, app *service.App, _ []string) error {
			docs, err := extract.Dir(cfg.Paths.InputDir)
			if err != nil {
				return err
			}
			return exportTXT(app, docs)
		}),
	}
}

func searchCmd() *cobra.Command {
	var topK int
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the indexed chunks",
		Long: `Search the vectorized chunks. Without a query an interactive
search screen is opened.

Example:
  kvkkrag search "özel nitelikli kişisel veri"
  kvkkrag search --top-k 10 "aydınlatma yükümlülüğü"`,
		Args: cobra.MaximumNArgs(1),
		RunE: withApp(func(ctx context.Context, app *service.App, args []string) error {
			meta, err := app.Pipeline.LoadIndex(ctx)
			if err != nil {
				return err
			}
			if topK <= 0 {
				topK = cfg.Search.TopK
			}
			if len(args) == 0 {
				summary := fmt.Sprintf("%s | %d parça", meta.Model, meta.TotalChunks)
				_, err := tea.NewProgram(tui.New(app.Pipeline, summary, topK), tea.WithAltScreen()).Run()
				return err
			}
			results, err := app.Pipeline.Query(ctx, args[0], topK)
			if err != nil {
				return err
			}
			printResults(args[0], results)
			return nil
		}),
	}
	cmd.Flags().IntVarP(&topK, "top-k", "k", 0, "Number of results (default from config)")
	return cmd
}

func reportCmd() *cobra.Command {
	var (
		online bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the HTML change-analysis report",
		Long: `Analyze article mentions in the chunks and amendment notations in the
TXT exports and render the HTML report.

Example:
  kvkkrag report
  kvkkrag report --online --output rapor.html`,
		Args: cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, app *service.App, _ []string) error {
			model, chunks, err := loadChunks()
			if err != nil {
				return err
			}
			analysis, err := app.Pipeline.Analyze(ctx, chunks)
			if err != nil {
				return err
			}
			if output == "" {
				output = filepath.Join(cfg.Paths.ReportsDir(), cfg.Report.Output)
			}
			path, err := app.Pipeline.Report(ctx, analysis, model, output, online || cfg.Report.Online)
			if err != nil {
				return err
			}
			fmt.Printf("Rapor: %s (%d madde, %d notasyon)\n", path, len(analysis.Mentions), len(analysis.Notations))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&online, "online", false, "Fetch the official law text from mevzuat.gov.tr")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Report file (default <output>/reports/KVKK_Analiz_Raporu.html)")
	return cmd
}

func exportTXT(app *service.App, docs []extract.Document) error {
	paths, err := app.Pipeline.ExportTXT(docs)
	if err != nil {
		return err
	}
	fmt.Printf("%d TXT dosyası → %s\n", len(paths), cfg.Paths.TXTDir())
	return nil
}

func vectorize(ctx context.Context, app *service.App, chunks []domain.Chunk) error {
	meta, err := app.Pipeline.Vectorize(ctx, chunks)
	if err != nil {
		return err
	}
	fmt.Printf("%d parça vektörleştirildi (%s, %d boyut) → %s\n", meta.TotalChunks, meta.Model, meta.Dimension, cfg.Paths.VectorsDir())
	return nil
}

// loadChunks prefers the vectorized metadata and falls back to the raw extraction.
func loadChunks() (string, []domain.Chunk, error) {
	meta, err := artifact.LoadMetadata(cfg.Paths.VectorsDir())
	if err == nil {
		return meta.Model, meta.Chunks, nil
	}
	if !errors.Is(err, artifact.ErrNotFound) {
		return "", nil, err
	}
	chunks, err := artifact.LoadChunks(cfg.Paths.VectorsDir())
	if err != nil {
		return "", nil, fmt.Errorf("%w: run `kvkkrag extract` first", err)
	}
	return "", chunks, nil
}

func printResults(query string, results []domain.SearchResult) {
	fmt.Printf("Sorgu: %s\n", query)
	fmt.Println(strings.Repeat("─", 60))
	if len(results) == 0 {
		fmt.Println("Sonuç bulunamadı.")
		return
	}
	for i, r := range results {
		fmt.Printf("%d. [%.3f] %s\n", i+1, r.Score, tui.Provenance(r.Chunk))
		fmt.Printf("   %s\n\n", service.Preview(r.Chunk.Text, previewRunes))
	}
}
