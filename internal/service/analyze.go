package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/report"
	"kvkkrag/internal/stats"
	"kvkkrag/internal/statute"
	"kvkkrag/internal/storage"
)

// OfficialSource returns the current official text of the law.
type OfficialSource interface {
	Fetch(ctx context.Context) (string, error)
}

// Analysis is the change analysis of one corpus.
type Analysis struct {
	Mentions   map[int][]domain.ArticleMention
	Statistics domain.Statistics
	Notations  []domain.NotationDetection
}

// WithOfficial sets the source used by online reports.
func (p *Pipeline) WithOfficial(src OfficialSource) *Pipeline {
	p.official = src
	return p
}

// WithPublisher uploads every rendered report to s.
func (p *Pipeline) WithPublisher(s storage.Storage) *Pipeline {
	p.publisher = s
	return p
}

// Analyze extracts article mentions from chunks and scans the TXT exports
// for amendment notations.
func (p *Pipeline) Analyze(ctx context.Context, chunks []domain.Chunk) (Analysis, error) {
	defer p.metrics.ObserveStage("analyze", time.Now())
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	mentions := p.mentions.Extract(chunks)
	total := 0
	for _, refs := range mentions {
		total += len(refs)
	}
	p.metrics.Mentions.Add(float64(total))

	notations, err := p.ScanTXT(p.opts.TXTDir)
	if err != nil {
		return Analysis{}, err
	}
	for _, d := range notations {
		p.metrics.Notations.WithLabelValues(string(d.Type)).Inc()
	}
	log.Info("analyzed", "articles", len(mentions), "mentions", total, "notations", len(notations))
	return Analysis{
		Mentions:   mentions,
		Statistics: stats.Aggregate(chunks, mentions),
		Notations:  notations,
	}, nil
}

// ScanTXT runs the notation scanner over every .txt file in dir, in name
// order. Detections carry the file stem as their document. A missing
// directory yields no detections.
func (p *Pipeline) ScanTXT(dir string) ([]domain.NotationDetection, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("txt directory missing, skipping notation scan", "dir", dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var out []domain.NotationDetection
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		out = append(out, p.scanner.ScanText(stem, string(data))...)
	}
	return out, nil
}

// Report renders the HTML report to output and publishes it when a
// publisher is set. Online mode overlays the official article texts;
// fetch failures only cost the overlay.
func (p *Pipeline) Report(ctx context.Context, a Analysis, model, output string, online bool) (string, error) {
	defer p.metrics.ObserveStage("report", time.Now())
	in := report.Input{
		Model:       model,
		Statistics:  a.Statistics,
		Mentions:    a.Mentions,
		Notations:   a.Notations,
		GeneratedAt: time.Now(),
	}
	if online && p.official != nil {
		text, err := p.official.Fetch(ctx)
		if err != nil {
			log.Warn("official text unavailable", "error", err)
		} else {
			in.Official = text
			in.OfficialArt = make(map[int]string)
			for _, art := range statute.ParseLawText(text, p.scanner) {
				in.OfficialArt[art.Number] = art.Text
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(output)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := report.Render(f, report.Build(in)); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	log.Info("report written", "path", output)

	if p.publisher != nil {
		if err := p.publish(ctx, output); err != nil {
			return output, err
		}
	}
	return output, nil
}

func (p *Pipeline) publish(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	location, err := p.publisher.Upload(ctx, uuid.New(), filepath.Base(path), f)
	if err != nil {
		return fmt.Errorf("publish report: %w", err)
	}
	log.Info("report published", "location", location)
	return nil
}
