package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"kvkkrag/internal/domain"
)

const (
	bannerWidth = 60
	headerRule  = 40
)

var unitHeaderRe = regexp.MustCompile(`^──\s*(Slayt|Slide|Sayfa|Page)\s+(\d+)\s*─+\s*$`)

// RenderTXT produces the plain-text export of doc: a banner with the file
// stem, then one header line and the text of every non-empty unit.
func RenderTXT(doc Document) string {
	banner := strings.Repeat("=", bannerWidth)
	lines := []string{banner, "  " + doc.Stem(), banner, ""}
	label := doc.UnitLabel()
	for _, u := range doc.Units {
		if strings.TrimSpace(u.Text) == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("── %s %d %s", label, u.Index, strings.Repeat("─", headerRule)))
		lines = append(lines, u.Text, "")
	}
	return strings.Join(lines, "\n")
}

// WriteTXT writes the export of doc to dir/<stem>.txt and returns its path.
func WriteTXT(dir string, doc Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create txt dir: %w", err)
	}
	path := filepath.Join(dir, doc.Stem()+".txt")
	if err := os.WriteFile(path, []byte(RenderTXT(doc)), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ParseTXT reads an export back into units. Text without unit headers
// becomes a single unit with index 1.
func ParseTXT(r io.Reader, name string) ([]domain.SourceUnit, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	var (
		units   []domain.SourceUnit
		current *domain.SourceUnit
		body    []string
		preface []string
	)
	flush := func() {
		if current != nil {
			current.Text = strings.TrimSpace(strings.Join(body, "\n"))
			units = append(units, *current)
		}
		body = nil
	}
	for _, line := range lines {
		if m := unitHeaderRe.FindStringSubmatch(line); m != nil {
			flush()
			n, _ := strconv.Atoi(m[2])
			current = &domain.SourceUnit{Document: name, Index: n}
			continue
		}
		if current == nil {
			preface = append(preface, line)
			continue
		}
		body = append(body, line)
	}
	flush()

	if len(units) == 0 {
		text := strings.TrimSpace(strings.Join(preface, "\n"))
		if text == "" {
			return nil, nil
		}
		return []domain.SourceUnit{{Document: name, Index: 1, Text: text}}, nil
	}
	return units, nil
}

func extractTXT(path, name string) ([]domain.SourceUnit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTXT(f, name)
}
