package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const summaryRule = 50

// RenderSummary is the human-readable run report. docSummaries, keyed by
// document name, adds an indented extract under each document when present.
func RenderSummary(meta Metadata, docSummaries map[string]string) string {
	counts := make(map[string]int)
	for _, c := range meta.Chunks {
		counts[c.Document]++
	}
	docs := make([]string, 0, len(counts))
	for d := range counts {
		docs = append(docs, d)
	}
	sort.Strings(docs)

	rule := strings.Repeat("=", summaryRule)
	var b strings.Builder
	b.WriteString("PPT → VEKTÖR DÖNÜŞTÜRME RAPORU\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Model         : %s\n", meta.Model)
	fmt.Fprintf(&b, "Vektör boyutu : %d\n", meta.Dimension)
	fmt.Fprintf(&b, "Toplam parça  : %d\n", meta.TotalChunks)
	fmt.Fprintf(&b, "Dosya sayısı  : %d\n\n", len(docs))
	for _, d := range docs {
		fmt.Fprintf(&b, "  • %s → %d parça\n", d, counts[d])
		if s := strings.TrimSpace(docSummaries[d]); s != "" {
			fmt.Fprintf(&b, "      %s\n", s)
		}
	}
	b.WriteString("\n" + rule + "\n")
	b.WriteString("Çıktı dosyaları:\n")
	b.WriteString("  vectors.json   – vektör matrisi\n")
	b.WriteString("  metadata.json  – metin parçaları ve metadata\n")
	b.WriteString("  ozet_rapor.txt – bu rapor\n")
	return b.String()
}

func WriteSummary(dir string, meta Metadata, docSummaries map[string]string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, SummaryFile)
	if err := os.WriteFile(path, []byte(RenderSummary(meta, docSummaries)), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
