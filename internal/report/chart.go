package report

import (
	"fmt"
	"sort"
	"strings"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/stats"
	"kvkkrag/internal/statute"
)

const (
	ColorChanged = "#e74c3c"
	ColorNormal  = "#3498db"
)

// ChartData feeds the Plotly charts embedded in the report.
type ChartData struct {
	Bar     BarSeries    `json:"bar"`
	Pie     PieSeries    `json:"pie"`
	Signals SignalSeries `json:"degisiklik"`
}

type BarSeries struct {
	X      []string `json:"x"`
	Y      []int    `json:"y"`
	Colors []string `json:"colors"`
}

type PieSeries struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

type SignalSeries struct {
	X []string `json:"x"`
	Y []int    `json:"y"`
}

// BuildChartData derives chart series from the statistics. Articles are in
// ascending order; amended articles are drawn in red.
func BuildChartData(st domain.Statistics) ChartData {
	var data ChartData
	for _, n := range sortedKeys(st.MentionsPerArticle) {
		data.Bar.X = append(data.Bar.X, articleLabel(n))
		data.Bar.Y = append(data.Bar.Y, st.MentionsPerArticle[n])
		color := ColorNormal
		if a, ok := statute.Lookup(n); ok && a.Changed() {
			color = ColorChanged
		}
		data.Bar.Colors = append(data.Bar.Colors, color)
	}
	for _, doc := range stats.Documents(st) {
		data.Pie.Labels = append(data.Pie.Labels, ShortName(doc))
		data.Pie.Values = append(data.Pie.Values, st.ChunksPerDocument[doc])
	}
	for _, n := range sortedKeys(st.ChangeSignals) {
		data.Signals.X = append(data.Signals.X, articleLabel(n))
		data.Signals.Y = append(data.Signals.Y, st.ChangeSignals[n])
	}
	return data
}

// ShortName drops the course suffix and extension the source decks share.
func ShortName(document string) string {
	name := strings.TrimSuffix(document, ".pptx")
	name = strings.TrimSuffix(name, ".txt")
	name = strings.TrimSuffix(name, " KVKK Sertifika Programı")
	return strings.ReplaceAll(name, "- ", "")
}

func articleLabel(n int) string { return fmt.Sprintf("Madde %d", n) }

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
