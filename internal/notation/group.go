package notation

import (
	"sort"
	"strconv"

	"kvkkrag/internal/domain"
)

// LawGroup collects the detections made under one amending law.
type LawGroup struct {
	LawNumber  string
	Date       string
	Detections []domain.NotationDetection
}

// GroupByLaw groups detections by amending-law number, newest law first.
// Detection order is preserved inside each group.
func GroupByLaw(detections []domain.NotationDetection) []LawGroup {
	index := make(map[string]int)
	var groups []LawGroup
	for _, d := range detections {
		i, ok := index[d.LawNumber]
		if !ok {
			i = len(groups)
			index[d.LawNumber] = i
			groups = append(groups, LawGroup{LawNumber: d.LawNumber, Date: d.Date})
		}
		groups[i].Detections = append(groups[i].Detections, d)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		a, errA := strconv.Atoi(groups[i].LawNumber)
		b, errB := strconv.Atoi(groups[j].LawNumber)
		if errA != nil || errB != nil {
			return groups[i].LawNumber > groups[j].LawNumber
		}
		return a > b
	})
	return groups
}

// CountByType tallies detections per notation type.
func CountByType(detections []domain.NotationDetection) map[domain.NotationType]int {
	out := make(map[domain.NotationType]int, 3)
	for _, d := range detections {
		out[d.Type]++
	}
	return out
}
