package analysis

import (
	"sort"

	"harvest-guard/internal/model"
)

// RankByUrgency orders summaries most-at-risk first: ascending ETCL, ties
// broken by keeping the original (stable) order. The input is not modified.
func RankByUrgency(summaries []model.RiskSummary) []model.RiskSummary {
	out := make([]model.RiskSummary, len(summaries))
	copy(out, summaries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ETCLHours < out[j].ETCLHours
	})
	return out
}

// TopAtRisk returns up to n most urgent summaries.
func TopAtRisk(summaries []model.RiskSummary, n int) []model.RiskSummary {
	ranked := RankByUrgency(summaries)
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
