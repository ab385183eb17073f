package analysis

import (
	"harvest-guard/internal/model"
)

// Distribution is an aggregate view over one assessment run, used by the
// dashboard's overview widgets. It does not depend on forecast details.
type Distribution struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Moderate int `json:"moderate"`
	Low      int `json:"low"`

	MinETCLHours  int     `json:"min_etcl_hours"`
	MeanETCLHours float64 `json:"mean_etcl_hours"`
}

// ComputeDistribution tallies risk levels and ETCL stats for the summaries.
func ComputeDistribution(summaries []model.RiskSummary) Distribution {
	d := Distribution{}
	if len(summaries) == 0 {
		return d
	}
	d.Total = len(summaries)
	d.MinETCLHours = summaries[0].ETCLHours

	sum := 0
	for _, s := range summaries {
		switch s.RiskLevel {
		case model.RiskCritical:
			d.Critical++
		case model.RiskHigh:
			d.High++
		case model.RiskModerate:
			d.Moderate++
		default:
			d.Low++
		}
		if s.ETCLHours < d.MinETCLHours {
			d.MinETCLHours = s.ETCLHours
		}
		sum += s.ETCLHours
	}
	d.MeanETCLHours = model.Round1(float64(sum) / float64(len(summaries)))
	return d
}
