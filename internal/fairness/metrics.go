package fairness

import (
	"math"

	"github.com/pkg/errors"

	"github.com/kyramichel/Quantitative-Finance-XAI/internal/stats"
)

// GroupStat carries the selection statistics of one value of a protected
// attribute.
type GroupStat struct {
	Group     string  `json:"group" yaml:"group"`
	Count     int     `json:"count" yaml:"count"`
	Favorable int     `json:"favorable" yaml:"favorable"`
	Rate      float64 `json:"rate" yaml:"rate"`
}

// Ratio is one group's rate ratio against a baseline group.
type Ratio struct {
	Group   string  `json:"group" yaml:"group"`
	Value   float64 `json:"value" yaml:"value"`
	Flagged bool    `json:"flagged" yaml:"flagged"`
}

// GroupRates computes per-group observation count, favorable count
// (target == 1) and selection rate, in first-appearance order.
func GroupRates(groups []string, target []float64) ([]GroupStat, error) {
	if len(groups) != len(target) {
		return nil, errors.New("fairness: attribute and target lengths differ")
	}
	if len(groups) == 0 {
		return nil, errors.New("fairness: empty attribute column")
	}
	index := make(map[string]int)
	var out []GroupStat
	for i, g := range groups {
		k, seen := index[g]
		if !seen {
			k = len(out)
			index[g] = k
			out = append(out, GroupStat{Group: g})
		}
		out[k].Count++
		if target[i] == 1 {
			out[k].Favorable++
		}
	}
	for k := range out {
		out[k].Rate = float64(out[k].Favorable) / float64(out[k].Count)
	}
	return out, nil
}

// Majority returns the index of the largest group; ties keep the earlier
// group.
func Majority(groupStats []GroupStat) int {
	best := 0
	for i := 1; i < len(groupStats); i++ {
		if groupStats[i].Count > groupStats[best].Count {
			best = i
		}
	}
	return best
}

// Reference returns the index of the highest-rate group; ties prefer the
// larger group, then the earlier one.
func Reference(groupStats []GroupStat) int {
	best := 0
	for i := 1; i < len(groupStats); i++ {
		s := groupStats[i]
		if s.Rate > groupStats[best].Rate ||
			(s.Rate == groupStats[best].Rate && s.Count > groupStats[best].Count) {
			best = i
		}
	}
	return best
}

// DisparateImpact computes rate(group) / rate(majority) for every group,
// flagging ratios below threshold. A zero majority rate yields ratio 0.
func DisparateImpact(groupStats []GroupStat, threshold float64) (majority string, ratios []Ratio) {
	m := Majority(groupStats)
	return groupStats[m].Group, rateRatios(groupStats, groupStats[m].Rate, threshold)
}

// AdverseImpactRatio computes rate(group) / rate(reference) for every
// group, flagging ratios below threshold (the four-fifths rule at 0.8).
func AdverseImpactRatio(groupStats []GroupStat, threshold float64) (reference string, ratios []Ratio) {
	r := Reference(groupStats)
	return groupStats[r].Group, rateRatios(groupStats, groupStats[r].Rate, threshold)
}

func rateRatios(groupStats []GroupStat, base float64, threshold float64) []Ratio {
	ratios := make([]Ratio, len(groupStats))
	for i, s := range groupStats {
		v := 0.0
		if base > 0 {
			v = s.Rate / base
		}
		ratios[i] = Ratio{Group: s.Group, Value: v, Flagged: v < threshold}
	}
	return ratios
}

// StandardizedMeanDifference compares a numeric column between the masked
// group and the rest: (mean(group) - mean(rest)) / pooled std, with pooled
// std = sqrt((var(group)+var(rest))/2). Degenerate inputs yield 0.
func StandardizedMeanDifference(x []float64, inGroup []bool) float64 {
	if len(x) != len(inGroup) {
		return 0
	}
	var a, b []float64
	for i, v := range x {
		if inGroup[i] {
			a = append(a, v)
		} else {
			b = append(b, v)
		}
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	pooled := math.Sqrt((stats.Variance(a) + stats.Variance(b)) / 2)
	if pooled == 0 {
		return 0
	}
	return (stats.Mean(a) - stats.Mean(b)) / pooled
}

// GroupMask marks the rows whose attribute value equals group.
func GroupMask(groups []string, group string) []bool {
	mask := make([]bool, len(groups))
	for i, g := range groups {
		mask[i] = g == group
	}
	return mask
}
