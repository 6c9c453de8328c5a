package services

import (
	"math"

	"milk-route-service/internal/domain"
)

// Baseline adjustment applied to yesterday's collection figures.
// This is a deterministic placeholder transform, not a fitted model.
const supplyGrowthFactor = 1.05

// ComputeResults turns validated input into a ResultSet.
//
// Predictions apply the growth factor with a floor at zero, rounded to two
// decimals. The route keeps the villages in their submitted order; no
// reordering is performed. Callers must not invoke it when ParseForm
// reported messages.
func ComputeResults(in domain.ParsedInput) domain.ResultSet {
	predictions := make([]float64, len(in.MilkValues))
	total := 0.0
	for i, v := range in.MilkValues {
		p := round2(math.Max(0, v*supplyGrowthFactor))
		predictions[i] = p
		total += p
	}

	res := domain.ResultSet{
		Predictions:    predictions,
		Route:          in.Villages,
		TotalPredicted: round2(total),
	}

	if in.Distances != nil {
		sum := 0.0
		for _, d := range in.Distances {
			sum += d
		}
		td := round2(sum)
		res.TotalDistance = &td
	}

	if in.Capacity != nil {
		ok := *in.Capacity >= res.TotalPredicted
		res.CapacityOK = &ok
	}

	return res
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
