package domain

// Computed output for one valid submission.
// It is immutable result data and contains no side effects.
// TotalDistance and CapacityOK stay nil when the corresponding optional
// input was not provided; "no distance given" is distinct from zero.
type ResultSet struct {
	Predictions    []float64
	Route          []string
	TotalDistance  *float64
	TotalPredicted float64
	CapacityOK     *bool
}
