package domain

// Raw form field values exactly as submitted, before any validation.
// Kept as strings so an error page can echo the user's input back unchanged.
type FormInput struct {
	Villages  string
	MilkData  string
	Distances string
	Capacity  string
}

// Validated, length-consistent submission data.
// Invariant: len(MilkValues) == len(Villages) after the broadcast rule, and
// Distances (when non-nil) has the same length as Villages.
// All fields are request-scoped and discarded once the response is rendered.
type ParsedInput struct {
	Villages   []string
	MilkValues []float64
	Distances  []float64 // nil when the field was left blank
	Capacity   *float64  // nil when the field was left blank
}
