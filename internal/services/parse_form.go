package services

import (
	"milk-route-service/internal/domain"
	"strconv"
	"strings"
)

// User-facing validation messages. These are rendered verbatim in the page,
// one alert per message.
const (
	MsgNoVillages = "Please provide at least one village name."
	MsgNoMilk     = "Please provide milk collection numbers (comma separated)."
	MsgMilkNaN    = "Milk values must be numbers (e.g. 120, 85.5)."
	MsgMilkCount  = "Number of milk data entries does not match number of villages. Provide one value per village or one value to broadcast."
	MsgDistNaN    = "Distance values must be numbers (e.g. 5, 8.2)."
	MsgDistCount  = "If you provide distances, provide the same number as villages."
	MsgCapacity   = "Vehicle capacity must be a positive number."
)

// ParseForm turns raw form fields into validated, length-consistent input.
//
// Every rule is evaluated independently and all applicable messages are
// collected; a malformed token in one field never aborts validation of the
// others. A non-empty message slice means the ParsedInput must not be used.
func ParseForm(in domain.FormInput) (domain.ParsedInput, []string) {
	var parsed domain.ParsedInput
	var msgs []string

	parsed.Villages = splitList(in.Villages)
	if len(parsed.Villages) == 0 {
		msgs = append(msgs, MsgNoVillages)
	}

	milkTokens := splitList(in.MilkData)
	var milk []float64
	if len(milkTokens) == 0 {
		msgs = append(msgs, MsgNoMilk)
	} else if vals, ok := parseFloats(milkTokens); ok {
		milk = vals
	} else {
		// Milk values are treated as absent for the length checks below.
		msgs = append(msgs, MsgMilkNaN)
	}

	if len(parsed.Villages) > 0 && len(milk) > 0 {
		if len(milk) == 1 && len(parsed.Villages) > 1 {
			milk = broadcast(milk[0], len(parsed.Villages))
		} else if len(milk) != len(parsed.Villages) {
			msgs = append(msgs, MsgMilkCount)
		}
	}
	parsed.MilkValues = milk

	// Distances are optional; a blank field is simply "not provided".
	if strings.TrimSpace(in.Distances) != "" {
		vals, ok := parseFloats(splitList(in.Distances))
		switch {
		case !ok:
			msgs = append(msgs, MsgDistNaN)
		case len(vals) != len(parsed.Villages):
			msgs = append(msgs, MsgDistCount)
		default:
			parsed.Distances = vals
		}
	}

	// Capacity is optional; when present it must be a strictly positive number.
	if raw := strings.TrimSpace(in.Capacity); raw != "" {
		c, err := strconv.ParseFloat(raw, 64)
		if err != nil || c <= 0 {
			msgs = append(msgs, MsgCapacity)
		} else {
			parsed.Capacity = &c
		}
	}

	return parsed, msgs
}

// splitList splits a comma-separated field, trims each token and drops
// empty ones, so " A, ,B " yields ["A", "B"].
func splitList(raw string) []string {
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// parseFloats parses every token as a float64. It reports ok=false on the
// first malformed token; partial results are never returned.
func parseFloats(tokens []string) ([]float64, bool) {
	vals := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, false
		}
		vals = append(vals, v)
	}
	return vals, true
}

func broadcast(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
