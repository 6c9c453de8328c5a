package view

import (
	"strconv"

	"milk-route-service/internal/domain"
	"milk-route-service/internal/services"
)

// Message is one banner rendered above the form.
type Message struct {
	Kind string // "error" or "success"
	Text string
}

// PredictionRow is one village with its predicted supply, preformatted
// for display.
type PredictionRow struct {
	Village   string
	Predicted string
}

// Result is the result section of the page. It is nil on the initial GET
// and whenever validation produced messages.
type Result struct {
	Rows           []PredictionRow
	Route          []string
	TotalDistance  string // empty when distances were not provided
	TotalPredicted string
	Capacity       string // empty when capacity was not provided
	CapacityOK     bool
}

// Page is the full render model for the form page. The template receives
// nothing else, so everything user-visible flows through here.
type Page struct {
	Form     domain.FormInput
	Messages []Message
	Result   *Result
}

// EmptyPage is the render model for the initial GET: blank form, no banners.
func EmptyPage() Page {
	return Page{}
}

// BuildPage validates and computes one submission into a render model.
//
// It is a pure function of the submitted field values, so the whole
// request cycle is testable without a network stack; the HTTP handler only
// decodes the request and writes the rendered template.
func BuildPage(in domain.FormInput) Page {
	parsed, msgs := services.ParseForm(in)
	if len(msgs) > 0 {
		page := Page{Form: in}
		for _, m := range msgs {
			page.Messages = append(page.Messages, Message{Kind: "error", Text: m})
		}
		return page
	}

	res := services.ComputeResults(parsed)

	result := &Result{
		Rows:           make([]PredictionRow, 0, len(res.Route)),
		Route:          res.Route,
		TotalPredicted: formatNumber(res.TotalPredicted),
	}
	for i, village := range res.Route {
		result.Rows = append(result.Rows, PredictionRow{
			Village:   village,
			Predicted: formatNumber(res.Predictions[i]),
		})
	}
	if res.TotalDistance != nil {
		result.TotalDistance = formatNumber(*res.TotalDistance)
	}
	if parsed.Capacity != nil {
		result.Capacity = formatNumber(*parsed.Capacity)
		result.CapacityOK = *res.CapacityOK
	}

	return Page{
		Form:     in,
		Messages: []Message{{Kind: "success", Text: "Result generated successfully."}},
		Result:   result,
	}
}

// formatNumber renders values with the fewest digits that round-trip,
// so 105 prints as "105" and 52.5 as "52.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
