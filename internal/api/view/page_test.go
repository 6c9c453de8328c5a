package view_test

import (
	"testing"

	"milk-route-service/internal/api/view"
	"milk-route-service/internal/domain"
	"milk-route-service/internal/services"

	"github.com/stretchr/testify/require"
)

func TestBuildPageInvalidInputEchoesFormWithMessages(t *testing.T) {
	in := domain.FormInput{
		Villages: "",
		MilkData: "abc",
		Capacity: "-1",
	}

	page := view.BuildPage(in)

	require.Nil(t, page.Result)
	require.Equal(t, in, page.Form)
	require.Equal(t, []view.Message{
		{Kind: "error", Text: services.MsgNoVillages},
		{Kind: "error", Text: services.MsgMilkNaN},
		{Kind: "error", Text: services.MsgCapacity},
	}, page.Messages)
}

func TestBuildPageSuccess(t *testing.T) {
	in := domain.FormInput{
		Villages:  "A, B",
		MilkData:  "100, 200",
		Distances: "5, 8",
		Capacity:  "90",
	}

	page := view.BuildPage(in)

	require.Equal(t, []view.Message{{Kind: "success", Text: "Result generated successfully."}}, page.Messages)
	require.NotNil(t, page.Result)

	require.Equal(t, []view.PredictionRow{
		{Village: "A", Predicted: "105"},
		{Village: "B", Predicted: "210"},
	}, page.Result.Rows)
	require.Equal(t, []string{"A", "B"}, page.Result.Route)
	require.Equal(t, "13", page.Result.TotalDistance)
	require.Equal(t, "315", page.Result.TotalPredicted)
	require.Equal(t, "90", page.Result.Capacity)
	require.False(t, page.Result.CapacityOK)
}

func TestBuildPageOmitsOptionalSections(t *testing.T) {
	in := domain.FormInput{Villages: "A", MilkData: "85.5"}

	page := view.BuildPage(in)

	require.NotNil(t, page.Result)
	require.Equal(t, "89.78", page.Result.Rows[0].Predicted)
	require.Empty(t, page.Result.TotalDistance)
	require.Empty(t, page.Result.Capacity)
}
