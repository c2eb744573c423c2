package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePercentagesSumsToHundred(t *testing.T) {
	detections := []Detection{
		{Class: "Caries", X: 100, Y: 100, Width: 50, Height: 20},
		{Class: "Crown", X: 300, Y: 120, Width: 80, Height: 60},
		{Class: "Filling", X: 220, Y: 400, Width: 33, Height: 17},
		{Class: "Caries", X: 500, Y: 90, Width: 12, Height: 44},
	}

	percentages := ComputePercentages(detections)
	require.Len(t, percentages, 3)

	var sum float64
	for _, p := range percentages {
		sum += p
	}
	assert.InDelta(t, 100.0, sum, 0.01)
}

func TestComputePercentagesZeroArea(t *testing.T) {
	detections := []Detection{
		{Class: "Caries", X: 10, Y: 10, Width: 0, Height: 30},
		{Class: "Crown", X: 20, Y: 20, Width: 15, Height: 0},
	}

	percentages := ComputePercentages(detections)
	require.Len(t, percentages, 2)
	assert.Equal(t, 0.0, percentages["Caries"])
	assert.Equal(t, 0.0, percentages["Crown"])
}

func TestComputePercentagesEmpty(t *testing.T) {
	assert.Empty(t, ComputePercentages(nil))
}

func TestComputePercentagesDuplicateClass(t *testing.T) {
	detections := []Detection{
		{Class: "Caries", X: 100, Y: 100, Width: 50, Height: 20},
		{Class: "Caries", X: 100, Y: 100, Width: 50, Height: 20},
	}

	percentages := ComputePercentages(detections)
	require.Len(t, percentages, 1)
	assert.Equal(t, 100.0, percentages["Caries"])
}

func TestComputePercentagesUsesBoundingBoxNotPolygon(t *testing.T) {
	// The polygon covers half the bounding box, but area must still be W*H.
	detections := []Detection{
		{
			Class: "Caries", X: 50, Y: 50, Width: 100, Height: 100,
			Points: []Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}},
		},
		{Class: "Crown", X: 200, Y: 200, Width: 100, Height: 100},
	}

	percentages := ComputePercentages(detections)
	assert.Equal(t, 50.0, percentages["Caries"])
	assert.Equal(t, 50.0, percentages["Crown"])
}
