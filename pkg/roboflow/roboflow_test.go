package roboflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDetections(t *testing.T) {
	body := []byte(`{
		"predictions": [
			{"x": 100.5, "y": 200.0, "width": 50.0, "height": 20.0, "confidence": 0.91, "class": "Caries",
			 "points": [{"x": 80, "y": 190}, {"x": 120, "y": 190}, {"x": 120, "y": 210}]},
			{"x": 300.0, "y": 150.0, "width": 40.0, "height": 60.0, "confidence": 0.75, "class": "Crown"}
		],
		"image": {"width": 640, "height": 480}
	}`)

	detections, err := ParseDetections(body)
	require.NoError(t, err)
	require.Len(t, detections, 2)

	assert.Equal(t, "Caries", detections[0].Class)
	assert.Equal(t, 100.5, detections[0].X)
	assert.Len(t, detections[0].Points, 3)

	assert.Equal(t, "Crown", detections[1].Class)
	assert.Empty(t, detections[1].Points)
}

func TestParseDetectionsEmpty(t *testing.T) {
	detections, err := ParseDetections([]byte(`{"predictions": [], "image": {"width": 640, "height": 480}}`))
	require.NoError(t, err)
	assert.Empty(t, detections)
}

func TestParseDetectionsMalformed(t *testing.T) {
	_, err := ParseDetections([]byte(`not json`))
	assert.Error(t, err)
}
