package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectsTouchingCorner(t *testing.T) {
	a := LabelBox{X1: 0, Y1: 0, X2: 10, Y2: 10}
	b := LabelBox{X1: 10, Y1: 10, X2: 20, Y2: 20}
	assert.True(t, Intersects(a, b), "boxes touching at a corner count as overlapping")
}

func TestIntersectsDisjoint(t *testing.T) {
	a := LabelBox{X1: 0, Y1: 0, X2: 5, Y2: 5}
	b := LabelBox{X1: 6, Y1: 6, X2: 10, Y2: 10}
	assert.False(t, Intersects(a, b))
}

func TestIntersectsContained(t *testing.T) {
	a := LabelBox{X1: 0, Y1: 0, X2: 100, Y2: 100}
	b := LabelBox{X1: 40, Y1: 40, X2: 60, Y2: 60}
	assert.True(t, Intersects(a, b))
}

func TestPlaceLabelNoCollision(t *testing.T) {
	box, x, y, nudges := placeLabel(100, 100, 50, 12, nil)
	assert.Equal(t, 0, nudges)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 100.0, y)
	assert.Equal(t, LabelBox{X1: 95, Y1: 100 - 12 - 10, X2: 155, Y2: 105}, box)
}

func TestPlaceLabelDuplicateDetectionGetsNudged(t *testing.T) {
	first, _, _, _ := placeLabel(100, 100, 50, 12, nil)
	second, _, _, nudges := placeLabel(100, 100, 50, 12, []LabelBox{first})

	assert.Greater(t, nudges, 0)
	assert.NotEqual(t, first, second)
}

func TestPlaceLabelNudgeBound(t *testing.T) {
	// One giant placed box covers everything the search can reach, so the
	// loop must give up at the cap and accept a still-overlapping candidate.
	wall := LabelBox{X1: -1e6, Y1: -1e6, X2: 1e6, Y2: 1e6}

	box, _, _, nudges := placeLabel(100, 100, 50, 12, []LabelBox{wall})
	assert.Equal(t, maxNudges, nudges)
	assert.True(t, Intersects(box, wall), "best-effort placement may still overlap")
}

func TestPlaceLabelAlternatesDirections(t *testing.T) {
	blocker := LabelBox{X1: 0, Y1: 0, X2: 200, Y2: 200}

	_, x, y, nudges := placeLabel(100, 100, 50, 12, []LabelBox{blocker})
	require.Greater(t, nudges, 0)
	// First nudge shifts up, so y moves before x does.
	assert.Less(t, y, 100.0)
	assert.GreaterOrEqual(t, x, 100.0)
}

func TestRenderNilImage(t *testing.T) {
	_, err := Render(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNilImage)
}

func TestRenderEmptyDetectionsAppliesFinishingPassOnly(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
		}
	}

	out, err := Render(img, nil, map[string]string{})
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), out.Bounds())

	// 100*1.1 + 5 = 115 on every channel.
	for _, p := range []image.Point{{X: 0, Y: 0}, {X: 20, Y: 20}, {X: 39, Y: 39}} {
		c := out.NRGBAAt(p.X, p.Y)
		assert.Equal(t, uint8(115), c.R)
		assert.Equal(t, uint8(115), c.G)
		assert.Equal(t, uint8(115), c.B)
		assert.Equal(t, uint8(255), c.A)
	}
}

func TestRenderClampsFinishingPass(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: 250, G: 250, B: 250, A: 255})
		}
	}

	out, err := Render(img, nil, nil)
	require.NoError(t, err)
	c := out.NRGBAAt(2, 2)
	assert.Equal(t, uint8(255), c.R)
}

func TestRenderDuplicateClassesPlacedIndependently(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 640, 480))

	detections := []Detection{
		{Class: "Caries", X: 100, Y: 100, Width: 50, Height: 20},
		{Class: "Caries", X: 100, Y: 100, Width: 50, Height: 20},
	}
	colors := ResolveColors([]string{"Caries"})

	var boxes []LabelBox
	out, err := renderCollecting(img, detections, colors, &boxes)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, boxes, 2)
	assert.NotEqual(t, boxes[0], boxes[1], "second caption must be nudged away")
}

func TestRenderKeepsDimensions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	detections := []Detection{
		{
			Class: "Crown", X: 160, Y: 120, Width: 60, Height: 40,
			Points: []Point{{X: 130, Y: 100}, {X: 190, Y: 100}, {X: 190, Y: 140}, {X: 130, Y: 140}},
		},
	}

	out, err := Render(img, detections, ResolveColors([]string{"Crown"}))
	require.NoError(t, err)
	assert.Equal(t, 320, out.Bounds().Dx())
	assert.Equal(t, 240, out.Bounds().Dy())
}

func TestRenderOneReturnsAcceptedBox(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 640, 480))
	det := Detection{Class: "Caries", X: 200, Y: 200, Width: 40, Height: 30}

	out, box, err := RenderOne(img, det, ResolveColors([]string{"Caries"}), nil)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Less(t, box.X1, box.X2)
	assert.Less(t, box.Y1, box.Y2)
}

func TestRenderOneAvoidsExistingBoxes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 640, 480))
	det := Detection{Class: "Caries", X: 200, Y: 200, Width: 40, Height: 30}

	_, first, err := RenderOne(img, det, ResolveColors([]string{"Caries"}), nil)
	require.NoError(t, err)

	_, second, err := RenderOne(img, det, ResolveColors([]string{"Caries"}), []LabelBox{first})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func renderCollecting(img image.Image, detections []Detection, colors map[string]string, boxes *[]LabelBox) (*image.NRGBA, error) {
	return render(img, detections, colors, baseFontSize, func(box LabelBox) {
		*boxes = append(*boxes, box)
	})
}
