package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColorsKnownClass(t *testing.T) {
	colors := ResolveColors([]string{"Caries"})
	assert.Equal(t, map[string]string{"Caries": "#008080"}, colors)
}

func TestResolveColorsUnknownClassFallsBackToWhite(t *testing.T) {
	colors := ResolveColors([]string{"UnknownXYZ"})
	assert.Equal(t, map[string]string{"UnknownXYZ": "#FFFFFF"}, colors)
}

func TestResolveColorsMixed(t *testing.T) {
	colors := ResolveColors([]string{"Caries", "Crown", "NotAClass"})
	assert.Equal(t, "#008080", colors["Caries"])
	assert.Equal(t, "#FFD700", colors["Crown"])
	assert.Equal(t, "#FFFFFF", colors["NotAClass"])
}

func TestHexToBGR(t *testing.T) {
	b, g, r := HexToBGR("#FF0000")
	assert.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{b, g, r})

	b, g, r = HexToBGR("#00FF00")
	assert.Equal(t, [3]uint8{0, 255, 0}, [3]uint8{b, g, r})

	b, g, r = HexToBGR("#0000FF")
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{b, g, r})
}

func TestHexToBGRMixedDigits(t *testing.T) {
	b, g, r := HexToBGR("#008080")
	assert.Equal(t, uint8(128), b)
	assert.Equal(t, uint8(128), g)
	assert.Equal(t, uint8(0), r)
}
