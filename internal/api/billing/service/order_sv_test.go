package billingService

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerNoFromID(t *testing.T) {
	got := customerNoFromID("01J8FZK3V9XQ2M7T4A6B8C0D1E")

	assert.Len(t, got, 10)
	for _, ch := range got {
		assert.True(t, ch >= '0' && ch <= '9')
	}

	// Deterministic for the same user.
	assert.Equal(t, got, customerNoFromID("01J8FZK3V9XQ2M7T4A6B8C0D1E"))
}

func TestCustomerNoFromIDPadsWhenFewDigits(t *testing.T) {
	assert.Equal(t, "7000000000", customerNoFromID("ABCDEFG7"))
	assert.Equal(t, "0000000000", customerNoFromID("ABCDEFGH"))
	assert.Equal(t, "0000000000", customerNoFromID(""))
}
