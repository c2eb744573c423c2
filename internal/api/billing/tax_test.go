package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTax(t *testing.T) {
	assert.Equal(t, 11000.0, ComputeTax(100000))
	assert.Equal(t, 0.0, ComputeTax(0))
}

func TestComputeTaxRoundsToCents(t *testing.T) {
	// 99999 * 0.11 = 10999.89
	assert.Equal(t, 10999.89, ComputeTax(99999))
	// 33.33 * 0.11 = 3.6663, rounds to 3.67
	assert.Equal(t, 3.67, ComputeTax(33.33))
}

func TestComputeTotalEqualsSubtotalPlusTax(t *testing.T) {
	subtotals := []float64{0, 1, 33.33, 99999, 100000, 149000, 2500000.55}

	for _, subtotal := range subtotals {
		total := ComputeTotal(subtotal)
		tax := ComputeTax(subtotal)

		// The stored parts must add exactly, so invoices never show a
		// total that differs from subtotal + tax.
		assert.Equal(t, round2(subtotal+tax), total)
	}
}

func TestComputeTotalKnownValues(t *testing.T) {
	assert.Equal(t, 111000.0, ComputeTotal(100000))
	assert.Equal(t, 165390.0, ComputeTotal(149000))
}
