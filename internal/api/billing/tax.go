package billing

import "math"

// VATRate is the Indonesian VAT applied to every subscription order.
const VATRate = 0.11

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTax returns the VAT amount for a subtotal, rounded to 2 decimals.
func ComputeTax(subtotal float64) float64 {
	return round2(subtotal * VATRate)
}

// ComputeTotal returns subtotal plus VAT. The tax is rounded before the sum
// so the stored subtotal, tax and total always add up exactly.
func ComputeTotal(subtotal float64) float64 {
	return round2(subtotal + ComputeTax(subtotal))
}
