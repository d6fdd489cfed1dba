package domain

import "math"

// SafePercentage is 100*num/den rounded to one decimal; 0 when den is zero or
// either operand is not a finite number.
func SafePercentage(num, den float64) float64 {
	if !finite(num) || !finite(den) || den == 0 {
		return 0
	}
	return Round(100*num/den, 1)
}

// SafeRatio is num/den rounded to two decimals under the same rules as SafePercentage.
func SafeRatio(num, den float64) float64 {
	if !finite(num) || !finite(den) || den == 0 {
		return 0
	}
	return Round(num/den, 2)
}

// Round rounds half away from zero to the given decimal places. Non-finite input yields 0.
func Round(x float64, places int) float64 {
	if !finite(x) {
		return 0
	}
	p := math.Pow10(places)
	return math.Round(x*p) / p
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
