package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Ratio devolve num/den, ou 0 quando o denominador não é positivo
func Ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// RatioFloat é Ratio para valores já somados em float
func RatioFloat(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
