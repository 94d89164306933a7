package gen

// Year-linear trends observed between the 2016 and 2021 ENP surveys,
// extrapolated across the generation window.

// bmiCategoryWeights returns the normalized weights for the BMI categories
// underweight, normal, overweight and obese in the given year.
// Baseline 2021: 6% / 63% / 17% / 14.4%, with obesity growing 0.5 points
// per year at the expense of the normal category.
func bmiCategoryWeights(year int) []float64 {
	w := []float64{0.06, 0.63, 0.17, 0.144}

	obesityIncrease := float64(year-2020) * 0.005
	w[3] += obesityIncrease
	w[1] -= obesityIncrease

	return normalize(w)
}

// smokingRate returns the share of mothers smoking in the third trimester.
// 16.3% in 2016 declining to 12.2% in 2021, about 0.82 points per year.
func smokingRate(year int) float64 {
	return 0.163 - float64(year-2016)*0.0082
}

// midwifeRate returns the share of prenatal visits led by a midwife.
// 11.7% in 2016 rising 5 points per year, capped at 40%.
func midwifeRate(year int) float64 {
	rate := 0.117 + float64(year-2016)*0.05
	return min(rate, 0.40)
}

// inductionRate returns the share of induced labors.
// 20.2% in 1995 rising 0.21 points per year, capped at 26%.
func inductionRate(year int) float64 {
	rate := 0.202 + float64(year-1995)*0.0021
	return min(rate, 0.26)
}

func normalize(w []float64) []float64 {
	var total float64
	for _, v := range w {
		total += v
	}

	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = v / total
	}
	return out
}
