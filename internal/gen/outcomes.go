package gen

import (
	"fmt"
	"math"
	"strings"

	"github.com/vvka-141/perinat/pkg/perinat"
)

var (
	apgar1TermValues     = []int{7, 8, 9, 10}
	apgar1TermWeights    = []float64{0.05, 0.15, 0.35, 0.45}
	apgar5TermValues     = []int{8, 9, 10}
	apgar5TermWeights    = []float64{0.10, 0.30, 0.60}
	apgar1PretermValues  = []int{4, 5, 6, 7, 8, 9}
	apgar1PretermWeights = []float64{0.05, 0.10, 0.15, 0.25, 0.25, 0.20}
	apgar5PretermValues  = []int{6, 7, 8, 9, 10}
	apgar5PretermWeights = []float64{0.05, 0.10, 0.25, 0.35, 0.25}
)

// synthOutcomes generates one outcome per infant: one per pregnancy, two
// for multiple gestations.
func synthOutcomes(s *Sampler, pregnancies []perinat.Pregnancy) []perinat.BirthOutcome {
	outcomes := make([]perinat.BirthOutcome, 0, len(pregnancies))
	seq := 1

	for _, preg := range pregnancies {
		numInfants := 1
		if preg.IsMultipleGestation {
			numInfants = 2
		}

		for infant := 1; infant <= numInfants; infant++ {
			weeks := preg.GestationalWeeks

			// Birth weight by term, normally distributed
			var weight int
			switch {
			case weeks >= 37:
				weight = int(s.Normal(3264, 450))
			case weeks >= 32:
				weight = int(s.Normal(2200, 400))
			default:
				weight = int(s.Normal(1500, 350))
			}
			if preg.IsMultipleGestation {
				weight = int(float64(weight) * 0.85)
			}
			weight = max(500, min(weight, 5500))

			lowBirthWeight := weight < 2500

			length := math.Round((45+float64(weight-2500)/100)*10) / 10
			length = math.Max(35, math.Min(length, 58))

			headCircumference := math.Round((32+float64(weight-2500)/150)*10) / 10
			headCircumference = math.Max(28, math.Min(headCircumference, 38))

			var apgar1, apgar5 int
			if weeks >= 37 && weight >= 2500 {
				apgar1 = apgar1TermValues[s.WeightedIndex(apgar1TermWeights)]
				apgar5 = apgar5TermValues[s.WeightedIndex(apgar5TermWeights)]
			} else {
				apgar1 = apgar1PretermValues[s.WeightedIndex(apgar1PretermWeights)]
				apgar5 = apgar5PretermValues[s.WeightedIndex(apgar5PretermWeights)]
			}

			sex := s.Pick([]string{"Male", "Female"})

			var complications []string
			if weeks < 37 && s.Chance(0.30) {
				complications = append(complications, "Respiratory distress")
			}
			if lowBirthWeight && s.Chance(0.20) {
				complications = append(complications, "Hypoglycemia")
			}
			if apgar5 < 7 && s.Chance(0.40) {
				complications = append(complications, "Birth asphyxia")
			}
			if s.Chance(0.03) {
				complications = append(complications, "Jaundice requiring phototherapy")
			}
			var complicationsText *string
			if len(complications) > 0 {
				text := strings.Join(complications, ", ")
				complicationsText = &text
			}

			nicuAdmission := weeks < 34 || weight < 1800 || apgar5 < 6 ||
				(len(complications) > 0 && s.Chance(0.50))
			nicuDays := 0
			if nicuAdmission {
				nicuDays = s.IntBetween(3, 30)
			}

			outcomes = append(outcomes, perinat.BirthOutcome{
				ID:                    fmt.Sprintf("OUT_%06d", seq),
				DeliveryID:            "DEL_" + strings.TrimPrefix(preg.ID, "PREG_"),
				PregnancyID:           preg.ID,
				InfantNumber:          infant,
				Sex:                   sex,
				BirthWeightGrams:      weight,
				BirthLengthCM:         length,
				HeadCircumferenceCM:   headCircumference,
				Apgar1Min:             apgar1,
				Apgar5Min:             apgar5,
				GestationalAgeWeeks:   weeks,
				LowBirthWeight:        lowBirthWeight,
				PretermBirth:          weeks < 37,
				NeonatalComplications: complicationsText,
				NICUAdmission:         nicuAdmission,
				NICUDays:              nicuDays,
				BreastfeedingInit:     breastfeedingStatuses[s.WeightedIndex(breastfeedingWeights)],
			})
			seq++
		}
	}

	return outcomes
}
