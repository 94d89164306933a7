package gen

import (
	"fmt"
	"math"
	"time"

	"github.com/vvka-141/perinat/pkg/perinat"
)

var parityWeights = []float64{0.40, 0.35, 0.18, 0.07} // 1..4 pregnancies

// synthPregnancies fans out 1-4 pregnancies per patient, delivery dates
// uniform across the configured window.
func synthPregnancies(s *Sampler, cfg perinat.GenerateConfig, patients []perinat.Patient) []perinat.Pregnancy {
	pregnancies := make([]perinat.Pregnancy, 0, len(patients)*2)
	seq := 1

	for _, patient := range patients {
		parity := s.WeightedIndex(parityWeights) + 1

		for num := 1; num <= parity; num++ {
			deliveryDate := s.DateBetween(cfg.StartDate, cfg.EndDate)
			age := ageAt(patient.BirthDate, deliveryDate)

			// Clamp implausible ages by sliding the delivery date
			if age < 15 {
				deliveryDate = deliveryDate.AddDate(0, 0, 365*(15-age))
				age = 15
			} else if age > 50 {
				deliveryDate = deliveryDate.AddDate(0, 0, -365*(age-45))
				age = 45
			}

			gestWeeks := s.IntBetween(22, 43) // includes preterm and post-term
			lmp := deliveryDate.AddDate(0, 0, -7*gestWeeks)
			edd := lmp.AddDate(0, 0, 7*40)

			bmi := sampleBMI(s, deliveryDate.Year())

			// Additive risk score from age, BMI and parity
			risk := 0
			if age >= 35 {
				risk += 2
			}
			if age >= 40 {
				risk += 3
			}
			if bmi >= 30 {
				risk += 2
			}
			if num == 1 { // primiparous
				risk++
			}

			pregnancies = append(pregnancies, perinat.Pregnancy{
				ID:                     fmt.Sprintf("PREG_%06d", seq),
				PatientID:              patient.ID,
				PregnancyNumber:        num,
				LMPDate:                lmp,
				EDD:                    edd,
				DeliveryDate:           deliveryDate,
				MaternalAgeAtDelivery:  age,
				PrePregnancyBMI:        bmi,
				GestationalWeeks:       gestWeeks,
				InitialRiskScore:       risk,
				HasGestationalDiabetes: s.Chance(0.05 + float64(risk)*0.01),
				HasPreeclampsia:        s.Chance(0.02 + float64(risk)*0.008),
				HasPlacentalIssues:     s.Chance(0.015),
				IsMultipleGestation:    s.Chance(0.025),
				SmokingThirdTrimester:  s.Chance(smokingRate(deliveryDate.Year())),
				AlcoholUse:             s.Chance(0.03),
				CannabisUse:            s.Chance(0.011),
				CovidInfection:         deliveryDate.Year() >= 2020 && s.Chance(0.057),
			})
			seq++
		}
	}

	return pregnancies
}

// sampleBMI draws a pre-pregnancy BMI from the year's category weights,
// uniform within the category band, rounded to one decimal.
func sampleBMI(s *Sampler, year int) float64 {
	bands := [][2]float64{
		{15.0, 18.4}, // underweight
		{18.5, 24.9}, // normal
		{25.0, 29.9}, // overweight
		{30.0, 45.0}, // obese
	}

	band := bands[s.WeightedIndex(bmiCategoryWeights(year))]
	return math.Round(s.Uniform(band[0], band[1])*10) / 10
}

// ageAt returns completed years between birth and reference date.
func ageAt(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() ||
		(ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}
