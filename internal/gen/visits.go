package gen

import (
	"fmt"
	"math"

	"github.com/vvka-141/perinat/pkg/perinat"
)

// averageHeightM is the assumed maternal height used to derive weight
// from pre-pregnancy BMI.
const averageHeightM = 1.65

// synthVisits generates the prenatal visit series for each pregnancy.
// Visit counts depend on term: very preterm pregnancies see fewer visits.
func synthVisits(s *Sampler, pregnancies []perinat.Pregnancy) []perinat.PrenatalVisit {
	visits := make([]perinat.PrenatalVisit, 0, len(pregnancies)*8)
	seq := 1

	for _, preg := range pregnancies {
		var numVisits int
		switch {
		case preg.GestationalWeeks < 28:
			numVisits = s.IntBetween(2, 4)
		case preg.GestationalWeeks < 37:
			numVisits = s.IntBetween(4, 7)
		default:
			numVisits = s.IntBetween(7, 12)
		}

		durationDays := int(preg.DeliveryDate.Sub(preg.LMPDate).Hours() / 24)

		for visitNum := 1; visitNum <= numVisits; visitNum++ {
			proportion := float64(visitNum) / float64(numVisits+1)
			visitDate := preg.LMPDate.AddDate(0, 0, int(float64(durationDays)*proportion))
			week := int(visitDate.Sub(preg.LMPDate).Hours() / 24 / 7)

			providerType := "Obstetrician"
			if s.Chance(midwifeRate(visitDate.Year())) {
				providerType = "Midwife"
			}

			// Blood pressure rises slightly with gestation
			baseSystolic := s.IntBetween(100, 130)
			baseDiastolic := s.IntBetween(60, 85)
			bpIncrease := int(float64(week) * 0.3)
			systolic := baseSystolic + bpIncrease + s.IntBetween(-5, 5)
			diastolic := baseDiastolic + int(float64(bpIncrease)*0.6) + s.IntBetween(-3, 3)

			if preg.HasPreeclampsia && week > 20 {
				systolic = max(systolic, s.IntBetween(140, 160))
				diastolic = max(diastolic, s.IntBetween(90, 105))
			}

			preWeight := preg.PrePregnancyBMI * averageHeightM * averageHeightM
			expectedGain := s.Uniform(9, 18)
			gainSoFar := float64(week) / 40 * expectedGain
			weight := math.Round((preWeight+gainSoFar+s.Uniform(-2, 2))*10) / 10

			var fundalHeight *float64
			if week > 12 {
				fh := float64(max(0, week-s.IntBetween(0, 3)))
				fundalHeight = &fh
			}

			var fetalHeartRate *int
			if week > 10 {
				fhr := s.IntBetween(120, 160)
				fetalHeartRate = &fhr
			}

			downScreening := week >= 11 && week <= 14 && s.Chance(0.918)
			glucoseScreening := week >= 24 && week <= 28
			proteinInUrine := systolic >= 140 && s.Chance(0.3)

			// Risk can rise between visits, which is what the downstream
			// SCD-2 snapshot exercises track
			risk := preg.InitialRiskScore
			if systolic >= 140 || diastolic >= 90 {
				risk += 2
			}
			if preg.HasGestationalDiabetes && week > 24 {
				risk += 2
			}
			if week < 37 && visitNum == numVisits {
				risk += 3
			}

			sys := systolic
			visits = append(visits, perinat.PrenatalVisit{
				ID:                        fmt.Sprintf("VISIT_%07d", seq),
				PregnancyID:               preg.ID,
				VisitNumber:               visitNum,
				VisitDate:                 visitDate,
				GestationalWeek:           week,
				ProviderType:              providerType,
				BPSystolic:                &sys,
				BPDiastolic:               diastolic,
				WeightKG:                  weight,
				FundalHeightCM:            fundalHeight,
				FetalHeartRate:            fetalHeartRate,
				ProteinInUrine:            proteinInUrine,
				GlucoseScreeningDone:      glucoseScreening,
				DownSyndromeScreeningDone: downScreening,
				UltrasoundDone:            visitNum == 1 || visitNum == 3 || visitNum == 5 || visitNum == 7,
				RiskScoreAtVisit:          risk,
				NotesLength:               s.IntBetween(50, 500),
			})
			seq++
		}
	}

	return visits
}
