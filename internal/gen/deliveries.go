package gen

import (
	"fmt"
	"strings"

	"github.com/vvka-141/perinat/pkg/perinat"
)

// synthDeliveries generates exactly one delivery per pregnancy. Delivery IDs
// reuse the pregnancy sequence (DEL_000042 delivers PREG_000042).
func synthDeliveries(s *Sampler, pregnancies []perinat.Pregnancy) []perinat.Delivery {
	deliveries := make([]perinat.Delivery, 0, len(pregnancies))

	for _, preg := range pregnancies {
		facilityType := facilityTypes[s.WeightedIndex(facilityTypeWeights)]
		facilityName := fmt.Sprintf("%s %s Maternity", s.City(), facilityType)

		laborInduced := s.Chance(inductionRate(preg.DeliveryDate.Year()))
		spontaneousLabor := !laborInduced

		// Cesarean 21.4%, instrumental 12.4%, rest spontaneous vaginal
		var mode, method string
		switch modeDraw := s.Float64(); {
		case modeDraw < 0.214:
			mode = "Cesarean"
			method = s.Pick([]string{"Emergency cesarean", "Planned cesarean"})
		case modeDraw < 0.214+0.124:
			mode = "Instrumental vaginal"
			method = s.Pick([]string{"Forceps", "Vacuum extraction"})
		default:
			mode = "Spontaneous vaginal"
			method = "Spontaneous"
		}

		arm := spontaneousLabor && s.Chance(0.332)
		oxytocin := spontaneousLabor && s.Chance(0.25)
		epidural := s.Chance(0.827)

		painLevel := samplePainLevel(s, epidural)

		episiotomy := false
		if mode == "Spontaneous vaginal" {
			if preg.PregnancyNumber == 1 {
				episiotomy = s.Chance(0.165)
			} else {
				episiotomy = s.Chance(0.029)
			}
		}

		perinealTear := !episiotomy && mode == "Spontaneous vaginal" && s.Chance(0.30)
		var tearDegree *int
		if perinealTear {
			d := s.IntBetween(1, 4)
			tearDegree = &d
		}

		bloodLoss := s.IntBetween(200, 500)
		if mode == "Cesarean" {
			bloodLoss = s.IntBetween(400, 800)
		}
		if s.Chance(0.05) { // postpartum hemorrhage
			bloodLoss = s.IntBetween(1000, 2000)
		}

		var laborDuration int
		if mode == "Cesarean" {
			if laborInduced {
				laborDuration = s.IntBetween(30, 180)
			}
		} else if preg.PregnancyNumber == 1 {
			laborDuration = s.IntBetween(240, 960) // 4-16 hours
		} else {
			laborDuration = s.IntBetween(120, 480) // 2-8 hours
		}

		var complications []string
		if bloodLoss > 1000 {
			complications = append(complications, "Postpartum hemorrhage")
		}
		if s.Chance(0.02) {
			complications = append(complications, "Infection")
		}
		if mode == "Cesarean" && s.Chance(0.03) {
			complications = append(complications, "Surgical complications")
		}
		var complicationsText *string
		if len(complications) > 0 {
			text := strings.Join(complications, ", ")
			complicationsText = &text
		}

		var midwife *string
		if s.Chance(0.6) {
			name := s.PersonName()
			midwife = &name
		}

		deliveries = append(deliveries, perinat.Delivery{
			ID:                         "DEL_" + strings.TrimPrefix(preg.ID, "PREG_"),
			PregnancyID:                preg.ID,
			DeliveryDate:               preg.DeliveryDate,
			DeliveryTime:               fmt.Sprintf("%02d:%02d", s.IntBetween(0, 23), s.IntBetween(0, 59)),
			FacilityType:               facilityType,
			FacilityName:               facilityName,
			LaborInduced:               laborInduced,
			SpontaneousLabor:           spontaneousLabor,
			ArtificialRuptureMembranes: arm,
			OxytocinAugmentation:       oxytocin,
			Epidural:                   epidural,
			PainLevel:                  painLevel,
			DeliveryMode:               mode,
			DeliveryMethod:             method,
			Episiotomy:                 episiotomy,
			PerinealTear:               perinealTear,
			PerinealTearDegree:         tearDegree,
			LaborDurationMinutes:       laborDuration,
			BloodLossML:                bloodLoss,
			MaternalComplications:      complicationsText,
			AttendingObstetrician:      s.PersonName(),
			AttendingMidwife:           midwife,
		})
	}

	return deliveries
}

// samplePainLevel draws a 0-10 pain score from the reported bands.
func samplePainLevel(s *Sampler, epidural bool) int {
	bands := painBandsNoEpidural
	if epidural {
		bands = painBandsEpidural
	}

	weights := make([]float64, len(bands))
	for i, b := range bands {
		weights[i] = b.weight
	}

	band := bands[s.WeightedIndex(weights)]
	if band.lo == band.hi {
		return band.lo
	}
	return s.IntBetween(band.lo, band.hi)
}
