package gen

import (
	"fmt"
	"time"

	"github.com/vvka-141/perinat/pkg/perinat"
)

// synthPatients generates the patient population. Birth years 1974-2009
// keep mothers between 15 and 50 across the delivery window.
func synthPatients(s *Sampler, count int) []perinat.Patient {
	patients := make([]perinat.Patient, 0, count)

	for i := 0; i < count; i++ {
		birthYear := s.IntBetween(1974, 2009)
		birthDate := time.Date(birthYear, time.Month(s.IntBetween(1, 12)), s.IntBetween(1, 28), 0, 0, 0, 0, time.UTC)

		reg := frenchRegions[s.WeightedIndex(regionWeights)]
		postalCode := fmt.Sprintf("%s%d", s.Pick(reg.departments), s.IntBetween(100, 999))

		education := educationLevels[s.WeightedIndex(educationWeights)]

		nationality := "French"
		if !s.Chance(0.85) {
			nationality = s.Country()
		}

		patients = append(patients, perinat.Patient{
			ID:                        fmt.Sprintf("PAT_%06d", i+1),
			FirstName:                 s.FemaleFirstName(),
			LastName:                  s.LastName(),
			BirthDate:                 birthDate,
			Region:                    reg.name,
			PostalCode:                postalCode,
			EducationLevel:            &education,
			IsEmployed:                s.Chance(0.75),
			HasPartner:                s.Chance(0.87),
			ReceivesWelfare:           s.Chance(0.09),
			HasHealthInsurance:        s.Chance(0.99),
			HasSupplementaryInsurance: s.Chance(0.93),
			Nationality:               nationality,
		})
	}

	return patients
}
