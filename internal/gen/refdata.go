package gen

// Reference data for the synthesized population. Region shares and clinical
// rates follow the ENP 2021 survey (Enquête nationale périnatale).

type region struct {
	name        string
	weight      float64
	departments []string
}

var frenchRegions = []region{
	{"Île-de-France", 0.20, []string{"75", "77", "78", "91", "92", "93", "94", "95"}},
	{"Auvergne-Rhône-Alpes", 0.12, []string{"01", "03", "07", "15", "26", "38", "42", "43", "63", "69", "73", "74"}},
	{"Nouvelle-Aquitaine", 0.09, []string{"16", "17", "19", "23", "24", "33", "40", "47", "64", "79", "86", "87"}},
	{"Occitanie", 0.09, []string{"09", "11", "12", "30", "31", "32", "34", "46", "48", "65", "66", "81", "82"}},
	{"Hauts-de-France", 0.09, []string{"02", "59", "60", "62", "80"}},
	{"Provence-Alpes-Côte d'Azur", 0.08, []string{"04", "05", "06", "13", "83", "84"}},
	{"Grand Est", 0.08, []string{"08", "10", "51", "52", "54", "55", "57", "67", "68", "88"}},
	{"Pays de la Loire", 0.06, []string{"44", "49", "53", "72", "85"}},
	{"Bretagne", 0.05, []string{"22", "29", "35", "56"}},
	{"Normandie", 0.05, []string{"14", "27", "50", "61", "76"}},
	{"Bourgogne-Franche-Comté", 0.04, []string{"21", "25", "39", "58", "70", "71", "89", "90"}},
	{"Centre-Val de Loire", 0.04, []string{"18", "28", "36", "37", "41", "45"}},
	{"Corse", 0.01, []string{"2A", "2B"}},
}

var regionWeights = func() []float64 {
	w := make([]float64, len(frenchRegions))
	for i, r := range frenchRegions {
		w[i] = r.weight
	}
	return w
}()

var (
	educationLevels  = []string{"No diploma", "CAP/BEP", "Baccalauréat", "Bachelor", "Master+"}
	educationWeights = []float64{0.10, 0.20, 0.20, 0.30, 0.20}
)

var (
	facilityTypes       = []string{"Type I", "Type IIA", "Type IIB", "Type III", "Birth Center"}
	facilityTypeWeights = []float64{0.30, 0.35, 0.15, 0.18, 0.02}
)

var (
	breastfeedingStatuses = []string{"Exclusive", "Mixed", "Formula only"}
	breastfeedingWeights  = []float64{0.563, 0.25, 0.187}
)

// Pain bands reported after delivery, mapped to a 0-10 scale.
type painBand struct {
	lo, hi int
	weight float64
}

var (
	// With epidural most report little or no pain.
	painBandsEpidural = []painBand{
		{0, 0, 0.30},   // none
		{1, 3, 0.35},   // mild
		{4, 6, 0.169},  // moderate
		{7, 10, 0.314}, // severe
	}
	// Without epidural only moderate and severe occur.
	painBandsNoEpidural = []painBand{
		{4, 6, 0.3},
		{7, 10, 0.7},
	}
)

// gofakeit carries no French locale, so patient names come from fixed
// ENP-plausible lists; attending staff names still come from the faker.
var frenchFemaleFirstNames = []string{
	"Emma", "Louise", "Jade", "Alice", "Chloé", "Lina", "Léa", "Rose",
	"Anna", "Inès", "Ambre", "Julia", "Mia", "Romane", "Juliette", "Lucie",
	"Camille", "Manon", "Sarah", "Zoé", "Charlotte", "Agathe", "Jeanne", "Nina",
	"Léna", "Margaux", "Clara", "Eva", "Mathilde", "Laura", "Pauline", "Marion",
	"Sophie", "Claire", "Élise", "Amandine", "Audrey", "Céline", "Nadia", "Fatima",
}

var frenchLastNames = []string{
	"Martin", "Bernard", "Thomas", "Petit", "Robert", "Richard", "Durand", "Dubois",
	"Moreau", "Laurent", "Simon", "Michel", "Lefebvre", "Leroy", "Roux", "David",
	"Bertrand", "Morel", "Fournier", "Girard", "Bonnet", "Dupont", "Lambert", "Fontaine",
	"Rousseau", "Vincent", "Muller", "Lefevre", "Faure", "André", "Mercier", "Blanc",
	"Guérin", "Boyer", "Garnier", "Chevalier", "François", "Legrand", "Gauthier", "Garcia",
}
