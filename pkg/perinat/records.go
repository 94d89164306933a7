package perinat

import "time"

// Record structs for the five maternal-health tables. Pointer fields are
// nullable and export as empty CSV cells.

// Patient is one row of the patients table.
type Patient struct {
	ID                        string // PAT_000001
	FirstName                 string
	LastName                  string
	BirthDate                 time.Time
	Region                    string
	PostalCode                string
	EducationLevel            *string
	IsEmployed                bool
	HasPartner                bool
	ReceivesWelfare           bool
	HasHealthInsurance        bool
	HasSupplementaryInsurance bool
	Nationality               string
}

// Pregnancy is one row of the pregnancies table. Each pregnancy belongs to
// exactly one patient and carries the clinical context shared by its visits,
// delivery and outcomes.
type Pregnancy struct {
	ID                     string // PREG_000001
	PatientID              string
	PregnancyNumber        int
	LMPDate                time.Time
	EDD                    time.Time
	DeliveryDate           time.Time
	MaternalAgeAtDelivery  int
	PrePregnancyBMI        float64
	GestationalWeeks       int
	InitialRiskScore       int
	HasGestationalDiabetes bool
	HasPreeclampsia        bool
	HasPlacentalIssues     bool
	IsMultipleGestation    bool
	SmokingThirdTrimester  bool
	AlcoholUse             bool
	CannabisUse            bool
	CovidInfection         bool
}

// PrenatalVisit is one row of the prenatal_visits table.
type PrenatalVisit struct {
	ID                        string // VISIT_0000001
	PregnancyID               string
	VisitNumber               int
	VisitDate                 time.Time
	GestationalWeek           int
	ProviderType              string
	BPSystolic                *int
	BPDiastolic               int
	WeightKG                  float64
	FundalHeightCM            *float64
	FetalHeartRate            *int
	ProteinInUrine            bool
	GlucoseScreeningDone      bool
	DownSyndromeScreeningDone bool
	UltrasoundDone            bool
	RiskScoreAtVisit          int
	NotesLength               int
}

// Delivery is one row of the deliveries table. Delivery IDs share the
// pregnancy sequence number (DEL_000042 delivers PREG_000042).
type Delivery struct {
	ID                         string // DEL_000001
	PregnancyID                string
	DeliveryDate               time.Time
	DeliveryTime               string // HH:MM
	FacilityType               string
	FacilityName               string
	LaborInduced               bool
	SpontaneousLabor           bool
	ArtificialRuptureMembranes bool
	OxytocinAugmentation       bool
	Epidural                   bool
	PainLevel                  int // 0-10
	DeliveryMode               string
	DeliveryMethod             string
	Episiotomy                 bool
	PerinealTear               bool
	PerinealTearDegree         *int // 1-4
	LaborDurationMinutes       int
	BloodLossML                int
	MaternalComplications      *string
	AttendingObstetrician      string
	AttendingMidwife           *string
}

// BirthOutcome is one row of the birth_outcomes table, one per infant.
type BirthOutcome struct {
	ID                    string // OUT_000001
	DeliveryID            string
	PregnancyID           string
	InfantNumber          int
	Sex                   string // Male / Female
	BirthWeightGrams      int
	BirthLengthCM         float64
	HeadCircumferenceCM   float64
	Apgar1Min             int
	Apgar5Min             int
	GestationalAgeWeeks   int
	LowBirthWeight        bool
	PretermBirth          bool
	NeonatalComplications *string
	NICUAdmission         bool
	NICUDays              int
	BreastfeedingInit     string
}

// Dataset holds one full generated dataset across the five tables.
type Dataset struct {
	Patients       []Patient
	Pregnancies    []Pregnancy
	PrenatalVisits []PrenatalVisit
	Deliveries     []Delivery
	BirthOutcomes  []BirthOutcome
}

// RowCount returns the number of rows per table, keyed by CSV/table name.
func (d *Dataset) RowCount() map[string]int {
	return map[string]int{
		"patients":        len(d.Patients),
		"pregnancies":     len(d.Pregnancies),
		"prenatal_visits": len(d.PrenatalVisits),
		"deliveries":      len(d.Deliveries),
		"birth_outcomes":  len(d.BirthOutcomes),
	}
}
