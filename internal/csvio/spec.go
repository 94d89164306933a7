// Package csvio defines the CSV layout of the five dataset tables and
// implements the writer and reader sides of it. The column specs here are
// the single source of truth shared by the exporter, the loader and the
// raw-table DDL.
package csvio

import (
	"github.com/vvka-141/perinat/pkg/perinat"
)

// ColKind is the cell type of a CSV column, driving both formatting on
// export and parsing on load.
type ColKind int

const (
	KindText ColKind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
)

// Column is one CSV column. Nullable columns export nil cells as empty
// strings and parse empty strings back to nil.
type Column struct {
	Name string
	Kind ColKind
}

// TableSpec binds a table name to its CSV file, column layout and the
// extractor that flattens a dataset into rows. Cell values are nil,
// string, int, float64, bool or time.Time.
type TableSpec struct {
	Name    string
	File    string
	Columns []Column
	Rows    func(ds *perinat.Dataset) [][]any
}

// Tables lists the five dataset tables in load order.
var Tables = []TableSpec{
	{
		Name: "patients",
		File: "patients.csv",
		Columns: []Column{
			{"patient_id", KindText},
			{"first_name", KindText},
			{"last_name", KindText},
			{"birth_date", KindDate},
			{"region", KindText},
			{"postal_code", KindText},
			{"education_level", KindText},
			{"is_employed", KindBool},
			{"has_partner", KindBool},
			{"receives_welfare", KindBool},
			{"has_health_insurance", KindBool},
			{"has_supplementary_insurance", KindBool},
			{"nationality", KindText},
		},
		Rows: patientRows,
	},
	{
		Name: "pregnancies",
		File: "pregnancies.csv",
		Columns: []Column{
			{"pregnancy_id", KindText},
			{"patient_id", KindText},
			{"pregnancy_number", KindInt},
			{"lmp_date", KindDate},
			{"edd", KindDate},
			{"delivery_date", KindDate},
			{"maternal_age_at_delivery", KindInt},
			{"pre_pregnancy_bmi", KindFloat},
			{"gestational_weeks", KindInt},
			{"initial_risk_score", KindInt},
			{"has_gestational_diabetes", KindBool},
			{"has_preeclampsia", KindBool},
			{"has_placental_issues", KindBool},
			{"is_multiple_gestation", KindBool},
			{"smoking_3rd_trimester", KindBool},
			{"alcohol_during_pregnancy", KindBool},
			{"cannabis_use", KindBool},
			{"covid_infection", KindBool},
		},
		Rows: pregnancyRows,
	},
	{
		Name: "prenatal_visits",
		File: "prenatal_visits.csv",
		Columns: []Column{
			{"visit_id", KindText},
			{"pregnancy_id", KindText},
			{"visit_number", KindInt},
			{"visit_date", KindDate},
			{"gestational_week", KindInt},
			{"provider_type", KindText},
			{"bp_systolic", KindInt},
			{"bp_diastolic", KindInt},
			{"weight_kg", KindFloat},
			{"fundal_height_cm", KindFloat},
			{"fetal_heart_rate", KindInt},
			{"protein_in_urine", KindBool},
			{"glucose_screening_done", KindBool},
			{"down_syndrome_screening_done", KindBool},
			{"ultrasound_done", KindBool},
			{"risk_score_at_visit", KindInt},
			{"notes_length", KindInt},
		},
		Rows: visitRows,
	},
	{
		Name: "deliveries",
		File: "deliveries.csv",
		Columns: []Column{
			{"delivery_id", KindText},
			{"pregnancy_id", KindText},
			{"delivery_date", KindDate},
			{"delivery_time", KindText},
			{"facility_type", KindText},
			{"facility_name", KindText},
			{"labor_induced", KindBool},
			{"spontaneous_labor", KindBool},
			{"artificial_rupture_membranes", KindBool},
			{"oxytocin_augmentation", KindBool},
			{"epidural", KindBool},
			{"pain_level", KindInt},
			{"delivery_mode", KindText},
			{"delivery_method", KindText},
			{"episiotomy", KindBool},
			{"perineal_tear", KindBool},
			{"perineal_tear_degree", KindInt},
			{"labor_duration_minutes", KindInt},
			{"blood_loss_ml", KindInt},
			{"maternal_complications", KindText},
			{"attending_obstetrician", KindText},
			{"attending_midwife", KindText},
		},
		Rows: deliveryRows,
	},
	{
		Name: "birth_outcomes",
		File: "birth_outcomes.csv",
		Columns: []Column{
			{"outcome_id", KindText},
			{"delivery_id", KindText},
			{"pregnancy_id", KindText},
			{"infant_number", KindInt},
			{"sex", KindText},
			{"birth_weight_grams", KindInt},
			{"birth_length_cm", KindFloat},
			{"head_circumference_cm", KindFloat},
			{"apgar_1min", KindInt},
			{"apgar_5min", KindInt},
			{"gestational_age_weeks", KindInt},
			{"low_birth_weight", KindBool},
			{"preterm_birth", KindBool},
			{"neonatal_complications", KindText},
			{"nicu_admission", KindBool},
			{"nicu_days", KindInt},
			{"breastfeeding_initiation", KindText},
		},
		Rows: outcomeRows,
	},
}

// TableByName looks up a table spec. Returns false if the name is unknown.
func TableByName(name string) (TableSpec, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return TableSpec{}, false
}

func patientRows(ds *perinat.Dataset) [][]any {
	rows := make([][]any, 0, len(ds.Patients))
	for _, p := range ds.Patients {
		rows = append(rows, []any{
			p.ID, p.FirstName, p.LastName, p.BirthDate, p.Region, p.PostalCode,
			deref(p.EducationLevel), p.IsEmployed, p.HasPartner, p.ReceivesWelfare,
			p.HasHealthInsurance, p.HasSupplementaryInsurance, p.Nationality,
		})
	}
	return rows
}

func pregnancyRows(ds *perinat.Dataset) [][]any {
	rows := make([][]any, 0, len(ds.Pregnancies))
	for _, p := range ds.Pregnancies {
		rows = append(rows, []any{
			p.ID, p.PatientID, p.PregnancyNumber, p.LMPDate, p.EDD, p.DeliveryDate,
			p.MaternalAgeAtDelivery, p.PrePregnancyBMI, p.GestationalWeeks,
			p.InitialRiskScore, p.HasGestationalDiabetes, p.HasPreeclampsia,
			p.HasPlacentalIssues, p.IsMultipleGestation, p.SmokingThirdTrimester,
			p.AlcoholUse, p.CannabisUse, p.CovidInfection,
		})
	}
	return rows
}

func visitRows(ds *perinat.Dataset) [][]any {
	rows := make([][]any, 0, len(ds.PrenatalVisits))
	for _, v := range ds.PrenatalVisits {
		rows = append(rows, []any{
			v.ID, v.PregnancyID, v.VisitNumber, v.VisitDate, v.GestationalWeek,
			v.ProviderType, deref(v.BPSystolic), v.BPDiastolic, v.WeightKG,
			deref(v.FundalHeightCM), deref(v.FetalHeartRate), v.ProteinInUrine,
			v.GlucoseScreeningDone, v.DownSyndromeScreeningDone, v.UltrasoundDone,
			v.RiskScoreAtVisit, v.NotesLength,
		})
	}
	return rows
}

func deliveryRows(ds *perinat.Dataset) [][]any {
	rows := make([][]any, 0, len(ds.Deliveries))
	for _, d := range ds.Deliveries {
		rows = append(rows, []any{
			d.ID, d.PregnancyID, d.DeliveryDate, d.DeliveryTime, d.FacilityType,
			d.FacilityName, d.LaborInduced, d.SpontaneousLabor,
			d.ArtificialRuptureMembranes, d.OxytocinAugmentation, d.Epidural,
			d.PainLevel, d.DeliveryMode, d.DeliveryMethod, d.Episiotomy,
			d.PerinealTear, deref(d.PerinealTearDegree), d.LaborDurationMinutes,
			d.BloodLossML, deref(d.MaternalComplications), d.AttendingObstetrician,
			deref(d.AttendingMidwife),
		})
	}
	return rows
}

func outcomeRows(ds *perinat.Dataset) [][]any {
	rows := make([][]any, 0, len(ds.BirthOutcomes))
	for _, o := range ds.BirthOutcomes {
		rows = append(rows, []any{
			o.ID, o.DeliveryID, o.PregnancyID, o.InfantNumber, o.Sex,
			o.BirthWeightGrams, o.BirthLengthCM, o.HeadCircumferenceCM,
			o.Apgar1Min, o.Apgar5Min, o.GestationalAgeWeeks, o.LowBirthWeight,
			o.PretermBirth, deref(o.NeonatalComplications), o.NICUAdmission,
			o.NICUDays, o.BreastfeedingInit,
		})
	}
	return rows
}

// deref converts a nullable pointer into a nil-or-value cell.
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
