// Package schema provisions the warehouse layout: the raw, staging and
// analytics schemas plus the five raw tables the loader fills. Staging and
// analytics stay empty; they belong to the downstream transformation layer.
package schema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vvka-141/perinat/pkg/perinat"
)

// Schemas created on every load, in order.
var Schemas = []string{perinat.SchemaRaw, perinat.SchemaStaging, perinat.SchemaAnalytics}

// rawTableDDL maps each raw table to its CREATE statement. Column names
// and order match the CSV layout in internal/csvio exactly, so positional
// inserts line up. No FK constraints: raw mirrors the files as delivered,
// including the deliberate quality defects.
var rawTableDDL = map[string]string{
	"patients": `CREATE TABLE raw.patients (
		patient_id VARCHAR(50) PRIMARY KEY,
		first_name VARCHAR(100),
		last_name VARCHAR(100),
		birth_date DATE,
		region VARCHAR(100),
		postal_code VARCHAR(10),
		education_level VARCHAR(50),
		is_employed BOOLEAN,
		has_partner BOOLEAN,
		receives_welfare BOOLEAN,
		has_health_insurance BOOLEAN,
		has_supplementary_insurance BOOLEAN,
		nationality VARCHAR(100)
	)`,
	"pregnancies": `CREATE TABLE raw.pregnancies (
		pregnancy_id VARCHAR(50) PRIMARY KEY,
		patient_id VARCHAR(50),
		pregnancy_number INTEGER,
		lmp_date DATE,
		edd DATE,
		delivery_date DATE,
		maternal_age_at_delivery INTEGER,
		pre_pregnancy_bmi DECIMAL(5,2),
		gestational_weeks INTEGER,
		initial_risk_score INTEGER,
		has_gestational_diabetes BOOLEAN,
		has_preeclampsia BOOLEAN,
		has_placental_issues BOOLEAN,
		is_multiple_gestation BOOLEAN,
		smoking_3rd_trimester BOOLEAN,
		alcohol_during_pregnancy BOOLEAN,
		cannabis_use BOOLEAN,
		covid_infection BOOLEAN
	)`,
	// No PK on visit_id: the injected duplicate rows must load as-is.
	"prenatal_visits": `CREATE TABLE raw.prenatal_visits (
		visit_id VARCHAR(50),
		pregnancy_id VARCHAR(50),
		visit_number INTEGER,
		visit_date DATE,
		gestational_week INTEGER,
		provider_type VARCHAR(50),
		bp_systolic INTEGER,
		bp_diastolic INTEGER,
		weight_kg DECIMAL(5,2),
		fundal_height_cm DECIMAL(5,2),
		fetal_heart_rate INTEGER,
		protein_in_urine BOOLEAN,
		glucose_screening_done BOOLEAN,
		down_syndrome_screening_done BOOLEAN,
		ultrasound_done BOOLEAN,
		risk_score_at_visit INTEGER,
		notes_length INTEGER
	)`,
	"deliveries": `CREATE TABLE raw.deliveries (
		delivery_id VARCHAR(50) PRIMARY KEY,
		pregnancy_id VARCHAR(50),
		delivery_date DATE,
		delivery_time TIME,
		facility_type VARCHAR(50),
		facility_name VARCHAR(200),
		labor_induced BOOLEAN,
		spontaneous_labor BOOLEAN,
		artificial_rupture_membranes BOOLEAN,
		oxytocin_augmentation BOOLEAN,
		epidural BOOLEAN,
		pain_level INTEGER,
		delivery_mode VARCHAR(50),
		delivery_method VARCHAR(100),
		episiotomy BOOLEAN,
		perineal_tear BOOLEAN,
		perineal_tear_degree INTEGER,
		labor_duration_minutes INTEGER,
		blood_loss_ml INTEGER,
		maternal_complications TEXT,
		attending_obstetrician VARCHAR(200),
		attending_midwife VARCHAR(200)
	)`,
	"birth_outcomes": `CREATE TABLE raw.birth_outcomes (
		outcome_id VARCHAR(50) PRIMARY KEY,
		delivery_id VARCHAR(50),
		pregnancy_id VARCHAR(50),
		infant_number INTEGER,
		sex VARCHAR(10),
		birth_weight_grams INTEGER,
		birth_length_cm DECIMAL(5,2),
		head_circumference_cm DECIMAL(5,2),
		apgar_1min INTEGER,
		apgar_5min INTEGER,
		gestational_age_weeks INTEGER,
		low_birth_weight BOOLEAN,
		preterm_birth BOOLEAN,
		neonatal_complications TEXT,
		nicu_admission BOOLEAN,
		nicu_days INTEGER,
		breastfeeding_initiation VARCHAR(20)
	)`,
}

const auditTableDDL = `CREATE TABLE IF NOT EXISTS raw.load_audit (
	load_id UUID,
	table_name VARCHAR(100),
	row_count BIGINT,
	loaded_at TIMESTAMPTZ DEFAULT now()
)`

// Provisioner creates schemas and drop-and-recreates the raw tables.
// Stateless; thread safety depends on the injected DBConnection.
type Provisioner struct{}

// New creates a Provisioner.
func New() *Provisioner {
	return &Provisioner{}
}

// CreateSchemas creates the three schemas if absent.
func (p *Provisioner) CreateSchemas(ctx context.Context, conn perinat.DBConnection) error {
	for _, name := range Schemas {
		query := fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", pgx.Identifier{name}.Sanitize())
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to create schema %q: %w", name, err)
		}
	}
	return nil
}

// RecreateRawTables drops and recreates the five raw tables, destroying any
// previously loaded rows, and ensures the load audit table exists. Audit
// history survives reloads.
func (p *Provisioner) RecreateRawTables(ctx context.Context, conn perinat.DBConnection, tables []string) error {
	for _, name := range tables {
		ddl, ok := rawTableDDL[name]
		if !ok {
			return fmt.Errorf("no table definition for %q", name)
		}

		drop := fmt.Sprintf("DROP TABLE IF EXISTS raw.%s CASCADE", pgx.Identifier{name}.Sanitize())
		if _, err := conn.Exec(ctx, drop); err != nil {
			return fmt.Errorf("failed to drop table raw.%s: %w", name, err)
		}
		if _, err := conn.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create table raw.%s: %w", name, err)
		}
	}

	if _, err := conn.Exec(ctx, auditTableDDL); err != nil {
		return fmt.Errorf("failed to create audit table: %w", err)
	}
	return nil
}
