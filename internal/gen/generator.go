package gen

import (
	"sort"

	"github.com/vvka-141/perinat/pkg/perinat"
)

// Generator produces one complete dataset from a validated configuration.
type Generator struct {
	cfg    perinat.GenerateConfig
	logger perinat.Logger
}

// NewGenerator creates a Generator. Panics if logger is nil.
func NewGenerator(cfg perinat.GenerateConfig, logger perinat.Logger) *Generator {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Generator{cfg: cfg, logger: logger}
}

// Generate runs the full synthesis pipeline and returns the dataset.
// The five tables are generated in dependency order, then the configured
// quality defects are injected.
func (g *Generator) Generate() (*perinat.Dataset, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	s := NewSampler(g.cfg.Seed)

	g.logger.Verbose("Generating %d patients (seed %d)", g.cfg.NumPatients, g.cfg.Seed)
	patients := synthPatients(s, g.cfg.NumPatients)

	pregnancies := synthPregnancies(s, g.cfg, patients)
	g.logger.Verbose("Generated %d pregnancies", len(pregnancies))

	visits := synthVisits(s, pregnancies)
	g.logger.Verbose("Generated %d prenatal visits", len(visits))

	deliveries := synthDeliveries(s, pregnancies)
	outcomes := synthOutcomes(s, pregnancies)
	g.logger.Verbose("Generated %d deliveries, %d birth outcomes", len(deliveries), len(outcomes))

	ds := &perinat.Dataset{
		Patients:       patients,
		Pregnancies:    pregnancies,
		PrenatalVisits: visits,
		Deliveries:     deliveries,
		BirthOutcomes:  outcomes,
	}

	InjectDefects(s, ds, g.cfg.Defects)
	g.logger.Verbose("Injected defects: %d null education, %d null BP, %d duplicate visits, %d shifted visits",
		g.cfg.Defects.NullEducation, g.cfg.Defects.NullBPSystolic,
		g.cfg.Defects.DuplicateVisits, g.cfg.Defects.ShiftedVisits)

	return ds, nil
}

// LogSummary reports headline statistics of a generated dataset so the
// distributions can be eyeballed against the published ENP figures.
func (g *Generator) LogSummary(ds *perinat.Dataset) {
	ages := make([]int, len(ds.Pregnancies))
	over35 := 0
	obese := 0
	preterm := 0
	for i, p := range ds.Pregnancies {
		ages[i] = p.MaternalAgeAtDelivery
		if p.MaternalAgeAtDelivery >= 35 {
			over35++
		}
		if p.PrePregnancyBMI >= 30 {
			obese++
		}
		if p.GestationalWeeks < 37 {
			preterm++
		}
	}
	sort.Ints(ages)

	cesarean := 0
	epidural := 0
	for _, d := range ds.Deliveries {
		if d.DeliveryMode == "Cesarean" {
			cesarean++
		}
		if d.Epidural {
			epidural++
		}
	}

	var totalWeight int
	for _, o := range ds.BirthOutcomes {
		totalWeight += o.BirthWeightGrams
	}

	n := float64(len(ds.Pregnancies))
	g.logger.Info("Dataset summary:")
	g.logger.Info("  Patients:        %d", len(ds.Patients))
	g.logger.Info("  Pregnancies:     %d", len(ds.Pregnancies))
	g.logger.Info("  Prenatal visits: %d", len(ds.PrenatalVisits))
	g.logger.Info("  Deliveries:      %d", len(ds.Deliveries))
	g.logger.Info("  Birth outcomes:  %d", len(ds.BirthOutcomes))
	if len(ages) > 0 {
		g.logger.Info("  Median maternal age: %d (%.1f%% aged 35+)", ages[len(ages)/2], percent(over35, n))
		g.logger.Info("  Obesity rate:        %.1f%%", percent(obese, n))
		g.logger.Info("  Cesarean rate:       %.1f%%", percent(cesarean, float64(len(ds.Deliveries))))
		g.logger.Info("  Preterm rate:        %.1f%%", percent(preterm, n))
		g.logger.Info("  Epidural rate:       %.1f%%", percent(epidural, float64(len(ds.Deliveries))))
	}
	if len(ds.BirthOutcomes) > 0 {
		g.logger.Info("  Mean birth weight:   %dg", totalWeight/len(ds.BirthOutcomes))
	}
}

func percent(count int, total float64) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / total * 100
}
