package services

import (
	"fmt"

	"github.com/vvka-141/perinat/internal/csvio"
	"github.com/vvka-141/perinat/internal/gen"
	"github.com/vvka-141/perinat/pkg/perinat"
)

// GenerateService orchestrates a generation run: synthesize the dataset,
// export it to CSV, report the summary.
type GenerateService struct {
	logger perinat.Logger
}

// NewGenerateService creates a GenerateService. Panics on a nil logger;
// a missing dependency is a programmer error, not a runtime condition.
func NewGenerateService(logger perinat.Logger) *GenerateService {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &GenerateService{logger: logger}
}

// Generate produces the dataset and writes the five CSV files to
// config.OutputDir. Returns the per-table row counts.
func (s *GenerateService) Generate(config perinat.GenerateConfig) (map[string]int, error) {
	generator := gen.NewGenerator(config, s.logger)

	ds, err := generator.Generate()
	if err != nil {
		return nil, err
	}

	if err := csvio.WriteDataset(config.OutputDir, ds); err != nil {
		return nil, fmt.Errorf("failed to export dataset: %w", err)
	}

	generator.LogSummary(ds)
	s.logger.Info("✓ Dataset written to %s", config.OutputDir)

	return ds.RowCount(), nil
}
