package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/perinat/internal/config"
	"github.com/vvka-141/perinat/internal/logging"
	"github.com/vvka-141/perinat/internal/services"
	"github.com/vvka-141/perinat/pkg/perinat"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic maternal-health dataset",
	Long: `Generate synthesizes the five-table maternal-health dataset and writes it
as CSV files to the output directory.

The generator:
1. Creates patients with French regional, educational and social distributions
2. Fans out 1-4 pregnancies per patient across the date window
3. Produces prenatal visit series, deliveries and birth outcomes
4. Injects deliberate quality defects (nulls, duplicates, impossible dates)

The same seed always reproduces the same dataset, byte for byte.

Configuration precedence: flags > perinat.yaml > built-in defaults.

Examples:
  # Default dataset (10000 patients, seed 42, data/raw/)
  perinat generate

  # Small reproducible sample
  perinat generate --patients 500 --seed 7 -o /tmp/sample

  # Clean dataset without quality defects
  perinat generate --null-education 0 --null-bp 0 --duplicate-visits 0 --shifted-visits 0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

type generateFlagValues struct {
	seed               int64
	patients           int
	startDate, endDate string
	outputDir          string
	nullEducation      int
	nullBP             int
	duplicateVisits    int
	shiftedVisits      int
	shiftDays          int
}

var generateFlags generateFlagValues

func init() {
	rootCmd.AddCommand(generateCmd)
	registerGenerateFlags(generateCmd)
}

// registerGenerateFlags binds the generate flag set to the given command.
// Extracted so tests can rebuild a pristine flag state.
func registerGenerateFlags(generateCmd *cobra.Command) {
	generateFlags = generateFlagValues{}

	generateCmd.Flags().Int64Var(&generateFlags.seed, "seed", perinat.DefaultSeed,
		"Random seed; identical seeds reproduce identical datasets")
	generateCmd.Flags().IntVarP(&generateFlags.patients, "patients", "n", perinat.DefaultNumPatients,
		"Number of patients to generate")
	generateCmd.Flags().StringVar(&generateFlags.startDate, "start-date", perinat.DefaultStartDate,
		"Earliest delivery date (YYYY-MM-DD)")
	generateCmd.Flags().StringVar(&generateFlags.endDate, "end-date", perinat.DefaultEndDate,
		"Latest delivery date (YYYY-MM-DD)")
	generateCmd.Flags().StringVarP(&generateFlags.outputDir, "output", "o", perinat.DefaultOutputDir,
		"Output directory for the CSV files (created if absent)")

	generateCmd.Flags().IntVar(&generateFlags.nullEducation, "null-education", perinat.DefaultNullEducationCount,
		"Number of patients whose education_level is nulled")
	generateCmd.Flags().IntVar(&generateFlags.nullBP, "null-bp", perinat.DefaultNullBPCount,
		"Number of visits whose bp_systolic is nulled")
	generateCmd.Flags().IntVar(&generateFlags.duplicateVisits, "duplicate-visits", perinat.DefaultDuplicateVisits,
		"Number of visit rows duplicated verbatim")
	generateCmd.Flags().IntVar(&generateFlags.shiftedVisits, "shifted-visits", perinat.DefaultShiftedVisits,
		"Number of visits shifted past their delivery date")
	generateCmd.Flags().IntVar(&generateFlags.shiftDays, "shift-days", perinat.DefaultDateShiftDays,
		"Days added to each shifted visit")
}

// buildGenerateConfig merges flags, perinat.yaml and defaults into a
// GenerateConfig. Extracted for testability.
func buildGenerateConfig(cmd *cobra.Command, verbose bool) (perinat.GenerateConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(".")
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return perinat.GenerateConfig{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	cfg := perinat.GenerateConfig{
		Seed:        generateFlags.seed,
		NumPatients: generateFlags.patients,
		OutputDir:   generateFlags.outputDir,
		Defects: perinat.DefectConfig{
			NullEducation:   generateFlags.nullEducation,
			NullBPSystolic:  generateFlags.nullBP,
			DuplicateVisits: generateFlags.duplicateVisits,
			ShiftedVisits:   generateFlags.shiftedVisits,
			DateShiftDays:   generateFlags.shiftDays,
		},
		Verbose: verbose,
	}

	startDate := generateFlags.startDate
	endDate := generateFlags.endDate

	// perinat.yaml fills in anything not set explicitly on the command line
	if projectCfg != nil {
		gc := projectCfg.Generator
		if gc.Seed != 0 && !cmd.Flags().Changed("seed") {
			cfg.Seed = gc.Seed
		}
		if gc.Patients != 0 && !cmd.Flags().Changed("patients") {
			cfg.NumPatients = gc.Patients
		}
		if gc.OutputDir != "" && !cmd.Flags().Changed("output") {
			cfg.OutputDir = gc.OutputDir
		}
		if gc.StartDate != "" && !cmd.Flags().Changed("start-date") {
			startDate = gc.StartDate
		}
		if gc.EndDate != "" && !cmd.Flags().Changed("end-date") {
			endDate = gc.EndDate
		}
		if gc.Defects != nil {
			applyYAMLDefects(cmd, &cfg.Defects, gc.Defects)
		}
	}

	cfg.StartDate, err = time.Parse("2006-01-02", startDate)
	if err != nil {
		return perinat.GenerateConfig{}, fmt.Errorf("invalid start date %q (expected YYYY-MM-DD): %w", startDate, perinat.ErrInvalidConfig)
	}
	cfg.EndDate, err = time.Parse("2006-01-02", endDate)
	if err != nil {
		return perinat.GenerateConfig{}, fmt.Errorf("invalid end date %q (expected YYYY-MM-DD): %w", endDate, perinat.ErrInvalidConfig)
	}

	return cfg, nil
}

func applyYAMLDefects(cmd *cobra.Command, defects *perinat.DefectConfig, yaml *config.DefectCounts) {
	if !cmd.Flags().Changed("null-education") {
		defects.NullEducation = yaml.NullEducation
	}
	if !cmd.Flags().Changed("null-bp") {
		defects.NullBPSystolic = yaml.NullBPSystolic
	}
	if !cmd.Flags().Changed("duplicate-visits") {
		defects.DuplicateVisits = yaml.DuplicateVisits
	}
	if !cmd.Flags().Changed("shifted-visits") {
		defects.ShiftedVisits = yaml.ShiftedVisits
	}
	if !cmd.Flags().Changed("shift-days") && yaml.ShiftDays != 0 {
		defects.DateShiftDays = yaml.ShiftDays
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildGenerateConfig(cmd, verbose)
	if err != nil {
		return err
	}
	// A positional output directory beats the -o flag and perinat.yaml
	if len(args) == 1 {
		cfg.OutputDir = args[0]
	}

	svc := services.NewGenerateService(logging.NewConsoleLogger(verbose))
	counts, err := svc.Generate(cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	printGeneratedSummary(cfg.OutputDir, counts)
	return nil
}
