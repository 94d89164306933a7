// Package config loads the optional perinat.yaml project file.
//
// The file lives next to the data directory (or in the working directory)
// and provides defaults for both halves of the tool: connection parameters
// for `perinat load` and generator parameters for `perinat generate`.
// CLI flags and PG* environment variables take precedence over the file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ConnectionConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	Username       string `yaml:"username"`
	Database       string `yaml:"database"`
	SSLMode        string `yaml:"sslmode"`
	AuthMethod     string `yaml:"auth_method,omitempty"`
	AzureTenantID  string `yaml:"azure_tenant_id,omitempty"`
	AzureClientID  string `yaml:"azure_client_id,omitempty"`
	AWSRegion      string `yaml:"aws_region,omitempty"`
	GoogleInstance string `yaml:"google_instance,omitempty"`
}

// GeneratorConfig mirrors the generate command's flags. Zero values mean
// "not set"; the CLI falls back to the built-in defaults.
type GeneratorConfig struct {
	Seed      int64         `yaml:"seed"`
	Patients  int           `yaml:"patients"`
	StartDate string        `yaml:"start_date"`
	EndDate   string        `yaml:"end_date"`
	OutputDir string        `yaml:"output_dir"`
	Defects   *DefectCounts `yaml:"defects,omitempty"`
}

// DefectCounts overrides the injected quality-defect counts.
// A nil section keeps the built-in defaults; explicit zeros disable injection.
type DefectCounts struct {
	NullEducation   int `yaml:"null_education"`
	NullBPSystolic  int `yaml:"null_bp_systolic"`
	DuplicateVisits int `yaml:"duplicate_visits"`
	ShiftedVisits   int `yaml:"shifted_visits"`
	ShiftDays       int `yaml:"shift_days"`
}

type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Timeout    string           `yaml:"timeout"`
}

const ConfigFileName = "perinat.yaml"

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
