// Package config loads the resistlong configuration from defaults, an
// optional YAML file and RESISTLONG_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/ukaji3/resistlong-go/pkg/resistlong"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/exclusion"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/parser"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/reshape"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. RESISTLONG_OUTPUT_FORMAT.
// Keys are derived from field names only; no unprefixed fallback is read.
const EnvPrefix = "RESISTLONG"

// Config represents the complete application configuration
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Layout     LayoutConfig     `yaml:"layout"`
	Exclusion  ExclusionConfig  `yaml:"exclusion"`
	Output     OutputConfig     `yaml:"output"`
	Processing ProcessingConfig `yaml:"processing"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// InputConfig selects the workbooks to read
type InputConfig struct {
	Dir        string   `yaml:"dir"`
	Extensions []string `yaml:"extensions" validate:"required,min=1,dive,startswith=."`
}

// LayoutConfig describes the report template
type LayoutConfig struct {
	DateCell string `yaml:"date_cell" validate:"required" split_words:"true"`
	SkipRows int    `yaml:"skip_rows" validate:"min=0" split_words:"true"`
	SkipCols int    `yaml:"skip_cols" validate:"min=0" split_words:"true"`
}

// ExclusionConfig holds the denylists
type ExclusionConfig struct {
	ForbiddenTerms    []string `yaml:"forbidden_terms" split_words:"true"`
	ForbiddenTaxonomy []string `yaml:"forbidden_taxonomy" split_words:"true"`
	ExcludeComma      bool     `yaml:"exclude_comma" split_words:"true"`
}

// OutputConfig selects the sink
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=csv xlsx json sqlite postgres"`
	Path   string `yaml:"path"`
	Pretty bool   `yaml:"pretty"`
}

// ProcessingConfig controls concurrency
type ProcessingConfig struct {
	Workers int `yaml:"workers" validate:"min=0,max=64"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" validate:"oneof=json text"`
	Output   string `yaml:"output" validate:"oneof=stderr stdout file"`
	FilePath string `yaml:"file_path" validate:"required_if=Output file" split_words:"true"`
}

// Default returns the configuration for the known report template.
func Default() Config {
	opts := resistlong.DefaultOptions()
	return Config{
		Input: InputConfig{
			Extensions: append([]string(nil), opts.Extensions...),
		},
		Layout: LayoutConfig{
			DateCell: opts.DateCell,
			SkipRows: opts.Layout.SkipRows,
			SkipCols: opts.Layout.SkipCols,
		},
		Exclusion: ExclusionConfig{
			ForbiddenTerms:    opts.Rules.ForbiddenTerms,
			ForbiddenTaxonomy: opts.Rules.ForbiddenTaxonomy,
			ExcludeComma:      opts.Rules.ExcludeComma,
		},
		Output: OutputConfig{
			Format: "json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load builds the configuration. A .env file in the working directory is
// loaded first if present. path may be empty; a named file must exist.
// Environment variables override the file, which overrides the defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile overlays the YAML file onto cfg. Keys absent from the file
// keep their current value.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

// Validate checks field constraints and the date cell reference.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: failed %q check (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}
	if _, _, err := parser.ParseCellRef(c.Layout.DateCell); err != nil {
		return fmt.Errorf("layout.date_cell: %w", err)
	}
	return nil
}

// Options maps the configuration onto pipeline options.
func (c *Config) Options(logger *slog.Logger) resistlong.Options {
	return resistlong.Options{
		DateCell: c.Layout.DateCell,
		Layout: reshape.Layout{
			SkipRows: c.Layout.SkipRows,
			SkipCols: c.Layout.SkipCols,
		},
		Extensions: c.Input.Extensions,
		Rules: exclusion.Rules{
			ForbiddenTerms:    c.Exclusion.ForbiddenTerms,
			ForbiddenTaxonomy: c.Exclusion.ForbiddenTaxonomy,
			ExcludeComma:      c.Exclusion.ExcludeComma,
		},
		Workers: c.Processing.Workers,
		Logger:  logger,
	}
}
