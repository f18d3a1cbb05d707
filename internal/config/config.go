// Package config loads lvtour settings from YAML.
//
// Precedence is defaults < config file < explicitly set command-line flags;
// the last step is applied by the command layer.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a file cannot be parsed or a field is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Solve    SolveConfig   `yaml:"solve"`
	Input    InputConfig   `yaml:"input"`
	Output   OutputConfig  `yaml:"output"`
	Log      LogConfig     `yaml:"log"`
	Metrics  MetricsConfig `yaml:"metrics"`
	Progress bool          `yaml:"progress"`
}

// SolveConfig mirrors the search budget of tsp.Options.
type SolveConfig struct {
	TimeLimit    time.Duration `yaml:"time_limit" validate:"gte=0s"`    // 0 disables the time guard
	MaxNoImprove int           `yaml:"max_no_improve" validate:"gte=1"` // stagnation limit
	Seed         int64         `yaml:"seed"`                            // 0 = derive from the clock
	Eps          float64       `yaml:"eps" validate:"gte=0"`
}

// InputConfig controls graph loading.
type InputConfig struct {
	RequireComplete bool `yaml:"require_complete"`
}

// OutputConfig controls where solutions are written.
type OutputConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig enables the prometheus textfile export when File is set.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solve: SolveConfig{
			TimeLimit:    60 * time.Second,
			MaxNoImprove: 1000,
		},
		Output: OutputConfig{Dir: "."},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default and validates the result.
// An empty file yields the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks field ranges.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s=%s, got %v", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", field, fe.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
