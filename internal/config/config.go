// Package config provides run configuration for the skinweights CLI.
//
// Configuration can be loaded from:
//   - Environment variables
//   - YAML configuration file
//   - Programmatic defaults
//
// Environment Variables:
//
//	SKINWEIGHTS_OP                - smooth, smear, harden, add or binarize (default: smooth)
//	SKINWEIGHTS_MESH_ROWS         - grid rows (default: 32)
//	SKINWEIGHTS_MESH_COLS         - grid columns (default: 32)
//	SKINWEIGHTS_MESH_SPACING      - distance between grid vertices (default: 1)
//	SKINWEIGHTS_MESH_GROUPS       - influence groups in the generated gradient (default: 4)
//	SKINWEIGHTS_MESH_JITTER       - random z offset amplitude (default: 0)
//	SKINWEIGHTS_MESH_SEED         - jitter seed (default: 1)
//	SKINWEIGHTS_SMOOTH_FACTOR     - diffusion factor in [0,1] (default: 0.5)
//	SKINWEIGHTS_SMOOTH_ITERATIONS - diffusion passes (default: 1)
//	SKINWEIGHTS_EDIT_GROUP        - active group for smear, harden and add (default: 0)
//	SKINWEIGHTS_EDIT_FACTOR       - edit factor (default: 0.5)
//	SKINWEIGHTS_EDIT_TARGET       - smear target or add offset (default: 1)
//	SKINWEIGHTS_FALLOFF_STEPS     - falloff rings around the selection (default: 2)
//	SKINWEIGHTS_LOG_LEVEL         - debug, info, warn or error (default: info)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SKINWEIGHTS_"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Ops lists the operations accepted in Config.Op.
var Ops = []string{"smooth", "smear", "harden", "add", "binarize"}

// Config controls one CLI run.
//
// Example:
//
//	// Load from environment
//	cfg := config.LoadFromEnv()
//
//	// Or load from YAML file
//	cfg, err := config.LoadConfig("./skinweights.yaml")
//
//	// Or use defaults
//	cfg := config.DefaultConfig()
type Config struct {
	// Op selects the operation to run.
	Op string `yaml:"op"`

	Mesh   MeshConfig   `yaml:"mesh"`
	Smooth SmoothConfig `yaml:"smooth"`
	Edit   EditConfig   `yaml:"edit"`

	// FalloffSteps is the number of rings grown around the selection.
	FalloffSteps int `yaml:"falloff_steps"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// MeshConfig describes the generated grid.
type MeshConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Spacing float64 `yaml:"spacing"`
	Groups  int     `yaml:"groups"`
	Jitter  float64 `yaml:"jitter"`
	Seed    int64   `yaml:"seed"`
}

// SmoothConfig holds diffusion settings.
type SmoothConfig struct {
	Factor     float64 `yaml:"factor"`
	Iterations int     `yaml:"iterations"`
}

// EditConfig holds local edit settings.
type EditConfig struct {
	Group  int     `yaml:"group"`
	Factor float64 `yaml:"factor"`
	Target float64 `yaml:"target"`
}

// DefaultConfig returns a 32×32 grid smoothed once at factor 0.5.
func DefaultConfig() *Config {
	return &Config{
		Op: "smooth",
		Mesh: MeshConfig{
			Rows:    32,
			Cols:    32,
			Spacing: 1,
			Groups:  4,
			Seed:    1,
		},
		Smooth: SmoothConfig{
			Factor:     0.5,
			Iterations: 1,
		},
		Edit: EditConfig{
			Group:  0,
			Factor: 0.5,
			Target: 1,
		},
		FalloffSteps: 2,
		LogLevel:     "info",
	}
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfigOrDefault loads config from file, or returns defaults if the file
// can't be read.
func LoadConfigOrDefault(path string) *Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// LoadFromEnv returns the defaults overridden by SKINWEIGHTS_* variables.
func LoadFromEnv() *Config {
	cfg := DefaultConfig()
	ApplyEnv(cfg)
	return cfg
}

// LoadFromEnvOrFile loads config from file (or defaults), then applies
// environment overrides. Environment variables take precedence.
func LoadFromEnvOrFile(filePath string) *Config {
	cfg := LoadConfigOrDefault(filePath)
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overrides cfg in place with every set and parseable
// SKINWEIGHTS_* variable. Unset or malformed variables leave fields alone.
func ApplyEnv(cfg *Config) {
	if val := getenv("OP"); val != "" {
		cfg.Op = strings.ToLower(val)
	}
	envInt("MESH_ROWS", &cfg.Mesh.Rows)
	envInt("MESH_COLS", &cfg.Mesh.Cols)
	envFloat("MESH_SPACING", &cfg.Mesh.Spacing)
	envInt("MESH_GROUPS", &cfg.Mesh.Groups)
	envFloat("MESH_JITTER", &cfg.Mesh.Jitter)
	if val := getenv("MESH_SEED"); val != "" {
		if seed, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Mesh.Seed = seed
		}
	}
	envFloat("SMOOTH_FACTOR", &cfg.Smooth.Factor)
	envInt("SMOOTH_ITERATIONS", &cfg.Smooth.Iterations)
	envInt("EDIT_GROUP", &cfg.Edit.Group)
	envFloat("EDIT_FACTOR", &cfg.Edit.Factor)
	envFloat("EDIT_TARGET", &cfg.Edit.Target)
	envInt("FALLOFF_STEPS", &cfg.FalloffSteps)
	if val := getenv("LOG_LEVEL"); val != "" {
		cfg.LogLevel = strings.ToLower(val)
	}
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + key))
}

func envInt(key string, dst *int) {
	if val := getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*dst = n
		}
	}
}

func envFloat(key string, dst *float64) {
	if val := getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*dst = f
		}
	}
}

// Validate checks ranges the kernels would otherwise reject mid-run.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid))
		}
	}

	check(isOp(c.Op), "op %q not one of %s", c.Op, strings.Join(Ops, ", "))
	check(c.Mesh.Rows >= 1 && c.Mesh.Cols >= 1, "mesh %dx%d", c.Mesh.Rows, c.Mesh.Cols)
	check(c.Mesh.Spacing > 0, "mesh.spacing %g", c.Mesh.Spacing)
	check(c.Mesh.Groups >= 1, "mesh.groups %d", c.Mesh.Groups)
	check(c.Mesh.Jitter >= 0, "mesh.jitter %g", c.Mesh.Jitter)
	check(c.Smooth.Factor >= 0 && c.Smooth.Factor <= 1, "smooth.factor %g outside [0,1]", c.Smooth.Factor)
	check(c.Smooth.Iterations >= 1, "smooth.iterations %d", c.Smooth.Iterations)
	check(c.Edit.Group >= 0, "edit.group %d", c.Edit.Group)
	check(c.Edit.Factor >= 0, "edit.factor %g", c.Edit.Factor)
	check(c.FalloffSteps >= 0, "falloff_steps %d", c.FalloffSteps)
	_, err := ParseLevel(c.LogLevel)
	check(err == nil, "log_level %q", c.LogLevel)

	return errors.Join(errs...)
}

// SlogLevel returns the configured level, or info when it does not parse.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLevel maps debug, info, warn (or warning) and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, ErrInvalid)
}

func isOp(op string) bool {
	for _, o := range Ops {
		if o == op {
			return true
		}
	}
	return false
}
