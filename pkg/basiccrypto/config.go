package basiccrypto

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/logging"
)

// Witness modes accepted by Config.Witness.
const (
	WitnessFull      = "full"
	WitnessFirstStep = "first-step"
)

// Config carries the knobs that the reference implementation kept as
// implicit conventions. Callers thread it explicitly; nothing reads it from
// global state.
type Config struct {
	// BlockSize is the number of bytes per block. Block ciphers work modulo
	// 256^BlockSize.
	BlockSize int `yaml:"block_size"`

	// Rounds is the number of Miller-Rabin rounds. Zero selects the
	// primality package default.
	Rounds int `yaml:"rounds"`

	// Witness picks the witness test used by probabilistic primality checks:
	// "full" for the complete squaring ladder or "first-step" for the
	// single-step check.
	Witness string `yaml:"witness"`

	// Modulus is the exponentiation cipher modulus, either a decimal integer
	// or a preset name understood by the moduli package. Empty means "the
	// first prime above 256^BlockSize".
	Modulus string `yaml:"modulus"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	return Config{
		BlockSize: 1,
		Witness:   WitnessFull,
		LogLevel:  "info",
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	absPath, err := SecurePath(path)
	if err != nil {
		return nil, fmt.Errorf("secure path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by SecurePath
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate performs sanity checks on the configuration. It does not resolve
// Modulus; that happens where the moduli presets are available.
func (c Config) Validate() error {
	if c.BlockSize < 1 {
		return NewError("Config.Validate", ErrInvalidParameter, "block_size must be at least 1, got %d", c.BlockSize)
	}
	if c.Rounds < 0 {
		return NewError("Config.Validate", ErrInvalidParameter, "rounds must not be negative, got %d", c.Rounds)
	}
	switch c.Witness {
	case "", WitnessFull, WitnessFirstStep:
	default:
		return NewError("Config.Validate", ErrInvalidParameter, "unknown witness %q", c.Witness)
	}
	if c.LogLevel != "" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			return NewError("Config.Validate", ErrInvalidParameter, "log_level: %v", err)
		}
	}
	return nil
}

// SecurePath validates that a file path doesn't escape the working directory.
func SecurePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}
