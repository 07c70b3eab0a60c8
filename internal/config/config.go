// Package config holds the runtime configuration of symcrypt and its validation.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"
	"github.com/idelchi/symcrypt/pkg/symmetric"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// Config is populated from flags and SYMCRYPT_* environment variables.
type Config struct {
	// Show prints the configuration and exits
	Show bool

	// Key material, exactly one of the two
	Key     string `mapstructure:"key"      validate:"required_without=KeyFile,exclusive=KeyFile" label:"--key"      mask:"filled"`
	KeyFile string `mapstructure:"key-file" validate:"required_without=Key"                       label:"--key-file"`
	Hex     bool   `mapstructure:"hex"`

	Algorithm string `mapstructure:"algorithm" validate:"oneof=aes xor AES XOR" label:"--algorithm"`
	Parallel  int    `mapstructure:"parallel"  validate:"min=1"                 label:"--parallel"`

	Quiet              bool `mapstructure:"quiet"`
	Delete             bool `mapstructure:"delete"`
	Dry                bool `mapstructure:"dry"`
	Stats              bool `mapstructure:"stats"`
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	Suffixes Suffixes `mapstructure:",squash"`

	// Set by the subcommand, not by flags
	Decrypt bool `mapstructure:"-"`
	Auto    bool `mapstructure:"-"`

	// Positional arguments
	Files []string `mapstructure:"-" validate:"min=1" label:"files"`
}

// Suffixes controls how output file names are derived.
type Suffixes struct {
	Encrypt       string `mapstructure:"encrypt-ext"    validate:"required" label:"--encrypt-ext"`
	DecryptPrefix string `mapstructure:"decrypt-prefix"`
	Decrypt       string `mapstructure:"decrypt-ext"`
}

// Display returns the value of the Show field.
func (c *Config) Display() bool {
	return c.Show
}

// Validate validates config against its struct tags.
// It returns a wrapped ErrUsage if any validation rules are violated.
func (c *Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case errs == nil:
		return nil
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	default:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}
}

// Cipher returns the selected algorithm.
func (c *Config) Cipher() (symmetric.Algorithm, error) {
	return symmetric.ParseAlgorithm(c.Algorithm)
}
