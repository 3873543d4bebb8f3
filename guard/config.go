package guard

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Policy modes accepted in configuration.
const (
	ModeAll      = "all"
	ModeExplicit = "explicit"
)

// PolicyConfig is the declarative form of a Policy, suitable for loading
// from YAML or environment configuration (see the config package).
type PolicyConfig struct {
	// Mode selects the policy mode: "all" (raise-all) or "explicit".
	// Defaults to "all".
	Mode string `yaml:"mode" mapstructure:"mode" validate:"omitempty,oneof=all explicit"`
	// Codes is the status code set: suppression exceptions under "all",
	// the raise list under "explicit".
	Codes []int `yaml:"codes" mapstructure:"codes" validate:"dive,gt=0"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ApplyDefaults fills in zero-value fields with safe defaults.
func (c *PolicyConfig) ApplyDefaults() {
	if c.Mode == "" {
		c.Mode = ModeAll
	}
}

// Validate checks that the configuration is valid.
func (c *PolicyConfig) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("guard: invalid policy config: %w", err)
	}
	return nil
}

// Build converts the configuration into an immutable Policy.
func (c *PolicyConfig) Build() (Policy, error) {
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return Policy{}, err
	}
	switch c.Mode {
	case ModeAll:
		return RaiseAllExcept(c.Codes...), nil
	case ModeExplicit:
		return RaiseOnly(c.Codes...), nil
	default:
		return Policy{}, fmt.Errorf("guard: unknown policy mode %q", c.Mode)
	}
}
