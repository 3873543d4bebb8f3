package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/httpguard/guard"
	"github.com/kbukum/httpguard/httpclient"
	"github.com/kbukum/httpguard/logger"
)

// GuardConfig is the top-level configuration for applications embedding
// httpguard.
type GuardConfig struct {
	Policy guard.PolicyConfig `yaml:"policy" mapstructure:"policy"`
	Logger logger.Config      `yaml:"logger" mapstructure:"logger"`
	Client httpclient.Config  `yaml:"client" mapstructure:"client"`
}

// ApplyDefaults fills in zero-value fields across all sections.
func (c *GuardConfig) ApplyDefaults() {
	c.Policy.ApplyDefaults()
	c.Logger.ApplyDefaults()
	c.Client.ApplyDefaults()
}

// Validate checks all sections.
func (c *GuardConfig) Validate() error {
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Client.Validate()
}

// Option configures the loader.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile string
	envKeys []string
}

// WithEnvFile sets an explicit .env file path loaded before binding
// environment variables.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) { o.envFile = path }
}

// WithEnvBindings registers config keys resolvable from the environment,
// e.g. "policy.mode" from POLICY_MODE. Unlisted environment variables are
// ignored.
func WithEnvBindings(keys ...string) Option {
	return func(o *loaderOptions) { o.envKeys = append(o.envKeys, keys...) }
}

// Load reads the YAML file at path (optional, may be empty), binds
// environment variables on top, and unmarshals into cfg.
func Load(path string, cfg any, opts ...Option) error {
	var lo loaderOptions
	for _, opt := range opts {
		opt(&lo)
	}

	if lo.envFile != "" {
		if err := godotenv.Load(lo.envFile); err != nil {
			return fmt.Errorf("config: load env file %s: %w", lo.envFile, err)
		}
	}

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range lo.envKeys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("config: bind env %s: %w", key, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}

	return nil
}

// guardEnvKeys are the scalar GuardConfig keys resolvable from the
// environment. List and map values stay file-only.
var guardEnvKeys = []string{
	"policy.mode",
	"logger.level",
	"logger.format",
	"logger.output",
	"logger.no_color",
	"logger.timestamp",
	"logger.caller",
	"client.base_url",
	"client.timeout",
}

// LoadGuardConfig loads, defaults, and validates a GuardConfig.
func LoadGuardConfig(path string, opts ...Option) (*GuardConfig, error) {
	var cfg GuardConfig
	opts = append(opts, WithEnvBindings(guardEnvKeys...))
	if err := Load(path, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
