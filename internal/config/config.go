// Package config loads server settings from defaults, an optional yaml
// file, UBIGKAS_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when read from the environment,
// e.g. UBIGKAS_DATA_DIR.
const EnvPrefix = "UBIGKAS"

// Keys understood by Load.
const (
	KeyAddr      = "addr"
	KeyDataDir   = "data_dir"
	KeyThreshold = "confidence_threshold"
	KeyWorkers   = "workers"
	KeyVerbose   = "verbose"
)

// Config is the resolved server configuration. An empty DataDir means
// the tables embedded in the engine.
type Config struct {
	Addr                string  `mapstructure:"addr"`
	DataDir             string  `mapstructure:"data_dir"`
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
	Workers             int     `mapstructure:"workers"`
	Verbose             bool    `mapstructure:"verbose"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyDataDir, "")
	v.SetDefault(KeyThreshold, 0.85)
	v.SetDefault(KeyWorkers, 4)
	v.SetDefault(KeyVerbose, false)
}

// Load resolves the configuration held by v. When cfgFile is set it must
// exist; otherwise ubigkas.yaml is looked up in the working directory and
// silently skipped when absent.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("ubigkas")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is empty")
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("config: confidence_threshold %v outside [0,1]", c.ConfidenceThreshold)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers %d is negative", c.Workers)
	}
	return nil
}
