package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "VBET"

type Config struct {
	BaseURL      string        `mapstructure:"base_url"`
	WaitTimeout  time.Duration `mapstructure:"wait_timeout"`
	Settle       time.Duration `mapstructure:"settle"`
	Headless     bool          `mapstructure:"headless"`
	UserAgent    string        `mapstructure:"user_agent"`
	WindowWidth  int           `mapstructure:"window_width"`
	WindowHeight int           `mapstructure:"window_height"`
	LogLevel     string        `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "https://sportsbetting.dog/picks")
	v.SetDefault("wait_timeout", 20*time.Second)
	v.SetDefault("settle", 2*time.Second)
	v.SetDefault("headless", true)
	v.SetDefault("user_agent", "")
	v.SetDefault("window_width", 1920)
	v.SetDefault("window_height", 1080)
	v.SetDefault("log_level", "info")
}

// Load builds the configuration from defaults, an optional config file and
// VBET_* environment variables (a .env file in the working directory is
// read first, if present). Later sources win.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.BaseURL) == "" {
		errs = append(errs, errors.New("base_url is empty"))
	}
	if c.WaitTimeout <= 0 {
		errs = append(errs, fmt.Errorf("wait_timeout must be positive, got %s", c.WaitTimeout))
	}
	if c.Settle < 0 {
		errs = append(errs, fmt.Errorf("settle must not be negative, got %s", c.Settle))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}
