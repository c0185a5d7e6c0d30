package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LumberjackConfig configures the rotating log file.
type LumberjackConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"maxSize"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAge"`
	Compress   bool   `mapstructure:"compress"`
}

type LoggingConfig struct {
	Level  string           `mapstructure:"level"`
	Format string           `mapstructure:"format"`
	File   LumberjackConfig `mapstructure:"file"`
}

// ClientConfig mirrors simconnect.Config.
type ClientConfig struct {
	Name        string `mapstructure:"name"`
	DLLPath     string `mapstructure:"dllPath"`
	SDKRoot     string `mapstructure:"sdkRoot"`
	ConfigIndex uint32 `mapstructure:"configIndex"`
}

// ProbeConfig controls what the probe asks the simulator.
type ProbeConfig struct {
	States      []string      `mapstructure:"states"`
	MaxMessages int           `mapstructure:"maxMessages"`
	Poll        time.Duration `mapstructure:"poll"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	Probe   ProbeConfig   `mapstructure:"probe"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoadConfig reads path, or ./simconnect-probe.yaml when path is empty, and
// applies SIMCONNECT_ environment overrides. A missing default file is not
// an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("simconnect-probe")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.SetEnvPrefix("SIMCONNECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Probe.MaxMessages <= 0 {
		return nil, fmt.Errorf("probe.maxMessages must be positive, got %d", cfg.Probe.MaxMessages)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client.name", "simconnect-probe")
	v.SetDefault("client.dllPath", "")
	v.SetDefault("client.sdkRoot", "")
	v.SetDefault("client.configIndex", 0)

	v.SetDefault("probe.states", []string{"AircraftLoaded", "FlightLoaded", "FlightPlan", "Sim", "DialogMode"})
	v.SetDefault("probe.maxMessages", 16)
	v.SetDefault("probe.poll", "50ms")
	v.SetDefault("probe.timeout", "5s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.filename", "logs/simconnect-probe.log")
	v.SetDefault("logging.file.maxSize", 10)
	v.SetDefault("logging.file.maxBackups", 3)
	v.SetDefault("logging.file.maxAge", 7)
	v.SetDefault("logging.file.compress", false)
}
