package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the tracker service configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Tracker    TrackerConfig    `yaml:"tracker"`
	Chains     []ChainConfig    `yaml:"chains" validate:"required,min=1,unique=ChainID,dive"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `yaml:"host" default:"0.0.0.0"`
	Port              int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout       time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout      time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout       time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" default:"30s"`
	MiddlewareTimeout time.Duration `yaml:"middleware_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings.
// Persistence of transfer snapshots is skipped when Enabled is false.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host" default:"localhost" validate:"required_if=Enabled true"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"bridge_tracker"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// TrackerConfig contains confirmation tracker settings
type TrackerConfig struct {
	PollInterval   time.Duration `yaml:"poll_interval" default:"1s" validate:"gt=0"`
	PersistTimeout time.Duration `yaml:"persist_timeout" default:"5s" validate:"gt=0"`
	HistoryLimit   int           `yaml:"history_limit" default:"100" validate:"min=1"`
}

// ChainConfig describes one bridged chain
type ChainConfig struct {
	ChainID               int64  `yaml:"chain_id" validate:"required"`
	Name                  string `yaml:"name" validate:"required"`
	RPCURL                string `yaml:"rpc_url" validate:"required,url"`
	GraphURL              string `yaml:"graph_url" validate:"required,url"`
	AMBAddress            string `yaml:"amb_address" validate:"required,eth_addr"`
	BridgeChainID         int64  `yaml:"bridge_chain_id" validate:"required,nefield=ChainID"`
	SignatureCollection   bool   `yaml:"signature_collection"`
	RequiredConfirmations uint64 `yaml:"required_confirmations" default:"8"`
	MonitorURL            string `yaml:"monitor_url" default:"https://alm-xdai.herokuapp.com" validate:"omitempty,url"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Disabled    bool   `yaml:"disabled"`
	MetricsPath string `yaml:"metrics_path" default:"/metrics" validate:"startswith=/"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load loads configuration from a YAML file. Environment variables
// referenced as ${VAR} are expanded before parsing.
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes, defaults and validates a YAML configuration document.
func Parse(raw []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := defaults.Set(&config); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func validate(config *Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return err
	}

	known := make(map[int64]bool, len(config.Chains))
	for _, chain := range config.Chains {
		known[chain.ChainID] = true
	}
	for _, chain := range config.Chains {
		if !known[chain.BridgeChainID] {
			return fmt.Errorf("chains[%d].bridge_chain_id %d is not configured", chain.ChainID, chain.BridgeChainID)
		}
	}
	return nil
}

// Chain returns the configuration of chainID, or nil.
func (c *Config) Chain(chainID int64) *ChainConfig {
	for i := range c.Chains {
		if c.Chains[i].ChainID == chainID {
			return &c.Chains[i]
		}
	}
	return nil
}
