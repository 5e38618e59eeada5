package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the limits server. ListenAddr is the HTTP
// listen address, RateLimitRPS/RateLimitBurst bound each client's
// request budget (0 RPS disables limiting), and ShutdownTimeout caps
// graceful shutdown.
type Config struct {
	ListenAddr      string        `yaml:"listen_addr"`
	LogLevel        string        `yaml:"log_level"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func defaultConfig() *Config {
	return &Config{
		ListenAddr:      ":8080",
		LogLevel:        "info",
		RateLimitRPS:    0,
		RateLimitBurst:  20,
		ShutdownTimeout: 10 * time.Second,
	}
}

// parseConfig resolves configuration as defaults, then the optional
// YAML file, then explicitly set flags.
func parseConfig(args []string) (*Config, error) {
	config := defaultConfig()

	fs := flag.NewFlagSet("ebs-limits-server", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to optional YAML config file")
	fs.StringVar(&config.ListenAddr, "listen", config.ListenAddr, "Address to listen on")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level (debug, info, warn, error)")
	fs.Float64Var(&config.RateLimitRPS, "rate-limit-rps", config.RateLimitRPS, "Per-client requests per second (0 disables)")
	fs.IntVar(&config.RateLimitBurst, "rate-limit-burst", config.RateLimitBurst, "Per-client burst size")
	fs.DurationVar(&config.ShutdownTimeout, "shutdown-timeout", config.ShutdownTimeout, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath != "" {
		fileConfig := defaultConfig()
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		*config = *fileConfig

		// Flags set on the command line win over the file.
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "listen":
				config.ListenAddr = f.Value.String()
			case "log-level":
				config.LogLevel = f.Value.String()
			case "rate-limit-rps":
				config.RateLimitRPS = f.Value.(flag.Getter).Get().(float64)
			case "rate-limit-burst":
				config.RateLimitBurst = f.Value.(flag.Getter).Get().(int)
			case "shutdown-timeout":
				config.ShutdownTimeout = f.Value.(flag.Getter).Get().(time.Duration)
			}
		})
	}

	if config.RateLimitRPS < 0 {
		return nil, fmt.Errorf("rate-limit-rps must not be negative")
	}
	if config.RateLimitBurst < 1 {
		return nil, fmt.Errorf("rate-limit-burst must be at least 1")
	}

	return config, nil
}
