package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	// Config represents an application configuration.
	Config struct {
		// The data source name (DSN) for connecting to the database.
		DSN string `yaml:"dsn" env:"DATABASE_URI"`
		// Subconfigs.
		Session Session `yaml:"session"`
		JWT     JWT     `yaml:"jwt"`
		Logger  Logger  `yaml:"logger"`
		// Cost of the password to hash. Must be greater than 3.
		PasswordHashCost int `yaml:"password_hash_cost" env-default:"14"`
	}
	// Config for the local session marker.
	Session struct {
		// Path of the file remembering the signed in email.
		Path string `yaml:"path" env:"SESSION_PATH" env-default:".pending/session"`
	}
	// Config for application's logger.
	Logger struct {
		// Path to store log files.
		Path string `yaml:"path" env:"LOG_PATH"`
		// Application logging level.
		Level string `yaml:"level" env:"LOG_LEVEL"`
		// Log files details.
		MaxSizeMB  int `yaml:"max_size_mb"`
		MaxBackups int `yaml:"max_backups"`
		MaxAgeDays int `yaml:"max_age_days"`
	}
	// Config for JWT issued by the identity provider.
	JWT struct {
		// JWT signing key.
		SigningKey string `yaml:"signing_key" env:"JWT_SIGNING_KEY"`
		// JWT expiration in hours.
		Expiration time.Duration `yaml:"expiration" env:"JWT_EXPIRATION" env-default:"24h"`
	}
)

// MustLoad returns an application configuration which is populated
// from the given configuration file, environment variables and flags.
func MustLoad() *Config {
	var cfg Config

	// Configuration yaml file path.
	configPath := flag.String("config", "./config/local.yml", "path to the config file")
	dsn := flag.String("d", "", "data source name")
	sessionPath := flag.String("s", "", "path to the session marker file")
	flag.Parse()

	// Load from YAML cfg file when present.
	if _, err := os.Stat(*configPath); err == nil {
		bytes, err := os.Open(*configPath)
		if err != nil {
			log.Fatalf("failed to open config file: %s", *configPath)
		}
		if err = cleanenv.ParseYAML(bytes, &cfg); err != nil {
			log.Fatalf("failed to parse config file: %s", *configPath)
		}
	}

	// Given flags override the file values.
	if *dsn != "" {
		cfg.DSN = *dsn
	}
	if *sessionPath != "" {
		cfg.Session.Path = *sessionPath
	}

	// Read environment variables.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read environment variables: %v", err)
	}

	return &cfg
}
