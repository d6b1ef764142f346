// Package config loads typed configuration from environment variables.
//
// Load fills a struct from variables named in its `env` tags using
// github.com/caarlos0/env, after loading an optional ".env" file with
// github.com/joho/godotenv. Each struct type is parsed once and cached, so
// packages can call Load for the same type without re-reading the environment.
//
// # Usage
//
//	type Config struct {
//	    BaseDir string `env:"UPLOAD_BASE_DIR" envDefault:"./content"`
//	    MaxSize int64  `env:"UPLOAD_MAX_SIZE" envDefault:"10485760"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg, config.WithPrefix("INTAKE_"))
//
// # Error Handling
//
// Parsing failures wrap ErrParsingConfig, unreadable explicit env files wrap
// ErrLoadingEnvFile; use errors.Is to tell them apart.
package config
