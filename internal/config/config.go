package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Blog   BlogConfig   `toml:"blog"`
	Site   SiteConfig   `toml:"site"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

// BlogConfig holds blog presentation settings.
type BlogConfig struct {
	PostsPerPage int `toml:"posts_per_page"`
}

// SiteConfig holds the site identity used for SEO emission (sitemap,
// robots.txt, meta descriptions).
type SiteConfig struct {
	Title       string `toml:"title"`
	BaseURL     string `toml:"base_url"`
	Description string `toml:"description"`
}

const defaultConfigContent = `[server]
port = 8080

[blog]
posts_per_page = 6

[site]
title = "FitFlow"
base_url = "https://fitflow.example.com"
description = "Your ultimate fitness companion with expert workout tips, nutrition advice, and motivation."
`

// Load reads and parses the TOML config from the given path. If the file
// does not exist, it creates a default config file at that path. Environment
// variables override values from the file with highest priority.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Validate explicitly-set values before applying defaults, so that
	// explicitly writing "port = 0" is an error rather than silently
	// being replaced with the default.
	if err := validateExplicit(&cfg, md); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// createDefault writes the default config content to the given path,
// creating any parent directories as needed.
func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// validateExplicit checks values that were explicitly set in the TOML file.
// This catches cases like "posts_per_page = 0" which would otherwise be
// silently replaced by the default value.
func validateExplicit(cfg *Config, md toml.MetaData) error {
	if md.IsDefined("server", "port") {
		if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
			return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
		}
	}
	if md.IsDefined("blog", "posts_per_page") {
		if cfg.Blog.PostsPerPage < 1 {
			return fmt.Errorf("invalid blog.posts_per_page %d: must be >= 1", cfg.Blog.PostsPerPage)
		}
	}
	return nil
}

// applyDefaults sets default values for any zero-valued fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Blog.PostsPerPage == 0 {
		cfg.Blog.PostsPerPage = 6
	}
	if cfg.Site.Title == "" {
		cfg.Site.Title = "FitFlow"
	}
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = "https://fitflow.example.com"
	}
}

// applyEnvOverrides applies environment variable overrides. Environment
// variables take highest priority over config file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITFLOW_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FITFLOW_BASE_URL"); v != "" {
		cfg.Site.BaseURL = v
	}
}

// validate checks that configuration values are within acceptable ranges.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
	}
	if cfg.Blog.PostsPerPage < 1 {
		return fmt.Errorf("invalid blog.posts_per_page %d: must be >= 1", cfg.Blog.PostsPerPage)
	}
	return nil
}
