package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/minseon9/readtrack/internal/journal"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "readtrack", "config.yml")
}

// Load reads the config from disk (or env). A missing config file is not
// an error — the init command creates it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("vault.dir", defaultVaultDir())
	v.SetDefault("vault.default_status", "unread")
	v.SetDefault("history.heading", "## Reading History")
	v.SetDefault("journal.path", journal.DefaultPath())

	v.SetEnvPrefix("READTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("READTRACK_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Vault.Dir = ExpandHome(cfg.Vault.Dir)
	cfg.Journal.Path = ExpandHome(cfg.Journal.Path)

	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(map[string]any{
		"vault": map[string]any{
			"dir":            cfg.Vault.Dir,
			"default_status": cfg.Vault.DefaultStatus,
		},
		"history": map[string]any{
			"heading": cfg.History.Heading,
		},
		"journal": map[string]any{
			"path":     cfg.Journal.Path,
			"disabled": cfg.Journal.Disabled,
		},
	})
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultVaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "vault")
}
