package config

import "github.com/minseon9/readtrack/internal/history"

// Config is the top-level readtrack configuration.
type Config struct {
	Vault   VaultConfig   `mapstructure:"vault"`
	History HistoryConfig `mapstructure:"history"`
	Journal JournalConfig `mapstructure:"journal"`
}

// VaultConfig locates the document vault.
type VaultConfig struct {
	Dir string `mapstructure:"dir"`

	// DefaultStatus is assigned to documents that carry no status field.
	DefaultStatus string `mapstructure:"default_status"`
}

// HistoryConfig tunes the reading-history section.
type HistoryConfig struct {
	Heading string `mapstructure:"heading"`
}

// JournalConfig controls the vault-wide session journal.
type JournalConfig struct {
	Path     string `mapstructure:"path"`
	Disabled bool   `mapstructure:"disabled"`
}

// EffectiveHeading returns the configured section heading or the built-in
// default.
func (c *Config) EffectiveHeading() string {
	if c.History.Heading != "" {
		return c.History.Heading
	}
	return history.DefaultHeading
}

// EffectiveDefaultStatus returns the configured default status, falling
// back to "unread".
func (c *Config) EffectiveDefaultStatus() string {
	if c.Vault.DefaultStatus != "" {
		return c.Vault.DefaultStatus
	}
	return "unread"
}
