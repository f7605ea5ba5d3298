package config_test

import (
	"strings"
	"testing"

	"github.com/minseon9/readtrack/internal/config"
)

func TestEffectiveHeading_Custom(t *testing.T) {
	cfg := &config.Config{History: config.HistoryConfig{Heading: "## Log"}}
	if got := cfg.EffectiveHeading(); got != "## Log" {
		t.Errorf("EffectiveHeading = %q", got)
	}
}

func TestEffectiveHeading_Default(t *testing.T) {
	cfg := &config.Config{}
	if got := cfg.EffectiveHeading(); got != "## Reading History" {
		t.Errorf("EffectiveHeading = %q", got)
	}
}

func TestEffectiveDefaultStatus(t *testing.T) {
	cfg := &config.Config{}
	if got := cfg.EffectiveDefaultStatus(); got != "unread" {
		t.Errorf("EffectiveDefaultStatus = %q", got)
	}
	cfg.Vault.DefaultStatus = "reading"
	if got := cfg.EffectiveDefaultStatus(); got != "reading" {
		t.Errorf("EffectiveDefaultStatus = %q", got)
	}
}

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, "config.yml") {
		t.Errorf("DefaultPath = %q, should end with config.yml", p)
	}
}

func TestExpandHome(t *testing.T) {
	if got := config.ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := config.ExpandHome("~/vault"); strings.HasPrefix(got, "~") {
		t.Errorf("ExpandHome left tilde: %q", got)
	}
}
