package config

import (
	"strings"
	"testing"
)

func setGatewayEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENVIRONMENT", "sandbox")
	t.Setenv("MERCHANT_ID", "merchant-1")
	t.Setenv("PUBLIC_KEY", "pub")
	t.Setenv("PRIVATE_KEY", "priv")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setGatewayEnv(t)
		t.Setenv("PORT", "")
		t.Setenv("INVENTORY_FILE", "")
		t.Setenv("FUNDRAISERS_FILE", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Port != "7777" {
			t.Fatalf("expected default port, got %s", cfg.Port)
		}
		if cfg.InventoryFile != "inventory.json" {
			t.Fatalf("expected default inventory file, got %s", cfg.InventoryFile)
		}
		if cfg.FundraisersFile != "fundraising_goals.json" {
			t.Fatalf("expected default fundraisers file, got %s", cfg.FundraisersFile)
		}
	})

	t.Run("missing credentials fail", func(t *testing.T) {
		setGatewayEnv(t)
		t.Setenv("PRIVATE_KEY", "")

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "PRIVATE_KEY") {
			t.Fatalf("expected PRIVATE_KEY error, got %v", err)
		}
	})

	t.Run("cors origins parse as csv", func(t *testing.T) {
		setGatewayEnv(t)
		t.Setenv("CORS_ORIGINS", "https://store.sbhackerspace.com, https://donate.sbhackerspace.com ,")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(cfg.CORSOrigins) != 2 {
			t.Fatalf("expected 2 origins, got %v", cfg.CORSOrigins)
		}
		if cfg.CORSOrigins[1] != "https://donate.sbhackerspace.com" {
			t.Fatalf("unexpected origin %q", cfg.CORSOrigins[1])
		}
	})
}
