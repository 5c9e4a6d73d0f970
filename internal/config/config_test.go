package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RELAY_PING_INTERVAL", "")
	t.Setenv("RELAY_WELCOME_MESSAGE", "")
	t.Setenv("RELAY_BROADCAST_ENABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Relay.PingInterval != 54*time.Second {
		t.Fatalf("expected 54s ping interval, got %s", cfg.Relay.PingInterval)
	}
	if cfg.Relay.WelcomeMessage != "connected" {
		t.Fatalf("expected default welcome, got %q", cfg.Relay.WelcomeMessage)
	}
	if !cfg.Relay.BroadcastEnabled {
		t.Fatalf("broadcast should default to enabled")
	}
}

func TestLoadFullAddr(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Fatalf("expected full addr passthrough, got %s", cfg.Server.Addr)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("PORT", "80 80")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid PORT")
	}
}

func TestLoadRelayOverrides(t *testing.T) {
	t.Setenv("RELAY_PING_INTERVAL", "10")
	t.Setenv("RELAY_BROADCAST_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Relay.PingInterval != 10*time.Second {
		t.Fatalf("expected 10s ping interval, got %s", cfg.Relay.PingInterval)
	}
	if cfg.Relay.BroadcastEnabled {
		t.Fatalf("expected broadcast disabled")
	}
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("RELAY_BROADCAST_ENABLED", "maybe")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid bool")
	}
}
