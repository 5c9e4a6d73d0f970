package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every knob the service reads.
type Config struct {
	Server ServerConfig
	Relay  RelayConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	relay, err := loadRelayConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Relay: relay}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// RelayConfig describes connection-level behavior.
type RelayConfig struct {
	WelcomeMessage   string
	PingInterval     time.Duration
	BroadcastEnabled bool
}

func loadRelayConfig() (RelayConfig, error) {
	interval := 54
	if override, err := parseOptionalIntEnv("RELAY_PING_INTERVAL"); err != nil {
		return RelayConfig{}, err
	} else if override != nil {
		if *override < 1 {
			interval = 1
		} else {
			interval = *override
		}
	}

	broadcast, err := parseBoolEnv("RELAY_BROADCAST_ENABLED", true)
	if err != nil {
		return RelayConfig{}, err
	}

	return RelayConfig{
		WelcomeMessage:   getEnvOrDefault("RELAY_WELCOME_MESSAGE", "connected"),
		PingInterval:     time.Duration(interval) * time.Second,
		BroadcastEnabled: broadcast,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
