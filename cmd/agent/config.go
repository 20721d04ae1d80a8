package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	v1 "ambe.com/fieldops/ambe/v1"
	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/fieldops/store"
)

// AgentConfig is the per-device yaml config. One device serves one site.
type AgentConfig struct {
	BaseURL string `yaml:"baseUrl"`
	Token   string `yaml:"token"`

	Buffer struct {
		Driver string `yaml:"driver"` // json or sqlite
		Path   string `yaml:"path"`
	} `yaml:"buffer"`

	Site struct {
		ID             string  `yaml:"id"`
		Name           string  `yaml:"name"`
		Latitude       float64 `yaml:"latitude"`
		Longitude      float64 `yaml:"longitude"`
		GeofenceRadius float64 `yaml:"geofenceRadius"`
	} `yaml:"site"`

	Supervisor struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"supervisor"`

	DeviceID string `yaml:"deviceId"`

	// GeofenceGate rejects captures outside the site boundary when true.
	GeofenceGate bool `yaml:"geofenceGate"`

	// SyncIntervalSeconds drives the periodic sync in run mode.
	SyncIntervalSeconds int `yaml:"syncIntervalSeconds"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "agent.yaml"
	}
	return filepath.Join(home, ".fieldops", "agent.yaml")
}

func loadAgentConfig(path string) (*AgentConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read agent config: %w", err)
	}

	var cfg AgentConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse agent config: %w", err)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("baseUrl is required")
	}
	if cfg.Site.ID == "" {
		return nil, fmt.Errorf("site.id is required")
	}
	if cfg.Buffer.Path == "" {
		cfg.Buffer.Path = filepath.Join(filepath.Dir(path), "buffer.json")
	}
	if cfg.SyncIntervalSeconds <= 0 {
		cfg.SyncIntervalSeconds = 300
	}

	return &cfg, nil
}

func (c *AgentConfig) site() model.Site {
	return model.Site{
		ID:             c.Site.ID,
		Name:           c.Site.Name,
		Latitude:       c.Site.Latitude,
		Longitude:      c.Site.Longitude,
		GeofenceRadius: c.Site.GeofenceRadius,
	}
}

func (c *AgentConfig) openStore() (*store.RecordStore, error) {
	var storage store.Storage
	switch c.Buffer.Driver {
	case "", "json":
		storage = store.NewJSONFileStorage(c.Buffer.Path)
	case "sqlite":
		s, err := store.NewSQLiteStorage(c.Buffer.Path)
		if err != nil {
			return nil, err
		}
		storage = s
	default:
		return nil, fmt.Errorf("unknown buffer driver %q", c.Buffer.Driver)
	}

	return store.New(storage), nil
}

func (c *AgentConfig) client() *v1.AmbeClient {
	return v1.NewAmbeClient(c.BaseURL, c.Token)
}
