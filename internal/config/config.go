// Package config manages the application configuration file: issuing
// company identity and logo settings, the item catalog, and document
// numbering sequences. The file is plain JSON so users can edit it by hand.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diewo77/go-facture/internal/models"
)

// Config is the on-disk configuration schema.
type Config struct {
	Company   models.Company `json:"company"`
	Items     []models.Item  `json:"items"`
	Sequences map[string]int `json:"sequences,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Company: models.Company{Name: "Ma Société"},
		Items: []models.Item{
			{Key: "service", Label: "Service", UnitPrice: 80},
			{Key: "product", Label: "Produit", UnitPrice: 50},
		},
	}
}

// Manager loads and saves the configuration file at a fixed path.
type Manager struct {
	path string
}

// NewManager returns a manager for the configuration file at path.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// DefaultPath returns the configuration file location: the FACTURE_CONFIG
// environment variable when set, otherwise the user config directory.
func DefaultPath() string {
	if p := os.Getenv("FACTURE_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "facture", "config.json")
}

// EnvOr reads an environment variable with a default.
func EnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load returns the configuration from disk, or Default when the file does
// not exist yet.
func (m *Manager) Load() (*Config, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", m.path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", m.path, err)
	}
	return &cfg, nil
}

// Save persists the configuration to disk, creating parent directories as
// needed.
func (m *Manager) Save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("config: creating directory: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", m.path, err)
	}
	return nil
}

// Company returns the configured issuing company.
func (m *Manager) Company() (models.Company, error) {
	cfg, err := m.Load()
	if err != nil {
		return models.Company{}, err
	}
	return cfg.Company, nil
}

// SetCompany updates the issuing company and saves the configuration.
func (m *Manager) SetCompany(c models.Company) error {
	cfg, err := m.Load()
	if err != nil {
		return err
	}
	cfg.Company = c
	return m.Save(cfg)
}

// ListItems returns the configured item catalog.
func (m *Manager) ListItems() ([]models.Item, error) {
	cfg, err := m.Load()
	if err != nil {
		return nil, err
	}
	return cfg.Items, nil
}

// UpsertItem inserts or updates a catalog item by key.
func (m *Manager) UpsertItem(key, label string, unitPrice float64) error {
	cfg, err := m.Load()
	if err != nil {
		return err
	}
	for i := range cfg.Items {
		if cfg.Items[i].Key == key {
			cfg.Items[i].Label = label
			cfg.Items[i].UnitPrice = unitPrice
			return m.Save(cfg)
		}
	}
	cfg.Items = append(cfg.Items, models.Item{Key: key, Label: label, UnitPrice: unitPrice})
	return m.Save(cfg)
}

// NextNumber increments the numbering sequence for docType and returns the
// formatted document number, e.g. NextNumber("quote", "D-", 4) -> "D-0001".
// The updated sequence is persisted immediately.
func (m *Manager) NextNumber(docType models.DocumentType, prefix string, width int) (string, error) {
	cfg, err := m.Load()
	if err != nil {
		return "", err
	}
	if cfg.Sequences == nil {
		cfg.Sequences = make(map[string]int)
	}
	cfg.Sequences[string(docType)]++
	n := cfg.Sequences[string(docType)]
	if err := m.Save(cfg); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", prefix, width, n), nil
}
