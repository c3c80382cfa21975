package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/pelletier/go-toml/v2"
)

// parseTOML reads and decodes the configuration document at path.
// The result is the raw file layer: zero-valued fields are filled with
// section defaults afterwards, environment overrides have not been applied,
// and nothing has been validated yet.
func parseTOML(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding toml config: %w", err)
	}

	return &cfg, nil
}

// fillSectionDefaults completes a parsed document with the compiled-in
// defaults for every zero-valued field except replication.client_id:
// a supplied document must name its own node id, so that an empty client_id
// without an environment override surfaces as a MissingRequiredFieldError
// instead of being silently defaulted.
func fillSectionDefaults(cfg *Config) error {
	base := Default()
	base.Replication.ClientID = ""

	if err := mergo.Merge(cfg, base); err != nil {
		return fmt.Errorf("error merging config defaults: %w", err)
	}

	return nil
}
