package gloss

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/lingweave/interlinear/abbrev"
	"github.com/lingweave/interlinear/token"
)

// Config holds the derived per-run configuration. It is immutable for the
// lifetime of a processing run; re-configuration replaces it wholesale.
type Config struct {
	Pattern                   *token.Pattern
	Abbreviations             abbrev.Table
	AutoTag                   bool
	FirstTierIsOriginal       bool
	LastTierIsFreeTranslation bool
	Spacing                   bool
}

// DefaultConfig returns the configuration used when nothing is supplied:
// the default pattern set, the Leipzig abbreviation table, auto-tagging on,
// and the last tier treated as a free translation.
func DefaultConfig() *Config {
	return &Config{
		Pattern:                   token.Default(),
		Abbreviations:             abbrev.Leipzig(),
		AutoTag:                   true,
		LastTierIsFreeTranslation: true,
		Spacing:                   true,
	}
}

// fileConfig is the YAML shape of a configuration file. Pattern is untyped
// so the file may carry a fragment list or a single fragment string; the
// shape is validated by token.Compile, once, here at the boundary.
type fileConfig struct {
	Pattern                   any               `yaml:"pattern"`
	Abbreviations             map[string]string `yaml:"abbreviations"`
	AutoTag                   *bool             `yaml:"autoTag"`
	FirstTierIsOriginal       *bool             `yaml:"firstTierIsOriginal"`
	LastTierIsFreeTranslation *bool             `yaml:"lastTierIsFreeTranslation"`
	Spacing                   *bool             `yaml:"spacing"`
}

// ParseConfig builds a Config from YAML configuration bytes. Unset keys
// keep their DefaultConfig values; a supplied abbreviation table replaces
// the default, it is not merged into it. Identical bytes always produce an
// identical derived configuration.
func ParseConfig(data []byte) (*Config, error) {
	fc := &fileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := DefaultConfig()
	if fc.Pattern != nil {
		p, err := token.Compile(fc.Pattern)
		if err != nil {
			return nil, err
		}
		cfg.Pattern = p
	}
	if fc.Abbreviations != nil {
		cfg.Abbreviations = abbrev.Table(fc.Abbreviations)
	}
	if fc.AutoTag != nil {
		cfg.AutoTag = *fc.AutoTag
	}
	if fc.FirstTierIsOriginal != nil {
		cfg.FirstTierIsOriginal = *fc.FirstTierIsOriginal
	}
	if fc.LastTierIsFreeTranslation != nil {
		cfg.LastTierIsFreeTranslation = *fc.LastTierIsFreeTranslation
	}
	if fc.Spacing != nil {
		cfg.Spacing = *fc.Spacing
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
