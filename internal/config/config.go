// Package config loads table configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is everything supplied at new-game time.
type Config struct {
	Rules Rules `yaml:"rules"`
	Table Table `yaml:"table"`
}

// Rules holds the recognized rule toggles. Only the first three affect the
// engine; the rest are presentation toggles passed through untouched.
type Rules struct {
	StickTheDealer   bool `yaml:"stick_the_dealer"`
	NineOfHearts     bool `yaml:"nine_of_hearts"`
	SuperEuchre      bool `yaml:"super_euchre"`
	QuietDealer      bool `yaml:"quiet_dealer"`
	PeekAtOtherCards bool `yaml:"peek_at_other_cards"`
	SoundOn          bool `yaml:"sound_on"`
}

// Table holds display names and the AI personality per computer seat.
// Valid personalities: "conservative", "normal", "crazy".
type Table struct {
	PlayerName        string `yaml:"player_name"`
	PartnerName       string `yaml:"partner_name"`
	LeftOpponentName  string `yaml:"left_opponent_name"`
	RightOpponentName string `yaml:"right_opponent_name"`

	PartnerPersonality       string `yaml:"partner_personality"`
	LeftOpponentPersonality  string `yaml:"left_opponent_personality"`
	RightOpponentPersonality string `yaml:"right_opponent_personality"`
}

// Load loads the configuration file, filling in defaults for absent fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := base()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// base holds the pre-unmarshal state: only the toggles whose zero value is
// not the default. Names are filled by applyDefaults afterwards, so a file
// that sets player_name still gets a derived partner name.
func base() *Config {
	return &Config{
		Rules: Rules{
			SoundOn: true,
		},
	}
}

// Default returns the fully-defaulted configuration used when no file is
// given.
func Default() *Config {
	cfg := base()
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Table.PlayerName == "" {
		c.Table.PlayerName = "Player"
	}
	if c.Table.PartnerName == "" {
		c.Table.PartnerName = fmt.Sprintf("%s's partner", c.Table.PlayerName)
	}
	if c.Table.LeftOpponentName == "" {
		c.Table.LeftOpponentName = "Lefty"
	}
	if c.Table.RightOpponentName == "" {
		c.Table.RightOpponentName = "Righty"
	}
	if c.Table.PartnerPersonality == "" {
		c.Table.PartnerPersonality = "normal"
	}
	if c.Table.LeftOpponentPersonality == "" {
		c.Table.LeftOpponentPersonality = "normal"
	}
	if c.Table.RightOpponentPersonality == "" {
		c.Table.RightOpponentPersonality = "normal"
	}
}

func (c *Config) validate() error {
	for _, p := range []string{
		c.Table.PartnerPersonality,
		c.Table.LeftOpponentPersonality,
		c.Table.RightOpponentPersonality,
	} {
		switch p {
		case "conservative", "normal", "crazy":
		default:
			return fmt.Errorf("unknown personality %q", p)
		}
	}
	return nil
}
