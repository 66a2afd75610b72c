package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/domino14/yahtzee/config"
	"github.com/domino14/yahtzee/dice"
)

var ErrInvalidRules = errors.New("invalid rules")

// Rules are the table settings fixed for a whole game.
type Rules struct {
	NumDice  int `yaml:"num_dice"`
	MaxRolls int `yaml:"max_rolls"`
}

func DefaultRules() Rules {
	return Rules{NumDice: dice.DefaultNumDice, MaxRolls: dice.DefaultMaxRolls}
}

func (r Rules) Validate() error {
	if r.NumDice < 1 {
		return fmt.Errorf("%w: num_dice must be at least 1, got %d", ErrInvalidRules, r.NumDice)
	}
	if r.MaxRolls < 1 {
		return fmt.Errorf("%w: max_rolls must be at least 1, got %d", ErrInvalidRules, r.MaxRolls)
	}
	return nil
}

// LoadRules reads a YAML rules file. Keys missing from the file keep their
// default values.
func LoadRules(path string) (Rules, error) {
	r := DefaultRules()
	bts, err := os.ReadFile(path)
	if err != nil {
		return r, err
	}
	if err := yaml.Unmarshal(bts, &r); err != nil {
		return r, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	return r, r.Validate()
}

// RulesFromConfig prefers a rules file when one is configured, and
// otherwise uses the num-dice and max-rolls settings.
func RulesFromConfig(cfg *config.Config) (Rules, error) {
	if path := cfg.GetString(config.ConfigRulesFile); path != "" {
		return LoadRules(path)
	}
	r := Rules{
		NumDice:  cfg.GetInt(config.ConfigNumDice),
		MaxRolls: cfg.GetInt(config.ConfigMaxRolls),
	}
	return r, r.Validate()
}
