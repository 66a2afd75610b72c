package config

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug           = "debug"
	ConfigNumDice         = "num-dice"
	ConfigMaxRolls        = "max-rolls"
	ConfigRulesFile       = "rules-file"
	ConfigSeed            = "seed"
	ConfigHistoryFile     = "history-file"
	ConfigAutoplayThreads = "autoplay-threads"
	ConfigCPUProfile      = "cpu-profile"
)

const defaultConfigName = "yahtzee"

type Config struct {
	*viper.Viper
	args []string
}

// Load reads settings, lowest precedence first: built-in defaults, a
// yahtzee.yaml config file, YAHTZEE_* environment variables, and finally
// command-line flags. Arguments that are not flags are kept and returned
// by Args.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("yahtzee", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.Int(ConfigNumDice, 5, "number of dice on the table")
	fs.Int(ConfigMaxRolls, 3, "number of rolls allowed per turn")
	fs.String(ConfigRulesFile, "", "YAML file with table rules; overrides num-dice and max-rolls")
	fs.String(ConfigSeed, "", "seed phrase for deterministic dice; empty means truly random")
	fs.String(ConfigHistoryFile, "/tmp/yahtzee_readline.tmp", "readline history file")
	fs.Int(ConfigAutoplayThreads, 4, "number of goroutines used by autoplay")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	// Flags end at the first shell command; its own -options belong to it.
	fs.SetInterspersed(false)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix(defaultConfigName)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName(defaultConfigName)
	c.SetConfigType("yaml")
	c.AddConfigPath(".")
	c.AddConfigPath("$HOME/.config/yahtzee")
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		log.Debug().Msg("no config file found; using defaults")
	}
	return nil
}

// Args returns the non-flag arguments left over from Load.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}

// Write saves the current settings back to the config file in use, or to
// ./yahtzee.yaml if none was read.
func (c *Config) Write() error {
	if c.ConfigFileUsed() != "" {
		return c.WriteConfig()
	}
	return c.WriteConfigAs("./" + defaultConfigName + ".yaml")
}
