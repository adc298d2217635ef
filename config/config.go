package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug        = "debug"
	ConfigQueuePolicy  = "queue-policy"
	ConfigHistoryFile  = "history-file"
	ConfigScenarioPath = "scenario-path"
	ConfigLogJSON      = "log-json"
)

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with the defaults and whatever BEES_*
// environment variables are set, without parsing any arguments.
func DefaultConfig() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.Viper = viper.New()
	c.SetEnvPrefix("bees")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigQueuePolicy, "prune")
	c.SetDefault(ConfigHistoryFile, "/tmp/bees_history.tmp")
	c.SetDefault(ConfigScenarioPath, "./scenarios")
	c.SetDefault(ConfigLogJSON, false)
}

// Load reads defaults, the environment and then the given command-line
// arguments, in increasing order of precedence. Positional arguments are
// returned for the caller.
func (c *Config) Load(args []string) ([]string, error) {
	c.setDefaults()

	fs := pflag.NewFlagSet("bees", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.String(ConfigQueuePolicy, "prune", "what happens to executed moves: prune or replay")
	fs.String(ConfigHistoryFile, "/tmp/bees_history.tmp", "readline history file")
	fs.String(ConfigScenarioPath, "./scenarios", "directory searched for relative scenario paths")
	fs.Bool(ConfigLogJSON, false, "log JSON instead of console output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.BindPFlags(fs); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// SanitizedSettings is every setting, for logging at startup.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
