package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetBool(ConfigDebug), false)
	is.Equal(c.GetString(ConfigScenarioPath), "./scenarios")
}

func TestLoadArgs(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	rest, err := c.Load([]string{"--queue-policy", "replay", "--debug", "fen"})
	is.NoErr(err)
	is.Equal(rest, []string{"fen"})
	is.Equal(c.GetString(ConfigQueuePolicy), "replay")
	is.True(c.GetBool(ConfigDebug))
}

func TestEnvOverridesDefault(t *testing.T) {
	is := is.New(t)
	t.Setenv("BEES_QUEUE_POLICY", "replay")
	c := &Config{}
	_, err := c.Load(nil)
	is.NoErr(err)
	is.Equal(c.GetString(ConfigQueuePolicy), "replay")
}
