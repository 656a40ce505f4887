package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"config", "log-file", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %s", name)
	}
	for _, name := range []string{"mute", "seed"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestRootCmdParsesFlags(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", "pong.yaml",
		"--log-level", "debug",
		"--mute",
		"--seed", "42",
	}))

	assert.Equal(t, "pong.yaml", configFile)
	assert.Equal(t, "debug", logLevel)
	assert.True(t, muted)
	assert.Equal(t, int64(42), randSeed)
}
