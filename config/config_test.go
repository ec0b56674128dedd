package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessConfigLoadDefaults(t *testing.T) {
	var c ProcessConfig
	err := c.Load(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, c.Threads)
	assert.Equal(t, 10, c.MaxHeight)
	assert.Equal(t, "srs", c.RotationSystem)
	assert.Equal(t, "info", c.LogLevel)
}

func TestProcessConfigLoadOverridesFromArgs(t *testing.T) {
	var c ProcessConfig
	err := c.Load([]string{"-threads", "4", "-max-height", "16", "-rotation-system", "srs+", "-log-level", "debug"})
	assert.NoError(t, err)
	assert.Equal(t, 4, c.Threads)
	assert.Equal(t, 16, c.MaxHeight)
	assert.Equal(t, "srs+", c.RotationSystem)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestProcessConfigLoadRejectsUnknownFlag(t *testing.T) {
	var c ProcessConfig
	err := c.Load([]string{"-not-a-real-flag", "1"})
	assert.Error(t, err)
}
