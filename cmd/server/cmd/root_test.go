package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["version"])

	sub := map[string]bool{}
	for _, c := range migrateCmd.Commands() {
		sub[c.Name()] = true
	}
	assert.True(t, sub["up"])
	assert.True(t, sub["down"])
}

func TestMigrateDown_DefaultSteps(t *testing.T) {
	f := migrateDownCmd.Flags().Lookup("steps")
	require.NotNil(t, f)
	assert.Equal(t, "1", f.DefValue)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "Version:    dev")
	assert.Contains(t, out.String(), "Go version:")
}

func TestLoadConfig_LogLevelFlagOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("LOG_LEVEL", "info")
	logLevel = "debug"
	t.Cleanup(func() { logLevel = "" })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
