package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sightline-cli/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "sightline", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	for _, name := range []string{"run", "match", "guide", "modes", "settings", "mcp", "version"} {
		assert.Contains(t, commandNames, name)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config", "no-config"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_BuilderReceivesOptions(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	oldBuilder := builder
	defer func() {
		builder = oldBuilder
		configDir = ""
		noConfig = false
	}()

	var got Options
	builder = func(opts Options) (*Services, error) {
		got = opts
		return &Services{}, nil
	}

	_, err := execute("--config", "/tmp/sightline-test", "--no-config", "version")

	require.NoError(t, err)
	assert.Equal(t, Options{ConfigDir: "/tmp/sightline-test", NoConfig: true}, got)
	assert.Nil(t, settingsService)
}

func TestRootCmd_BuilderError(t *testing.T) {
	oldBuilder := builder
	defer func() { builder = oldBuilder }()

	builder = func(Options) (*Services, error) {
		return nil, errors.New("cannot read config")
	}

	_, err := execute("version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialising services")
	assert.Contains(t, err.Error(), "cannot read config")
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	defer func() {
		verbose = false
		logger.SetVerbose(false)
	}()

	_, err := execute("--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestSetServices_Nil(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	SetServices(nil)

	assert.Nil(t, settingsService)
	assert.Nil(t, demoRunner)
	assert.Nil(t, sessionFactory)
}
