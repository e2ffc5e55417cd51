package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FlagsRegistered(t *testing.T) {
	cmd := New()

	for _, name := range []string{
		"configfile", "logfile", "verbose", "version",
		"ignorewarnings", "confighelp", "dry-run",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s", name)
	}

	// original short spellings preserved
	assert.Equal(t, "c", cmd.Flags().Lookup("configfile").Shorthand)
	assert.Equal(t, "l", cmd.Flags().Lookup("logfile").Shorthand)
	assert.Equal(t, "v", cmd.Flags().Lookup("verbose").Shorthand)
	assert.Equal(t, "V", cmd.Flags().Lookup("version").Shorthand)
}

func TestRun_VersionShortCircuits(t *testing.T) {
	assert.NoError(t, run(Options{Version: true}))
}

func TestRun_ConfigHelpShortCircuits(t *testing.T) {
	assert.NoError(t, run(Options{ConfigHelp: true}))
}

func TestRun_MissingConfigFile(t *testing.T) {
	err := run(Options{IgnoreWarnings: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-c/--configfile")
}

func TestGetenv(t *testing.T) {
	t.Setenv("MULTIARCH_TEST_KEY", "custom")
	assert.Equal(t, "custom", getenv("MULTIARCH_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getenv("MULTIARCH_TEST_KEY_UNSET", "fallback"))
}
