package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)

	dataDir := filepath.Join(home, DefaultDirName)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, "default", cfg.Profile)
	assert.False(t, cfg.Strict)
	assert.Equal(t, StorageDriverTOML, cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(dataDir, "accounts.toml"), cfg.Storage.AccountsPath)
	assert.Equal(t, filepath.Join(dataDir, "timetables.db"), cfg.Storage.SQLitePath)
	assert.Equal(t, filepath.Join(dataDir, "local"), cfg.Local.Root)
	assert.Equal(t, filepath.Join(dataDir, "secrets"), cfg.Secrets.Dir)
	assert.Equal(t, "school-accounts", cfg.Secrets.PassPrefix)
	assert.Equal(t, SecretsBackendChain, cfg.Secrets.Backend)
	assert.Equal(t, filepath.Join(dataDir, "timetables"), cfg.TimetablesDir())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	dataDir := filepath.Join(home, DefaultDirName)
	require.NoError(t, os.MkdirAll(dataDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte(`profile = "lucie"
strict = true

[storage]
driver = "SQLite"

[log]
level = "debug"
format = "json"
`), 0o600))

	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)
	assert.Equal(t, "lucie", cfg.Profile)
	assert.True(t, cfg.Strict)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	dataDir := filepath.Join(home, DefaultDirName)
	require.NoError(t, os.MkdirAll(dataDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte("profile = \"lucie\"\n"), 0o600))

	t.Setenv("SA_PROFILE", "hugo")
	t.Setenv("SA_STORAGE_DRIVER", "sqlite")
	t.Setenv("SA_LOCAL_ROOT", "/srv/exports")

	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)
	assert.Equal(t, "hugo", cfg.Profile)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/srv/exports", cfg.Local.Root)
}

func TestLoadDataDirFromEnvironment(t *testing.T) {
	home := t.TempDir()
	custom := filepath.Join(t.TempDir(), "elsewhere")
	t.Setenv("SA_DATA_DIR", custom)

	cfg, err := Load(nil, home)
	require.NoError(t, err)
	assert.Equal(t, custom, cfg.DataDir)
	assert.Equal(t, filepath.Join(custom, "accounts.toml"), cfg.Storage.AccountsPath)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SA_STORAGE_DRIVER", "postgres")

	_, err := Load(viper.New(), home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage driver")
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	dataDir := filepath.Join(home, DefaultDirName)
	require.NoError(t, os.MkdirAll(dataDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte("profile = \n"), 0o600))

	_, err := Load(viper.New(), home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadRejectsUnknownSecretsBackend(t *testing.T) {
	t.Setenv("SA_SECRETS_BACKEND", "keyring")

	_, err := Load(viper.New(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported secrets backend")
}

func TestLoadFileSecretsBackendFromEnvironment(t *testing.T) {
	t.Setenv("SA_SECRETS_BACKEND", " FILE ")

	cfg, err := Load(viper.New(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, SecretsBackendFile, cfg.Secrets.Backend)
}
