package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "SA"

	DefaultDirName = ".school-accounts"

	StorageDriverTOML   = "toml"
	StorageDriverSQLite = "sqlite"

	SecretsBackendChain = "chain"
	SecretsBackendFile  = "file"
)

type Config struct {
	DataDir string        `mapstructure:"data_dir" envconfig:"DATA_DIR"`
	Profile string        `mapstructure:"profile" envconfig:"PROFILE"`
	Strict  bool          `mapstructure:"strict" envconfig:"STRICT"`
	Storage StorageConfig `mapstructure:"storage" envconfig:"STORAGE"`
	Log     LogConfig     `mapstructure:"log" envconfig:"LOG"`
	Local   LocalConfig   `mapstructure:"local" envconfig:"LOCAL"`
	Secrets SecretsConfig `mapstructure:"secrets" envconfig:"SECRETS"`
}

type StorageConfig struct {
	Driver       string `mapstructure:"driver" envconfig:"DRIVER"`
	AccountsPath string `mapstructure:"accounts_path" envconfig:"ACCOUNTS_PATH"`
	SQLitePath   string `mapstructure:"sqlite_path" envconfig:"SQLITE_PATH"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" envconfig:"LEVEL"`
	Format string `mapstructure:"format" envconfig:"FORMAT"`
}

type LocalConfig struct {
	Root string `mapstructure:"root" envconfig:"ROOT"`
}

type SecretsConfig struct {
	// Backend is "chain" (pass, then files) or "file".
	Backend string `mapstructure:"backend" envconfig:"BACKEND"`
	Dir     string `mapstructure:"dir" envconfig:"DIR"`
	// PassPrefix namespaces entries in the pass password store.
	PassPrefix string `mapstructure:"pass_prefix" envconfig:"PASS_PREFIX"`
}

// Load reads config.toml from the data directory under homeDir, then applies
// SA_* environment overrides. A missing config file is not an error.
func Load(cfg *viper.Viper, homeDir string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dataDir := filepath.Join(homeDir, DefaultDirName)
	if fromEnv := strings.TrimSpace(os.Getenv(envPrefix + "_DATA_DIR")); fromEnv != "" {
		dataDir = fromEnv
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dataDir)
	cfg.SetDefault("data_dir", dataDir)
	cfg.SetDefault("profile", "default")
	cfg.SetDefault("strict", false)
	cfg.SetDefault("storage.driver", StorageDriverTOML)
	cfg.SetDefault("log.level", "warn")
	cfg.SetDefault("log.format", "text")
	cfg.SetDefault("secrets.backend", SecretsBackendChain)
	cfg.SetDefault("secrets.pass_prefix", "school-accounts")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var loaded Config
	if err := cfg.Unmarshal(&loaded); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := envconfig.Process(envPrefix, &loaded); err != nil {
		return Config{}, fmt.Errorf("apply environment overrides: %w", err)
	}

	loaded.applyDefaults()
	if err := loaded.Validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func (c *Config) applyDefaults() {
	if c.Storage.AccountsPath == "" {
		c.Storage.AccountsPath = filepath.Join(c.DataDir, "accounts.toml")
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = filepath.Join(c.DataDir, "timetables.db")
	}
	if c.Local.Root == "" {
		c.Local.Root = filepath.Join(c.DataDir, "local")
	}
	if c.Secrets.Dir == "" {
		c.Secrets.Dir = filepath.Join(c.DataDir, "secrets")
	}
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	c.Secrets.Backend = strings.ToLower(strings.TrimSpace(c.Secrets.Backend))
	if c.Secrets.Backend == "" {
		c.Secrets.Backend = SecretsBackendChain
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data directory is empty")
	}
	switch c.Storage.Driver {
	case StorageDriverTOML, StorageDriverSQLite:
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	switch c.Secrets.Backend {
	case SecretsBackendChain, SecretsBackendFile:
	default:
		return fmt.Errorf("unsupported secrets backend %q", c.Secrets.Backend)
	}

	return nil
}

// TimetablesDir holds one TOML document per profile.
func (c Config) TimetablesDir() string {
	return filepath.Join(c.DataDir, "timetables")
}
