package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	ID          string            `toml:"id"`
	Name        string            `toml:"name"`
	Service     string            `toml:"service"`
	Credentials credentialsSchema `toml:"credentials,omitempty"`
	// Bindings maps a feature name to the local id of the bound account.
	Bindings map[string]string `toml:"bindings,omitempty"`
}

type credentialsSchema struct {
	Instance  string `toml:"instance,omitempty"`
	Username  string `toml:"username,omitempty"`
	SecretRef string `toml:"secret_ref,omitempty"`
}
