package domain

import (
	"fmt"
	"strings"
)

type AccountID string

type Account struct {
	LocalID     AccountID
	Name        string
	Service     Service
	Credentials Credentials
	Bindings    FeatureBindings
}

func (a Account) IsComposite() bool {
	return a.Service.IsComposite()
}

func (a Account) Validate() error {
	if strings.TrimSpace(string(a.LocalID)) == "" {
		return fmt.Errorf("local id is required")
	}
	if !a.Service.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownService, a.Service)
	}
	if len(a.Bindings) > 0 && !a.IsComposite() {
		return fmt.Errorf("%w: %s account %s cannot carry feature bindings", ErrInvalidBinding, a.Service, a.LocalID)
	}
	for feature := range a.Bindings {
		if !feature.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownFeature, feature)
		}
	}

	return nil
}

// DisplayName falls back to the local id when the account has no name.
func (a Account) DisplayName() string {
	if trimmed := strings.TrimSpace(a.Name); trimmed != "" {
		return trimmed
	}
	return string(a.LocalID)
}
