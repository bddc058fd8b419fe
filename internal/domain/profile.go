package domain

import (
	"fmt"
	"strings"
)

type ProfileID string

const DefaultProfileID ProfileID = "default"

func (p ProfileID) Validate() error {
	trimmed := strings.TrimSpace(string(p))
	if trimmed == "" {
		return fmt.Errorf("%w: profile id is empty", ErrInvalidProfile)
	}
	if strings.ContainsAny(trimmed, `/\`) || strings.HasPrefix(trimmed, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidProfile, p)
	}
	return nil
}
