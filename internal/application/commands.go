package application

import (
	"github.com/bnema/school-accounts-cli/internal/domain"
)

type AddAccountCommand struct {
	// LocalID is generated when empty.
	LocalID     domain.AccountID
	Name        string
	Service     domain.Service
	Credentials domain.Credentials
}

type SetCredentialsCommand struct {
	ID          domain.AccountID
	Instance    string
	Username    string
	SecretKey   string
	SecretValue string
}

type BindFeatureCommand struct {
	CompositeID domain.AccountID
	Feature     domain.Feature
	TargetID    domain.AccountID
}
