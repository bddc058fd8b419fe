package application

import (
	"github.com/bnema/school-accounts-cli/internal/domain"
)

type BindingStatus struct {
	Feature  domain.Feature
	TargetID domain.AccountID
	// Target is nil when the bound account no longer exists.
	Target *domain.Account
}

type AccountStatus struct {
	Account       domain.Account
	HasCredential bool
	Bindings      []BindingStatus
}
