package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/logging"
	"github.com/bnema/school-accounts-cli/internal/ports"
)

// FeatureResolver answers which concrete account serves a feature of a
// composite account. Bindings are read from the repository on every call.
type FeatureResolver struct {
	accounts ports.AccountRepository
	logger   *slog.Logger
	strict   bool
}

type ResolverOption func(*FeatureResolver)

// WithStrictInvariants makes invariant violations fail with an error instead
// of degrading to an unbound feature.
func WithStrictInvariants(strict bool) ResolverOption {
	return func(r *FeatureResolver) {
		r.strict = strict
	}
}

func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *FeatureResolver) {
		r.logger = logging.Component(logger, "resolver")
	}
}

func NewFeatureResolver(accounts ports.AccountRepository, opts ...ResolverOption) *FeatureResolver {
	resolver := &FeatureResolver{
		accounts: accounts,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(resolver)
	}

	return resolver
}

// Resolve returns the account bound to feature on the composite account
// compositeID. The boolean is false when the feature is not configured, which
// callers treat as an empty result rather than an error.
func (r *FeatureResolver) Resolve(ctx context.Context, compositeID domain.AccountID, feature domain.Feature) (domain.Account, bool, error) {
	composite, err := r.accounts.GetByID(ctx, compositeID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			r.logger.Info("composite account no longer exists",
				slog.String("account", string(compositeID)),
				slog.String("feature", string(feature)),
			)
			return domain.Account{}, false, nil
		}
		return domain.Account{}, false, fmt.Errorf("get composite account: %w", err)
	}

	if !composite.IsComposite() {
		return r.violation(fmt.Sprintf("resolve called for %s account %s", composite.Service, compositeID), feature)
	}

	targetID, ok := composite.Bindings.Target(feature)
	if !ok {
		return domain.Account{}, false, nil
	}

	target, err := r.accounts.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			r.logger.Info("bound account no longer exists",
				slog.String("account", string(compositeID)),
				slog.String("feature", string(feature)),
				slog.String("target", string(targetID)),
			)
			return domain.Account{}, false, nil
		}
		return domain.Account{}, false, fmt.Errorf("get bound account: %w", err)
	}

	if target.IsComposite() || target.LocalID == compositeID {
		return r.violation(fmt.Sprintf("composite account %s binds %s to composite account %s", compositeID, feature, targetID), feature)
	}

	return target, true, nil
}

func (r *FeatureResolver) violation(detail string, feature domain.Feature) (domain.Account, bool, error) {
	if r.strict {
		return domain.Account{}, false, fmt.Errorf("%w: %s", domain.ErrInvariantViolation, detail)
	}

	r.logger.Error("invariant violation, treating feature as unbound",
		slog.String("feature", string(feature)),
		slog.String("detail", detail),
	)
	return domain.Account{}, false, nil
}
