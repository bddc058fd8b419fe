package application

import (
	"context"
	"log/slog"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/logging"
)

// Router dispatches feature calls to the provider of the account's service.
// Composite accounts are resolved to their bound account first; unbound
// features and unsupported service/feature pairs yield empty results.
// Provider errors are returned unchanged.
type Router struct {
	resolver *FeatureResolver
	backends Backends
	logger   *slog.Logger
}

func NewRouter(resolver *FeatureResolver, backends Backends, logger *slog.Logger) *Router {
	return &Router{
		resolver: resolver,
		backends: backends,
		logger:   logging.Component(logger, "router"),
	}
}

// Target returns the account that actually serves feature for account. The
// boolean is false when nothing is bound, or when the serving account's
// backend has no provider for feature, so callers never mistake a silent
// empty answer for real data.
func (r *Router) Target(ctx context.Context, account domain.Account, feature domain.Feature) (domain.Account, bool, error) {
	target, ok, err := r.resolveTarget(ctx, account, feature)
	if err != nil || !ok {
		return domain.Account{}, false, err
	}

	backend, _ := r.backends.For(target.Service)
	if !backend.Provides(feature) {
		r.logger.Info("feature not provided by service",
			slog.String("feature", string(feature)),
			slog.String("service", string(target.Service)),
			slog.String("account", string(target.LocalID)),
		)
		return domain.Account{}, false, nil
	}

	return target, true, nil
}

// resolveTarget follows a composite binding and checks the serving kind has a
// dispatch entry. Provider presence is left to the caller.
func (r *Router) resolveTarget(ctx context.Context, account domain.Account, feature domain.Feature) (domain.Account, bool, error) {
	if !account.IsComposite() {
		if _, ok := r.backends.For(account.Service); !ok {
			r.logger.Info("service not implemented, returning empty",
				slog.String("feature", string(feature)),
				slog.String("service", string(account.Service)),
				slog.String("account", string(account.LocalID)),
			)
			return domain.Account{}, false, nil
		}
		return account, true, nil
	}

	resolved, ok, err := r.resolver.Resolve(ctx, account.LocalID, feature)
	if err != nil {
		return domain.Account{}, false, err
	}
	if !ok {
		r.logger.Info("no backend configured for this feature on this account",
			slog.String("feature", string(feature)),
			slog.String("service", string(account.Service)),
			slog.String("account", string(account.LocalID)),
		)
		return domain.Account{}, false, nil
	}

	if _, supported := r.backends.For(resolved.Service); !supported {
		r.logger.Info("service not implemented, returning empty",
			slog.String("feature", string(feature)),
			slog.String("service", string(resolved.Service)),
			slog.String("account", string(resolved.LocalID)),
		)
		return domain.Account{}, false, nil
	}

	return resolved, true, nil
}

func (r *Router) ListChats(ctx context.Context, account domain.Account) ([]domain.Chat, error) {
	return route(ctx, r, account, domain.FeatureChats, "ListChats", []domain.Chat{},
		func(backend Backend, target domain.Account) ([]domain.Chat, bool, error) {
			if backend.Chats == nil {
				return nil, false, nil
			}
			chats, err := backend.Chats.ListChats(ctx, target)
			return chats, true, err
		})
}

func (r *Router) ListChatRecipients(ctx context.Context, account domain.Account, chat domain.Chat) ([]domain.ChatRecipient, error) {
	return route(ctx, r, account, domain.FeatureChats, "ListChatRecipients", []domain.ChatRecipient{},
		func(backend Backend, target domain.Account) ([]domain.ChatRecipient, bool, error) {
			if backend.Chats == nil {
				return nil, false, nil
			}
			recipients, err := backend.Chats.ListChatRecipients(ctx, target, chat)
			return recipients, true, err
		})
}

func (r *Router) SendChatMessage(ctx context.Context, account domain.Account, chat domain.Chat, content string) error {
	_, err := route(ctx, r, account, domain.FeatureChats, "SendChatMessage", struct{}{},
		func(backend Backend, target domain.Account) (struct{}, bool, error) {
			if backend.Chats == nil {
				return struct{}{}, false, nil
			}
			return struct{}{}, true, backend.Chats.SendChatMessage(ctx, target, chat, content)
		})
	return err
}

func (r *Router) ListChatMessages(ctx context.Context, account domain.Account, chat domain.Chat) ([]domain.ChatMessage, error) {
	return route(ctx, r, account, domain.FeatureChats, "ListChatMessages", []domain.ChatMessage{},
		func(backend Backend, target domain.Account) ([]domain.ChatMessage, bool, error) {
			if backend.Chats == nil {
				return nil, false, nil
			}
			messages, err := backend.Chats.ListChatMessages(ctx, target, chat)
			return messages, true, err
		})
}

func (r *Router) ListDiscussionRecipients(ctx context.Context, account domain.Account) ([]domain.Recipient, error) {
	return route(ctx, r, account, domain.FeatureChats, "ListDiscussionRecipients", []domain.Recipient{},
		func(backend Backend, target domain.Account) ([]domain.Recipient, bool, error) {
			if backend.Chats == nil {
				return nil, false, nil
			}
			recipients, err := backend.Chats.ListDiscussionRecipients(ctx, target)
			return recipients, true, err
		})
}

func (r *Router) CreateDiscussion(ctx context.Context, account domain.Account, subject, content string, recipients []domain.Recipient) error {
	_, err := route(ctx, r, account, domain.FeatureChats, "CreateDiscussion", struct{}{},
		func(backend Backend, target domain.Account) (struct{}, bool, error) {
			if backend.Chats == nil {
				return struct{}{}, false, nil
			}
			return struct{}{}, true, backend.Chats.CreateDiscussion(ctx, target, subject, content, recipients)
		})
	return err
}

func (r *Router) ListTimetableClasses(ctx context.Context, account domain.Account, week int) ([]domain.Class, error) {
	if err := domain.ValidateWeek(week); err != nil {
		return nil, err
	}

	return route(ctx, r, account, domain.FeatureTimetable, "ListTimetableClasses", []domain.Class{},
		func(backend Backend, target domain.Account) ([]domain.Class, bool, error) {
			if backend.Timetable == nil {
				return nil, false, nil
			}
			classes, err := backend.Timetable.ListTimetableClasses(ctx, target, week)
			return classes, true, err
		})
}

// route resolves the serving account, then calls the provider through call.
// call reports false when the backend lacks a provider for the feature.
func route[T any](
	ctx context.Context,
	r *Router,
	account domain.Account,
	feature domain.Feature,
	operation string,
	empty T,
	call func(Backend, domain.Account) (T, bool, error),
) (T, error) {
	target, ok, err := r.resolveTarget(ctx, account, feature)
	if err != nil {
		return empty, err
	}
	if !ok {
		return empty, nil
	}

	backend, _ := r.backends.For(target.Service)
	result, handled, err := call(backend, target)
	if !handled {
		r.logger.Info("operation not implemented for service, returning empty",
			slog.String("operation", operation),
			slog.String("feature", string(feature)),
			slog.String("service", string(target.Service)),
			slog.String("account", string(target.LocalID)),
		)
		return empty, nil
	}

	return result, err
}
