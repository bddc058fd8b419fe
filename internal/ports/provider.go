package ports

import (
	"context"

	"github.com/bnema/school-accounts-cli/internal/domain"
)

// ChatProvider is implemented by backends that expose messaging. Errors are
// backend-defined and surface to callers unchanged.
type ChatProvider interface {
	ListChats(ctx context.Context, account domain.Account) ([]domain.Chat, error)
	ListChatRecipients(ctx context.Context, account domain.Account, chat domain.Chat) ([]domain.ChatRecipient, error)
	SendChatMessage(ctx context.Context, account domain.Account, chat domain.Chat, content string) error
	ListChatMessages(ctx context.Context, account domain.Account, chat domain.Chat) ([]domain.ChatMessage, error)
	ListDiscussionRecipients(ctx context.Context, account domain.Account) ([]domain.Recipient, error)
	CreateDiscussion(ctx context.Context, account domain.Account, subject, content string, recipients []domain.Recipient) error
}

type TimetableProvider interface {
	ListTimetableClasses(ctx context.Context, account domain.Account, week int) ([]domain.Class, error)
}
