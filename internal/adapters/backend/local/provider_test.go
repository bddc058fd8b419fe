package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testAccount = domain.Account{
	LocalID:     "home",
	Name:        "Exports",
	Service:     domain.ServiceLocal,
	Credentials: domain.Credentials{Username: "lucie"},
}

func writeExport(t *testing.T, root, name string, lines ...string) {
	t.Helper()

	dir := filepath.Join(root, string(testAccount.LocalID))
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(strings.Join(lines, "\n")), 0o600))
}

func newTestProvider(t *testing.T) (*Provider, string) {
	t.Helper()

	root := t.TempDir()
	writeExport(t, root, chatsFileName,
		`[[chats]]`,
		`id = "c1"`,
		`subject = "Sortie scolaire"`,
		`creator = "Mme Durand"`,
		`date = 2026-03-10T08:00:00Z`,
		`unread = 1`,
		``,
		`[[chats.messages]]`,
		`id = "m1"`,
		`content = "Rendez-vous à 8h."`,
		`author = "Mme Durand"`,
		`date = 2026-03-10T08:00:00Z`,
		``,
		`[[chats.messages.attachments]]`,
		`name = "autorisation.pdf"`,
		`url = "file:///autorisation.pdf"`,
		``,
		`[[chats.recipients]]`,
		`id = "r1"`,
		`name = "Lucie"`,
		`class = "3B"`,
		``,
		`[[chats]]`,
		`id = "c2"`,
		`subject = "Annonce"`,
		`date = 2026-03-11T08:00:00Z`,
		`read_only = true`,
		``,
		`[[recipients]]`,
		`id = "t1"`,
		`name = "M. Martin"`,
		`kind = "teacher"`,
		`roles = ["Mathématiques"]`,
	)
	writeExport(t, root, timetableFileName,
		`[[classes]]`,
		`id = "1"`,
		`subject = "Maths"`,
		`start = 2026-03-16T08:00:00Z`,
		`end = 2026-03-16T09:00:00Z`,
		``,
		`[[classes]]`,
		`week = 13`,
		`id = "2"`,
		`subject = "Histoire"`,
		`start = 2026-03-16T10:00:00Z`,
		`end = 2026-03-16T11:00:00Z`,
		`status = "canceled"`,
	)

	clock := fixedClock{now: time.Date(2026, time.March, 18, 12, 30, 0, 0, time.UTC)}
	return NewProvider(root, clock), root
}

func TestProviderListsChatsMessagesAndRecipients(t *testing.T) {
	t.Parallel()

	provider, _ := newTestProvider(t)
	ctx := context.Background()

	chats, err := provider.ListChats(ctx, testAccount)
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "Sortie scolaire", chats[0].Subject)
	assert.Equal(t, 1, chats[0].UnreadCount)
	assert.True(t, chats[1].ReadOnly)

	messages, err := provider.ListChatMessages(ctx, testAccount, chats[0])
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, []domain.Attachment{{Name: "autorisation.pdf", URL: "file:///autorisation.pdf"}}, messages[0].Attachments)

	recipients, err := provider.ListChatRecipients(ctx, testAccount, chats[0])
	require.NoError(t, err)
	assert.Equal(t, []domain.ChatRecipient{{ID: "r1", Name: "Lucie", Class: "3B"}}, recipients)

	discussion, err := provider.ListDiscussionRecipients(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, []domain.Recipient{{ID: "t1", Name: "M. Martin", Kind: "teacher", Roles: []string{"Mathématiques"}}}, discussion)
}

func TestProviderMissingExportIsEmpty(t *testing.T) {
	t.Parallel()

	provider := NewProvider(t.TempDir(), nil)

	chats, err := provider.ListChats(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Empty(t, chats)

	classes, err := provider.ListTimetableClasses(context.Background(), testAccount, 12)
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestProviderListTimetableClassesFiltersByWeek(t *testing.T) {
	t.Parallel()

	provider, _ := newTestProvider(t)

	week12, err := provider.ListTimetableClasses(context.Background(), testAccount, 12)
	require.NoError(t, err)
	require.Len(t, week12, 1)
	assert.Equal(t, "Maths", week12[0].Subject)
	assert.Empty(t, week12[0].Source)

	week13, err := provider.ListTimetableClasses(context.Background(), testAccount, 13)
	require.NoError(t, err)
	require.Len(t, week13, 1)
	assert.Equal(t, domain.ClassStatusCanceled, week13[0].Status)
}

func TestProviderSendChatMessageAppends(t *testing.T) {
	t.Parallel()

	provider, _ := newTestProvider(t)
	ctx := context.Background()
	chat := domain.Chat{ID: "c1"}

	require.NoError(t, provider.SendChatMessage(ctx, testAccount, chat, "Merci !"))

	messages, err := provider.ListChatMessages(ctx, testAccount, chat)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Merci !", messages[1].Content)
	assert.Equal(t, "lucie", messages[1].Author)
	assert.Equal(t, time.Date(2026, time.March, 18, 12, 30, 0, 0, time.UTC), messages[1].Date)
	assert.NotEmpty(t, messages[1].ID)
}

func TestProviderSendChatMessageRejectsUnknownAndReadOnlyChats(t *testing.T) {
	t.Parallel()

	provider, _ := newTestProvider(t)
	ctx := context.Background()

	assert.ErrorIs(t, provider.SendChatMessage(ctx, testAccount, domain.Chat{ID: "nope"}, "x"), ErrChatNotFound)
	assert.ErrorContains(t, provider.SendChatMessage(ctx, testAccount, domain.Chat{ID: "c2"}, "x"), "read-only")
}

func TestProviderCreateDiscussion(t *testing.T) {
	t.Parallel()

	provider, _ := newTestProvider(t)
	ctx := context.Background()

	err := provider.CreateDiscussion(ctx, testAccount, "Absence", "Lucie sera absente.", []domain.Recipient{{ID: "t1", Name: "M. Martin"}})
	require.NoError(t, err)

	chats, err := provider.ListChats(ctx, testAccount)
	require.NoError(t, err)
	require.Len(t, chats, 3)
	assert.Equal(t, "Absence", chats[2].Subject)
	assert.Equal(t, "M. Martin", chats[2].Recipient)
	assert.Equal(t, "lucie", chats[2].Creator)

	assert.Error(t, provider.CreateDiscussion(ctx, testAccount, "Vide", "x", nil))
}

func TestProviderRejectsUnsafeAccountIDs(t *testing.T) {
	t.Parallel()

	provider := NewProvider(t.TempDir(), nil)

	_, err := provider.ListChats(context.Background(), domain.Account{LocalID: "../etc", Service: domain.ServiceLocal})
	assert.ErrorContains(t, err, "invalid local account id")
}
