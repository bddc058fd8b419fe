// Package local implements the "local" service kind: chats and timetables
// are read from TOML exports on disk, one directory per account.
//
//	<root>/<account id>/chats.toml
//	<root>/<account id>/timetable.toml
//
// Sent messages and new discussions are appended to chats.toml.
package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/ports"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	chatsFileName     = "chats.toml"
	timetableFileName = "timetable.toml"
)

var ErrChatNotFound = errors.New("chat not found")

type Provider struct {
	root  string
	clock ports.Clock
	mu    sync.Mutex
}

var (
	_ ports.ChatProvider      = (*Provider)(nil)
	_ ports.TimetableProvider = (*Provider)(nil)
)

func NewProvider(root string, clock ports.Clock) *Provider {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Provider{root: filepath.Clean(root), clock: clock}
}

func (p *Provider) ListChats(ctx context.Context, account domain.Account) ([]domain.Chat, error) {
	file, err := p.readChats(ctx, account)
	if err != nil {
		return nil, err
	}

	chats := make([]domain.Chat, 0, len(file.Chats))
	for _, chat := range file.Chats {
		chats = append(chats, chat.toDomain())
	}
	return chats, nil
}

func (p *Provider) ListChatRecipients(ctx context.Context, account domain.Account, chat domain.Chat) ([]domain.ChatRecipient, error) {
	file, err := p.readChats(ctx, account)
	if err != nil {
		return nil, err
	}

	entry, ok := findChat(file, chat.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChatNotFound, chat.ID)
	}

	recipients := make([]domain.ChatRecipient, 0, len(entry.Recipients))
	for _, recipient := range entry.Recipients {
		recipients = append(recipients, domain.ChatRecipient{ID: recipient.ID, Name: recipient.Name, Class: recipient.Class})
	}
	return recipients, nil
}

func (p *Provider) ListChatMessages(ctx context.Context, account domain.Account, chat domain.Chat) ([]domain.ChatMessage, error) {
	file, err := p.readChats(ctx, account)
	if err != nil {
		return nil, err
	}

	entry, ok := findChat(file, chat.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChatNotFound, chat.ID)
	}

	messages := make([]domain.ChatMessage, 0, len(entry.Messages))
	for _, message := range entry.Messages {
		messages = append(messages, message.toDomain())
	}
	return messages, nil
}

func (p *Provider) ListDiscussionRecipients(ctx context.Context, account domain.Account) ([]domain.Recipient, error) {
	file, err := p.readChats(ctx, account)
	if err != nil {
		return nil, err
	}

	recipients := make([]domain.Recipient, 0, len(file.Recipients))
	for _, recipient := range file.Recipients {
		recipients = append(recipients, domain.Recipient{
			ID:    recipient.ID,
			Name:  recipient.Name,
			Kind:  recipient.Kind,
			Roles: append([]string(nil), recipient.Roles...),
		})
	}
	return recipients, nil
}

func (p *Provider) SendChatMessage(ctx context.Context, account domain.Account, chat domain.Chat, content string) error {
	return p.updateChats(ctx, account, func(file *chatsFile) error {
		for i := range file.Chats {
			if file.Chats[i].ID != chat.ID {
				continue
			}
			if file.Chats[i].ReadOnly {
				return fmt.Errorf("chat %s is read-only", chat.ID)
			}
			file.Chats[i].Messages = append(file.Chats[i].Messages, messageSchema{
				ID:      uuid.NewString(),
				Content: content,
				Author:  author(account),
				Date:    p.clock.Now().UTC().Truncate(time.Second),
			})
			return nil
		}
		return fmt.Errorf("%w: %s", ErrChatNotFound, chat.ID)
	})
}

func (p *Provider) CreateDiscussion(ctx context.Context, account domain.Account, subject, content string, recipients []domain.Recipient) error {
	if len(recipients) == 0 {
		return errors.New("a discussion needs at least one recipient")
	}

	now := p.clock.Now().UTC().Truncate(time.Second)
	names := make([]string, 0, len(recipients))
	chatRecipients := make([]chatRecipientSchema, 0, len(recipients))
	for _, recipient := range recipients {
		names = append(names, recipient.Name)
		chatRecipients = append(chatRecipients, chatRecipientSchema{ID: recipient.ID, Name: recipient.Name})
	}

	return p.updateChats(ctx, account, func(file *chatsFile) error {
		file.Chats = append(file.Chats, chatSchema{
			ID:         uuid.NewString(),
			Subject:    subject,
			Creator:    author(account),
			Recipient:  strings.Join(names, ", "),
			Date:       now,
			Recipients: chatRecipients,
			Messages: []messageSchema{{
				ID:      uuid.NewString(),
				Content: content,
				Author:  author(account),
				Subject: subject,
				Date:    now,
			}},
		})
		return nil
	})
}

func (p *Provider) ListTimetableClasses(ctx context.Context, account domain.Account, week int) ([]domain.Class, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var file timetableFile
	if err := p.read(account, timetableFileName, &file); err != nil {
		return nil, err
	}

	classes := make([]domain.Class, 0, len(file.Classes))
	for _, class := range file.Classes {
		if class.week() == week {
			classes = append(classes, class.toDomain())
		}
	}
	return classes, nil
}

func (p *Provider) readChats(ctx context.Context, account domain.Account) (chatsFile, error) {
	if err := ctx.Err(); err != nil {
		return chatsFile{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var file chatsFile
	err := p.read(account, chatsFileName, &file)
	return file, err
}

func (p *Provider) updateChats(ctx context.Context, account domain.Account, apply func(*chatsFile) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var file chatsFile
	if err := p.read(account, chatsFileName, &file); err != nil {
		return err
	}
	if err := apply(&file); err != nil {
		return err
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode %s: %w", chatsFileName, err)
	}

	return p.write(account, chatsFileName, data)
}

func (p *Provider) accountDir(account domain.Account) (string, error) {
	id := strings.TrimSpace(string(account.LocalID))
	if id == "" || strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, ".") {
		return "", fmt.Errorf("invalid local account id %q", account.LocalID)
	}
	return filepath.Join(p.root, id), nil
}

// read leaves out untouched when the file does not exist.
func (p *Provider) read(account domain.Account, name string, out any) error {
	dir, err := p.accountDir(account)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}

	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (p *Provider) write(account domain.Account, name string, data []byte) error {
	dir, err := p.accountDir(account)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create local account directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp %s: %w", name, err)
	}
	tempName := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempName)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tempName, filepath.Join(dir, name)); err != nil {
		_ = os.Remove(tempName)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

func findChat(file chatsFile, id string) (chatSchema, bool) {
	for _, chat := range file.Chats {
		if chat.ID == id {
			return chat, true
		}
	}
	return chatSchema{}, false
}

func author(account domain.Account) string {
	if account.Credentials.Username != "" {
		return account.Credentials.Username
	}
	return account.DisplayName()
}
