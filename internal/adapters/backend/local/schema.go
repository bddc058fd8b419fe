package local

import (
	"time"

	"github.com/bnema/school-accounts-cli/internal/domain"
)

type chatsFile struct {
	Chats      []chatSchema      `toml:"chats"`
	Recipients []recipientSchema `toml:"recipients,omitempty"`
}

type chatSchema struct {
	ID          string                `toml:"id"`
	Subject     string                `toml:"subject"`
	Creator     string                `toml:"creator,omitempty"`
	Recipient   string                `toml:"recipient,omitempty"`
	Date        time.Time             `toml:"date"`
	UnreadCount int                   `toml:"unread,omitempty"`
	ReadOnly    bool                  `toml:"read_only,omitempty"`
	Messages    []messageSchema       `toml:"messages,omitempty"`
	Recipients  []chatRecipientSchema `toml:"recipients,omitempty"`
}

type messageSchema struct {
	ID          string             `toml:"id"`
	Content     string             `toml:"content"`
	Author      string             `toml:"author"`
	Subject     string             `toml:"subject,omitempty"`
	Date        time.Time          `toml:"date"`
	Attachments []attachmentSchema `toml:"attachments,omitempty"`
}

type attachmentSchema struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

type chatRecipientSchema struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Class string `toml:"class,omitempty"`
}

type recipientSchema struct {
	ID    string   `toml:"id"`
	Name  string   `toml:"name"`
	Kind  string   `toml:"kind,omitempty"`
	Roles []string `toml:"roles,omitempty"`
}

type timetableFile struct {
	Classes []classSchema `toml:"classes"`
}

// classSchema carries an explicit week; when it is omitted the ISO week of
// Start is used.
type classSchema struct {
	Week    int       `toml:"week,omitempty"`
	ID      string    `toml:"id"`
	Subject string    `toml:"subject"`
	Teacher string    `toml:"teacher,omitempty"`
	Room    string    `toml:"room,omitempty"`
	Start   time.Time `toml:"start"`
	End     time.Time `toml:"end"`
	Status  string    `toml:"status,omitempty"`
}

func (c classSchema) week() int {
	if c.Week > 0 {
		return c.Week
	}
	_, week := c.Start.ISOWeek()
	return week
}

func (c chatSchema) toDomain() domain.Chat {
	return domain.Chat{
		ID:          c.ID,
		Subject:     c.Subject,
		Creator:     c.Creator,
		Recipient:   c.Recipient,
		Date:        c.Date,
		UnreadCount: c.UnreadCount,
		ReadOnly:    c.ReadOnly,
	}
}

func (m messageSchema) toDomain() domain.ChatMessage {
	message := domain.ChatMessage{
		ID:      m.ID,
		Content: m.Content,
		Author:  m.Author,
		Subject: m.Subject,
		Date:    m.Date,
	}
	for _, attachment := range m.Attachments {
		message.Attachments = append(message.Attachments, domain.Attachment{Name: attachment.Name, URL: attachment.URL})
	}
	return message
}

func (c classSchema) toDomain() domain.Class {
	return domain.Class{
		ID:      c.ID,
		Subject: c.Subject,
		Teacher: c.Teacher,
		Room:    c.Room,
		Start:   c.Start,
		End:     c.End,
		Status:  domain.ClassStatus(c.Status),
	}
}
