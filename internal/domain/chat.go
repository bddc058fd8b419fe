package domain

import "time"

type Chat struct {
	ID          string
	Subject     string
	Creator     string
	Recipient   string
	Date        time.Time
	UnreadCount int
	ReadOnly    bool
}

type ChatMessage struct {
	ID          string
	Content     string
	Author      string
	Subject     string
	Date        time.Time
	Attachments []Attachment
}

type Attachment struct {
	Name string
	URL  string
}

type ChatRecipient struct {
	ID    string
	Name  string
	Class string
}

type Recipient struct {
	ID    string
	Name  string
	Kind  string
	Roles []string
}
