package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errUnknownRecipient = errors.New("unknown recipient")

const chatDateLayout = "2006-01-02 15:04"

func newChatsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chats",
		Short: "Read and send messages",
	}

	cmd.AddCommand(
		newChatsListCmd(app),
		newChatsMessagesCmd(app),
		newChatsRecipientsCmd(app),
		newChatsSendCmd(app),
		newChatsDiscussionRecipientsCmd(app),
		newChatsDiscussCmd(app),
	)

	return cmd
}

func newChatsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list <account>",
		Short: "List chats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.accounts.Get(cmd.Context(), domain.AccountID(args[0]))
			if err != nil {
				return err
			}

			chats, err := app.router.ListChats(cmd.Context(), account)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, chats)
			}

			out := cmd.OutOrStdout()
			if len(chats) == 0 {
				_, err = fmt.Fprintln(out, "no chats")
				return err
			}
			for _, chat := range chats {
				unread := ""
				if chat.UnreadCount > 0 {
					unread = fmt.Sprintf(" (%d unread)", chat.UnreadCount)
				}
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%s%s\n", chat.ID, formatDate(chat.Date), chat.Creator, chat.Subject, unread)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func newChatsMessagesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "messages <account> <chat>",
		Short: "List the messages of a chat",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.accounts.Get(cmd.Context(), domain.AccountID(args[0]))
			if err != nil {
				return err
			}

			messages, err := app.router.ListChatMessages(cmd.Context(), account, domain.Chat{ID: args[1]})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, messages)
			}

			out := cmd.OutOrStdout()
			for _, message := range messages {
				_, _ = fmt.Fprintf(out, "[%s] %s: %s\n", formatDate(message.Date), message.Author, message.Content)
				for _, attachment := range message.Attachments {
					_, _ = fmt.Fprintf(out, "    attachment: %s %s\n", attachment.Name, attachment.URL)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func newChatsRecipientsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recipients <account> <chat>",
		Short: "List the participants of a chat",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.accounts.Get(cmd.Context(), domain.AccountID(args[0]))
			if err != nil {
				return err
			}

			recipients, err := app.router.ListChatRecipients(cmd.Context(), account, domain.Chat{ID: args[1]})
			if err != nil {
				return err
			}

			for _, recipient := range recipients {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", recipient.ID, recipient.Name, recipient.Class)
			}

			return nil
		},
	}
}

func newChatsSendCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <account> <chat> <content>",
		Short: "Reply to a chat",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.accounts.Get(cmd.Context(), domain.AccountID(args[0]))
			if err != nil {
				return err
			}

			return app.router.SendChatMessage(cmd.Context(), account, domain.Chat{ID: args[1]}, args[2])
		},
	}
}

func newChatsDiscussionRecipientsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "discussion-recipients <account>",
		Short: "List who a new discussion can be addressed to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.accounts.Get(cmd.Context(), domain.AccountID(args[0]))
			if err != nil {
				return err
			}

			recipients, err := app.router.ListDiscussionRecipients(cmd.Context(), account)
			if err != nil {
				return err
			}

			for _, recipient := range recipients {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", recipient.ID, recipient.Name, recipient.Kind, strings.Join(recipient.Roles, ","))
			}

			return nil
		},
	}
}

func newChatsDiscussCmd(app *app) *cobra.Command {
	var (
		subject string
		content string
		to      []string
	)

	cmd := &cobra.Command{
		Use:   "discuss <account>",
		Short: "Start a new discussion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.accounts.Get(cmd.Context(), domain.AccountID(args[0]))
			if err != nil {
				return err
			}

			available, err := app.router.ListDiscussionRecipients(cmd.Context(), account)
			if err != nil {
				return err
			}

			recipients, err := pickRecipients(available, to)
			if err != nil {
				return err
			}

			return app.router.CreateDiscussion(cmd.Context(), account, subject, content, recipients)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Discussion subject")
	cmd.Flags().StringVar(&content, "content", "", "First message")
	cmd.Flags().StringSliceVar(&to, "to", nil, "Recipient ids (repeatable)")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func pickRecipients(available []domain.Recipient, ids []string) ([]domain.Recipient, error) {
	byID := make(map[string]domain.Recipient, len(available))
	for _, recipient := range available {
		byID[recipient.ID] = recipient
	}

	picked := make([]domain.Recipient, 0, len(ids))
	for _, id := range ids {
		recipient, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", errUnknownRecipient, id)
		}
		picked = append(picked, recipient)
	}

	return picked, nil
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format(chatDateLayout)
}
