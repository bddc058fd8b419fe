package status

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/school-accounts-cli/internal/application"
	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderView(statuses []application.AccountStatus, s styles) string {
	lines := []string{
		s.title.Render("School Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(statuses))),
	}

	if len(statuses) == 0 {
		lines = append(lines, s.empty.Render("No accounts configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, status := range statuses {
		lines = append(lines, s.section.Render(renderAccount(status, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(status application.AccountStatus, s styles) string {
	account := status.Account
	parts := []string{
		s.account.Render(accountTitle(account)),
		s.detail.Render("service: " + account.Service.Label()),
	}

	if account.IsComposite() {
		parts = append(parts, coverageLine(status, s))
		parts = append(parts, bindingLines(status, s)...)
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts, s.detail.Render("credentials: "+credentialsLabel(status)))
	if instance := strings.TrimSpace(account.Credentials.Instance); instance != "" {
		parts = append(parts, s.detail.Render("instance: "+instance))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func accountTitle(account domain.Account) string {
	name := account.DisplayName()
	if name == string(account.LocalID) {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, account.LocalID)
}

func credentialsLabel(status application.AccountStatus) string {
	username := status.Account.Credentials.Username
	switch {
	case status.HasCredential && username != "":
		return "stored for " + username
	case status.HasCredential:
		return "stored"
	default:
		return "none"
	}
}

func coverageLine(status application.AccountStatus, s styles) string {
	total := len(domain.Features())
	bound := 0
	for _, binding := range status.Bindings {
		if binding.Target != nil {
			bound++
		}
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.featureKey.Render("features:"),
		" ",
		renderProgressBar(bound, total, 16, s),
		" ",
		s.detail.Render(fmt.Sprintf("%d/%d bound", bound, total)),
	)
}

func bindingLines(status application.AccountStatus, s styles) []string {
	if len(status.Bindings) == 0 {
		return []string{s.empty.Render("no features bound")}
	}

	lines := make([]string, 0, len(status.Bindings))
	for _, binding := range status.Bindings {
		key := s.featureKey.Render(fmt.Sprintf("%-10s ->", binding.Feature))
		if binding.Target == nil {
			lines = append(lines, key+" "+s.warning.Render(fmt.Sprintf("missing account %s", binding.TargetID)))
			continue
		}
		target := fmt.Sprintf("%s [%s]", accountTitle(*binding.Target), binding.Target.Service.Label())
		lines = append(lines, key+" "+s.target.Render(target))
	}

	return lines
}

func renderProgressBar(filled, total, width int, s styles) string {
	if width <= 0 || total <= 0 {
		return ""
	}

	cells := int(math.Round(float64(width) * float64(filled) / float64(total)))
	if cells < 0 {
		cells = 0
	}
	if cells > width {
		cells = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", cells)),
		s.barEmpty.Render(strings.Repeat("-", width-cells)),
		s.barBracket.Render("]"),
	)
}
