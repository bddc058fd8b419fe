// Package timetable renders one week bucket of the aggregation store for
// the terminal, grouped by day.
package timetable

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bnema/school-accounts-cli/internal/adapters/render/frame"
	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Week int
	// Known is false when the week was never fetched, as opposed to fetched
	// and empty.
	Known bool
	// Sources maps account ids to display names for the source column.
	Sources  map[domain.AccountID]string
	Location *time.Location
}

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	day      lipgloss.Style
	hours    lipgloss.Style
	subject  lipgloss.Style
	detail   lipgloss.Style
	source   lipgloss.Style
	canceled lipgloss.Style
	changed  lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		day:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		hours:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		subject:  lipgloss.NewStyle().Bold(true),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		source:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		canceled: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		changed:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}

func Render(classes []domain.Class, opts RenderOptions) (string, error) {
	s := newStyles()
	return frame.Render(func() string {
		return renderView(classes, opts, s)
	})
}

func renderView(classes []domain.Class, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Timetable, week %d", opts.Week)),
		s.header.Render(fmt.Sprintf("classes: %d", len(classes))),
	}

	if !opts.Known {
		lines = append(lines, s.empty.Render("This week has not been fetched yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	if len(classes) == 0 {
		lines = append(lines, s.empty.Render("No classes this week."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	for _, day := range groupByDay(classes, loc) {
		lines = append(lines, s.day.Render(day.label))
		for _, class := range day.classes {
			lines = append(lines, classLine(class, opts, loc, s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type dayGroup struct {
	key     string
	label   string
	classes []domain.Class
}

// groupByDay keeps bucket order within a day; classes without a start time
// are listed last under "Unscheduled".
func groupByDay(classes []domain.Class, loc *time.Location) []dayGroup {
	index := map[string]int{}
	var groups []dayGroup
	for _, class := range classes {
		key, label := "~", "Unscheduled"
		if !class.Start.IsZero() {
			start := class.Start.In(loc)
			key = start.Format("2006-01-02")
			label = start.Format("Monday 02 Jan")
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, dayGroup{key: key, label: label})
		}
		groups[i].classes = append(groups[i].classes, class)
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].key < groups[j].key })
	for _, group := range groups {
		sort.SliceStable(group.classes, func(i, j int) bool {
			return group.classes[i].Start.Before(group.classes[j].Start)
		})
	}

	return groups
}

func classLine(class domain.Class, opts RenderOptions, loc *time.Location, s styles) string {
	parts := []string{s.hours.Render(hours(class, loc)), s.subject.Render(subject(class))}

	var details []string
	if teacher := strings.TrimSpace(class.Teacher); teacher != "" {
		details = append(details, teacher)
	}
	if room := strings.TrimSpace(class.Room); room != "" {
		details = append(details, room)
	}
	if len(details) > 0 {
		parts = append(parts, s.detail.Render(strings.Join(details, ", ")))
	}

	switch class.Status {
	case domain.ClassStatusCanceled:
		parts = append(parts, s.canceled.Render("[canceled]"))
	case domain.ClassStatusChanged:
		parts = append(parts, s.changed.Render("[changed]"))
	case domain.ClassStatusOnline:
		parts = append(parts, s.changed.Render("[online]"))
	}

	parts = append(parts, s.source.Render("@"+sourceName(class.Source, opts.Sources)))

	return "  " + strings.Join(parts, "  ")
}

func hours(class domain.Class, loc *time.Location) string {
	if class.Start.IsZero() {
		return "--:-- --:--"
	}
	end := "--:--"
	if !class.End.IsZero() {
		end = class.End.In(loc).Format("15:04")
	}
	return class.Start.In(loc).Format("15:04") + " " + end
}

func subject(class domain.Class) string {
	if trimmed := strings.TrimSpace(class.Subject); trimmed != "" {
		return trimmed
	}
	return "(no subject)"
}

func sourceName(source domain.AccountID, names map[domain.AccountID]string) string {
	if name, ok := names[source]; ok && strings.TrimSpace(name) != "" {
		return name
	}
	if source == "" {
		return "unknown"
	}
	return string(source)
}
