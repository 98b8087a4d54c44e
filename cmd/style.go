package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = func() lipgloss.Style {
		b := lipgloss.NormalBorder()
		return lipgloss.NewStyle().BorderStyle(b).Padding(0, 1)
	}

	fieldKeyStyle = func() lipgloss.Style {
		return lipgloss.NewStyle().Bold(true)
	}
)

// ticketView renders a fetched ticket as a bordered title plus sorted
// key/value lines.
func ticketView(ticketId int, ticket map[string]interface{}) string {
	keys := make([]string, 0, len(ticket))
	for k := range ticket {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(titleStyle().Render(fmt.Sprintf("Ticket %d", ticketId)))
	b.WriteString("\n")

	for _, k := range keys {
		b.WriteString(fmt.Sprintf("%s %v\n", fieldKeyStyle().Render(k+":"), ticket[k]))
	}

	return b.String()
}
