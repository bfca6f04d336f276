package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bookroom/internal/report"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewReport:
		body = a.renderReport()
	case viewPivot:
		body = a.renderPivot()
	case viewSearch:
		body = a.renderSearch()
	default:
		body = a.renderShelves()
	}
	return body + "\n\n" + statusBarStyle.Render(a.status) + "\n" + a.renderFooter()
}

func (a *App) renderShelves() string {
	room := a.catalog.Room
	header := titleStyle.Render(fmt.Sprintf("%s's room", room.Owner))
	if len(room.Shelves) == 0 {
		return header + "\n\nNo shelves configured."
	}

	cursor := a.shelfCursor
	if cursor >= len(room.Shelves) {
		cursor = 0
	}

	tabs := make([]string, 0, len(room.Shelves))
	for i, sh := range room.Shelves {
		label := fmt.Sprintf("%s (%d)", sh.Name, len(sh.Books))
		if i == cursor {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	sh := room.Shelves[cursor]
	body := "No books on this shelf."
	if len(sh.Books) > 0 {
		t := report.Table{Headers: []string{"Title", "Author", "Category", "ID"}}
		for _, b := range sh.Books {
			t.Rows = append(t.Rows, []string{b.Title, b.Author, b.Category, b.ID})
		}
		body = t.Render()
	}

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n" + body
}

func (a *App) renderReport() string {
	return titleStyle.Render("Placement") + "\n\n" + report.Preview(a.catalog.Rows(), a.cfg.UI.PreviewRows)
}

func (a *App) renderPivot() string {
	return titleStyle.Render("Books per shelf and category") + "\n\n" + report.Pivot(a.catalog.Rows())
}

func (a *App) renderSearch() string {
	prompt := titleStyle.Render("Search title") + "\n\n> " + a.searchInput + "█"
	if len(a.searchResults) == 0 {
		return prompt
	}
	t := report.Table{Headers: []string{"Score", "Title", "Author", "Category"}}
	for _, m := range a.searchResults {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%.2f", m.Score),
			m.Book.Title,
			m.Book.Author,
			m.Book.Category,
		})
	}
	return prompt + "\n\n" + t.Render()
}

func (a *App) renderFooter() string {
	parts := make([]string, 0, 8)
	for _, b := range a.keys.ShortHelp() {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return footerStyle.Render(strings.Join(parts, "  "))
}
