// Package tui is the interactive browser over one organized room: shelf
// tabs, placement report, pivot, and a fuzzy title search.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bookroom/internal/catalog"
	"bookroom/internal/config"
	"bookroom/internal/service"
)

// App ties together views over one catalog. The catalog is only ever
// mutated through its own Organize/SortAll entry points here, so the
// one-category-one-shelf constraint cannot drift.
type App struct {
	catalog  *catalog.Catalog
	pile     []catalog.Book
	services Services
	cfg      config.Config

	state       appState
	shelfCursor int
	status      string
	width       int
	height      int
	keys        keyMap

	searchInput   string
	searchResults []service.Match
}

// Services bundles the collaborators the app needs.
type Services struct {
	Ingest *service.IngestService
	Search *service.SearchService
}

type appState string

const (
	viewShelves appState = "shelves"
	viewReport  appState = "report"
	viewPivot   appState = "pivot"
	viewSearch  appState = "search"
)

type statusMsg string

type organizeDoneMsg struct{ err error }

type verifyDoneMsg struct{ err error }

type pileLoadedMsg struct {
	books []catalog.Book
	err   error
}

func New(cfg config.Config, cat *catalog.Catalog, pile []catalog.Book, services Services) *App {
	return &App{
		catalog:  cat,
		pile:     pile,
		services: services,
		cfg:      cfg,
		state:    viewShelves,
		keys:     newKeyMap(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.organizeCmd()
}

func (a *App) organizeCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.catalog.Organize(a.pile); err != nil {
			return organizeDoneMsg{err}
		}
		a.catalog.SortAll()
		return organizeDoneMsg{nil}
	}
}

// reloadCmd re-reads the configured library CSV and hands the fresh pile
// back through pileLoadedMsg.
func (a *App) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		if a.cfg.Library.Path == "" {
			return statusMsg("no library csv configured")
		}
		f, err := os.Open(a.cfg.Library.Path)
		if err != nil {
			return pileLoadedMsg{err: err}
		}
		defer f.Close()

		res, err := a.services.Ingest.ImportCSV(f)
		if err != nil {
			return pileLoadedMsg{err: err}
		}
		return pileLoadedMsg{books: res.Books}
	}
}

func (a *App) verifyCmd() tea.Cmd {
	return func() tea.Msg {
		return verifyDoneMsg{a.catalog.VerifyInvariant()}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case organizeDoneMsg:
		if m.err != nil {
			a.status = fmt.Sprintf("organize failed: %v", m.err)
		} else {
			a.status = fmt.Sprintf("organized %d books onto %d shelves", len(a.pile), len(a.catalog.Room.Shelves))
		}
	case verifyDoneMsg:
		if m.err != nil {
			a.status = fmt.Sprintf("constraint broken: %v", m.err)
		} else {
			a.status = "placement verified: every category on one shelf"
		}
	case pileLoadedMsg:
		if m.err != nil {
			a.status = fmt.Sprintf("reload failed: %v", m.err)
			return a, nil
		}
		a.pile = m.books
		a.status = fmt.Sprintf("loaded %d books from %s", len(m.books), a.cfg.Library.Path)
		return a, a.organizeCmd()
	case statusMsg:
		a.status = string(m)
	case tea.KeyMsg:
		if a.state == viewSearch {
			return a.handleSearchKey(m)
		}
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Organize):
			a.status = "organizing..."
			return a, a.organizeCmd()
		case key.Matches(m, a.keys.Reload):
			a.status = "reloading..."
			return a, a.reloadCmd()
		case key.Matches(m, a.keys.Sort):
			a.catalog.SortAll()
			a.status = "shelves sorted by title"
		case key.Matches(m, a.keys.Verify):
			return a, a.verifyCmd()
		case key.Matches(m, a.keys.Report):
			a.state = viewReport
		case key.Matches(m, a.keys.Pivot):
			a.state = viewPivot
		case key.Matches(m, a.keys.Search):
			a.state = viewSearch
			a.searchInput = ""
			a.searchResults = nil
		case key.Matches(m, a.keys.Back):
			a.state = viewShelves
		case key.Matches(m, a.keys.Next):
			if n := len(a.catalog.Room.Shelves); n > 0 {
				a.shelfCursor = (a.shelfCursor + 1) % n
			}
		case key.Matches(m, a.keys.Prev):
			if n := len(a.catalog.Room.Shelves); n > 0 {
				a.shelfCursor = (a.shelfCursor - 1 + n) % n
			}
		}
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.state = viewShelves
		return a, nil
	case "ctrl+c":
		return a, tea.Quit
	case "enter":
		a.searchResults = a.services.Search.ClosestTitles(a.pile, a.searchInput, 5)
		if len(a.searchResults) == 0 {
			a.status = "no matches"
		} else {
			a.status = fmt.Sprintf("%d matches for %q", len(a.searchResults), a.searchInput)
		}
		return a, nil
	case "backspace":
		if a.searchInput != "" {
			r := []rune(a.searchInput)
			a.searchInput = string(r[:len(r)-1])
		}
		return a, nil
	}
	if m.Type == tea.KeyRunes || m.Type == tea.KeySpace {
		a.searchInput += m.String()
	}
	return a, nil
}
