package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Organize key.Binding
	Reload   key.Binding
	Sort     key.Binding
	Verify   key.Binding
	Report   key.Binding
	Pivot    key.Binding
	Search   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Organize: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "organize")),
		Reload:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "reload csv")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort titles")),
		Verify:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "verify")),
		Report:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "report")),
		Pivot:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pivot")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Next:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next shelf")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev shelf")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "shelves")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Organize, k.Reload, k.Sort, k.Verify, k.Report, k.Pivot, k.Search, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Organize, k.Reload, k.Sort, k.Verify},
		{k.Report, k.Pivot, k.Search, k.Next, k.Prev, k.Quit},
	}
}
