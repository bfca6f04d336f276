package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"bookroom/internal/catalog"
	"bookroom/internal/config"
	"bookroom/internal/report"
	"bookroom/internal/service"
	"bookroom/internal/testdata"
	"bookroom/internal/tui"
)

func main() {
	dump := flag.Bool("dump", false, "print the placement report to stdout and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	room := catalog.NewRoom(cfg.Room.Owner)
	for _, name := range cfg.Room.Shelves {
		room.AddShelf(catalog.NewShelf(name))
	}

	pile, err := loadPile(cfg)
	if err != nil {
		log.Fatalf("load pile: %v", err)
	}

	cat := catalog.New(room)

	if *dump {
		if err := cat.Organize(pile); err != nil {
			log.Fatalf("organize: %v", err)
		}
		cat.SortAll()
		if err := cat.VerifyInvariant(); err != nil {
			log.Fatalf("verify placement: %v", err)
		}
		rows := cat.Rows()
		fmt.Println(cat.Dump())
		fmt.Println()
		fmt.Println(report.Preview(rows, cfg.UI.PreviewRows))
		fmt.Println()
		fmt.Println(report.Pivot(rows))
		return
	}

	app := tui.New(cfg, cat, pile, tui.Services{
		Ingest: &service.IngestService{},
		Search: &service.SearchService{},
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}

// loadPile returns the configured CSV pile, or the built-in sample when no
// library path is set.
func loadPile(cfg config.Config) ([]catalog.Book, error) {
	if cfg.Library.Path == "" {
		return testdata.SamplePile(), nil
	}
	f, err := os.Open(cfg.Library.Path)
	if err != nil {
		return nil, fmt.Errorf("open library csv: %w", err)
	}
	defer f.Close()

	ingest := &service.IngestService{}
	res, err := ingest.ImportCSV(f)
	if err != nil {
		return nil, err
	}
	if res.Skipped > 0 {
		log.Printf("warn: skipped %d rows from %s", res.Skipped, cfg.Library.Path)
	}
	return res.Books, nil
}
