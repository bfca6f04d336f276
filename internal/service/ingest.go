package service

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"bookroom/internal/catalog"
)

// IngestService loads piles of books from CSV exports.
type IngestService struct{}

// IngestResult summarizes one pile import.
type IngestResult struct {
	Imported int
	Skipped  int
	Books    []catalog.Book
	Errors   []error
}

// CSV columns: id, title, author, category, isbn (isbn optional).
// A leading header row is detected and skipped. Blank ids get a generated
// uuid. Rows missing a title or category are skipped and recorded.
func (s *IngestService) ImportCSV(r io.Reader) (IngestResult, error) {
	res := IngestResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1
	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if len(rec) < 4 { // id, title, author, category
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Errorf("line %d: expected at least 4 columns", line))
			continue
		}
		id, title, author, category := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1]), strings.TrimSpace(rec[2]), strings.TrimSpace(rec[3])
		isbn := ""
		if len(rec) > 4 {
			isbn = strings.TrimSpace(rec[4])
		}
		if line == 1 && strings.EqualFold(id, "id") && strings.EqualFold(title, "title") {
			continue
		}
		if title == "" || category == "" {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Errorf("line %d: missing title or category", line))
			continue
		}
		if id == "" {
			id = uuid.NewString()
		}
		res.Books = append(res.Books, catalog.Book{
			ID:       id,
			Title:    title,
			Author:   author,
			Category: category,
			ISBN:     isbn,
		})
		res.Imported++
	}
	return res, nil
}
