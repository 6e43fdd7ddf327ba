package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/counted-dev/counted/internal/docref"
	"github.com/counted-dev/counted/internal/model"
)

// Service reads and appends monthly journal files under a data root.
type Service struct {
	root     string
	accounts AccountChecker
}

// NewService creates a journal Service.
func NewService(root string, accounts AccountChecker) *Service {
	return &Service{root: root, accounts: accounts}
}

// ReadMonth reads all journal lines for a given year/month. A missing
// file means an empty month, not an error.
func (s *Service) ReadMonth(year, month int) ([]model.JournalLine, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return lines, nil
}

// Append validates lines against the month's existing content and appends
// them to the journal file, creating it with a header when new.
func (s *Service) Append(year, month int, lines []model.JournalLine) error {
	existing, err := s.ReadMonth(year, month)
	if err != nil {
		return err
	}

	if verrs := Validate(append(existing, lines...), s.accounts); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	path := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := AppendLines(f, lines); err != nil {
		return fmt.Errorf("appending lines: %w", err)
	}
	return nil
}

// NextReference returns the next free transaction reference for a year,
// scanning that year's monthly journals.
func (s *Service) NextReference(year int) (string, error) {
	var refs []string
	for month := 1; month <= 12; month++ {
		lines, err := s.ReadMonth(year, month)
		if err != nil {
			return "", err
		}
		for _, l := range lines {
			refs = append(refs, l.Reference)
		}
	}
	return docref.Format(docref.KindTransaction, year, docref.NextSeq(docref.KindTransaction, year, refs)), nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}
