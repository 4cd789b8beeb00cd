// Package highscore persists the top-3 cash-out record list.
package highscore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/fileutil"
)

// DateFormat is the day-month-2digit-year stamp stored with each record
const DateFormat = "02-01-06"

// MaxEntries is the number of slots on the highscore list
const MaxEntries = 3

// Record is one highscore entry
type Record struct {
	Name    string
	Balance int
	Date    string
}

// MarshalJSON encodes the record as a [name, balance, date] tuple, the
// layout the highscores file has always used
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Name, r.Balance, r.Date})
}

// UnmarshalJSON decodes a [name, balance, date] tuple
func (r *Record) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 3 {
		return fmt.Errorf("highscore record has %d fields, want 3", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &r.Name); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[1], &r.Balance); err != nil {
		return err
	}
	return json.Unmarshal(tuple[2], &r.Date)
}

// List is an ordered highscore list, kept sorted descending by balance.
// Ties keep insertion order (stable sort on balance only).
type List []Record

// sort orders the list descending by balance
func (l List) sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Balance > l[j].Balance
	})
}

// Qualifies reports whether a balance would make the list
func (l List) Qualifies(balance int) bool {
	if len(l) < MaxEntries {
		return true
	}
	return balance > l[len(l)-1].Balance
}

// Store loads and saves the highscore list at a file path
type Store struct {
	path   string
	clock  quartz.Clock
	logger *log.Logger
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithClock sets the clock used to date-stamp submissions
func WithClock(clock quartz.Clock) StoreOption {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithLogger sets the store logger
func WithLogger(logger *log.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a store backed by the given file path
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:   path,
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the highscore list. A missing file is not an error: it yields
// an empty list. An unreadable or corrupt file degrades to an empty list as
// well, logged rather than propagated, so a damaged file never blocks play.
func (s *Store) Load() List {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Highscore file unreadable, starting empty", "path", s.path, "error", err)
		}
		return List{}
	}

	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.Warn("Highscore file corrupt, starting empty", "path", s.path, "error", err)
		return List{}
	}

	list.sort()
	if len(list) > MaxEntries {
		list = list[:MaxEntries]
	}
	return list
}

// Save persists the list via an atomic temp-file-then-rename so a crash
// mid-write never leaves a file Load cannot parse
func (s *Store) Save(list List) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding highscores: %w", err)
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("saving highscores: %w", err)
	}
	return nil
}

// Submit records a cash-out. The entry makes the list when a slot is free or
// the balance beats the current minimum; the list is re-sorted, truncated to
// MaxEntries and saved immediately. It reports whether the submission made
// the list; a save failure is returned but the round's accounting is
// unaffected.
func (s *Store) Submit(name string, balance int) (bool, error) {
	list := s.Load()
	if !list.Qualifies(balance) {
		return false, nil
	}

	list = append(list, Record{
		Name:    name,
		Balance: balance,
		Date:    s.clock.Now().Format(DateFormat),
	})
	list.sort()
	if len(list) > MaxEntries {
		list = list[:MaxEntries]
	}

	if err := s.Save(list); err != nil {
		return true, err
	}

	s.logger.Info("Highscore recorded", "name", name, "balance", balance)
	return true, nil
}
