package pricesync

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/pricesync/date"
)

// A ledger is a plain CSV file, one Record per line, in chronological
// order, with no header. It pre-exists (created by an out-of-scope import)
// and is only ever appended to. This file implements the two operations the
// sync engine performs on it: reading the last recorded date, and appending
// new records.

// Error kinds produced by ledger operations, so callers can tell a missing
// file from a corrupt one with errors.Is.
var (
	// ErrOpenLedger reports a ledger that cannot be opened for reading.
	ErrOpenLedger = errors.New("cannot open ledger")
	// ErrOpenLedgerWrite reports a ledger that cannot be opened for appending.
	ErrOpenLedgerWrite = errors.New("cannot open ledger for writing")
	// ErrEmptyLedger reports a ledger with no record lines.
	ErrEmptyLedger = errors.New("ledger has no records")
	// ErrNoDelimiter reports a last line without any field delimiter.
	ErrNoDelimiter = errors.New("ledger record has no field delimiter")
	// ErrBadLedgerDate reports a last line whose date field does not parse.
	ErrBadLedgerDate = errors.New("ledger record has an invalid date")
)

// LastRecordedDate returns the date of the most recently written record in
// the ledger at path.
//
// The file is scanned backward from its end, so the cost is independent of
// the ledger size. Blank trailing lines are tolerated. The returned date is
// the day already recorded, not the next day to fetch: advancing it is the
// window calculator's job.
func LastRecordedDate(path string) (date.Date, error) {
	f, err := os.Open(path)
	if err != nil {
		return date.Date{}, fmt.Errorf("%w %s: %v", ErrOpenLedger, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return date.Date{}, fmt.Errorf("%w %s: %v", ErrOpenLedger, path, err)
	}

	scanner := NewReverseScanner(f, info.Size())
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		field, _, found := strings.Cut(line, ",")
		if !found {
			return date.Date{}, fmt.Errorf("%w in %s: %q", ErrNoDelimiter, path, line)
		}
		day, err := date.Parse(field)
		if err != nil {
			return date.Date{}, fmt.Errorf("%w in %s: %v", ErrBadLedgerDate, path, err)
		}
		return day, nil
	}
	if err := scanner.Err(); err != nil {
		return date.Date{}, fmt.Errorf("%w %s: %v", ErrOpenLedger, path, err)
	}
	return date.Date{}, fmt.Errorf("%w: %s", ErrEmptyLedger, path)
}

// AppendRecords appends records to the ledger at path, one CSV line each,
// in the order received.
//
// An empty batch is a no-op: the file is not even opened, so its content
// and modification time are untouched. The ledger must pre-exist; this
// function never creates one (a missing ledger is a cold-start condition
// that an import step has to resolve, not the sync).
//
// On a write failure partway through the batch the function stops
// immediately and reports the failure; records already written stay in the
// ledger. The next sync run picks up from wherever the last date now sits,
// so a partial batch heals itself.
func AppendRecords(path string, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrOpenLedgerWrite, path, err)
	}
	defer f.Close()

	for _, r := range records {
		if _, err := fmt.Fprintln(f, r); err != nil {
			return fmt.Errorf("appending record %s to %s: %w", r.Date, path, err)
		}
	}
	return nil
}
