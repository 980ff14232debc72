package pricesync

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// Syncer drives the incremental sync of a list of accounts against a
// market data provider.
type Syncer struct {
	Client MarketDataClient

	// Now is the clock closing every fetch window. Defaults to time.Now;
	// tests pin it.
	Now func() time.Time
}

func (s *Syncer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Sync runs the pipeline for every account in order, sequentially: each
// account runs to completion, success or failure, before the next one
// starts. No two accounts share state, so no locking is involved.
//
// A failing account is logged and does not stop the run; the remaining
// accounts are still attempted. The returned error joins the per-account
// failures for reporting, it never reflects a batch-level abort: there is
// no such thing.
func (s *Syncer) Sync(accounts []Account) error {
	var errs error
	for _, a := range accounts {
		n, err := s.syncAccount(a)
		if err != nil {
			log.Printf("sync %s: %v", a.Ticker, err)
			errs = errors.Join(errs, fmt.Errorf("account %s: %w", a.Ticker, err))
			continue
		}
		if n == 0 {
			log.Printf("sync %s: up to date", a.Ticker)
		} else {
			log.Printf("sync %s: appended %d records to %s", a.Ticker, n, a.Ledger)
		}
	}
	return errs
}

// syncAccount runs one account's pipeline to completion and returns the
// number of records appended:
//
//	read last date -> compute window -> fetch -> parse -> append
//
// Any step's error fails the account as a whole.
func (s *Syncer) syncAccount(a Account) (int, error) {
	last, err := LastRecordedDate(a.Ledger)
	if err != nil {
		return 0, err
	}

	w := WindowFrom(last, s.now())
	if w.Empty() {
		// The ledger already holds today; nothing to fetch.
		return 0, nil
	}

	raw, err := s.Client.Fetch(a.Ticker, w)
	if err != nil {
		return 0, err
	}

	// Keep only days the window actually asked for: a provider resending
	// already-recorded days must not produce duplicates in the ledger.
	first := w.FirstDay()
	var records []Record
	for r := range ParseDelta(a.Ticker, raw) {
		if r.Date.Before(first) {
			continue
		}
		records = append(records, r)
	}
	if len(records) == 0 {
		// Short-circuit: skip the append entirely so the ledger file is
		// not even opened.
		return 0, nil
	}

	if err := AppendRecords(a.Ledger, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
