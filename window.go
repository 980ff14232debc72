package pricesync

import (
	"fmt"
	"time"

	"github.com/etnz/pricesync/date"
)

// refHour is the wall-clock reference time anchoring the start of a fetch
// window: 09:00 local, before any exchange close of the day.
const refHour = 9

// SyncWindow is the half-open time range [From, To) requested from the
// market data provider. It is derived fresh on every sync and never
// persisted.
type SyncWindow struct {
	From time.Time
	To   time.Time
}

// WindowFrom computes the fetch window following a ledger whose last
// recorded day is last.
//
// From is the day after last, at the reference time, so the provider is
// never asked to resend the already-recorded day. To is now. When the
// ledger is already up to date the window comes back empty; that is not an
// error, the caller just has nothing to fetch.
func WindowFrom(last date.Date, now time.Time) SyncWindow {
	return SyncWindow{
		From: last.Add(1).At(refHour, 0, now.Location()),
		To:   now,
	}
}

// Empty reports whether the window contains no time at all.
func (w SyncWindow) Empty() bool { return !w.From.Before(w.To) }

// FirstDay returns the first calendar day the window may contain.
func (w SyncWindow) FirstDay() date.Date {
	return date.New(w.From.Date())
}

func (w SyncWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.From.Format(time.RFC3339), w.To.Format(time.RFC3339))
}
