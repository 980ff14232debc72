package pricesync

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// stubClient serves canned responses per ticker and records the windows it
// was asked for.
type stubClient struct {
	responses map[string]string
	err       error
	fetched   []string
	windows   map[string]SyncWindow
}

func (c *stubClient) Fetch(ticker string, w SyncWindow) (string, error) {
	c.fetched = append(c.fetched, ticker)
	if c.windows == nil {
		c.windows = make(map[string]SyncWindow)
	}
	c.windows[ticker] = w
	if c.err != nil {
		return "", c.err
	}
	return c.responses[ticker], nil
}

func fixedNow(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestSyncer_AppendsDelta(t *testing.T) {
	ledger := writeLedger(t, "2021-08-16,FIDELITY,Investment Status,FOO @ Open: 1,0.00\n")
	client := &stubClient{responses: map[string]string{
		"FOO": "Date,Open,High,Low,Close,Adj Close,Volume\n" +
			"2021-08-17,240.570007,255.330002,239.860001,255.139999,255.139999,47553800\n",
	}}
	s := &Syncer{Client: client, Now: fixedNow(time.Date(2021, 8, 20, 12, 0, 0, 0, time.UTC))}

	if err := s.Sync([]Account{{Ticker: "FOO", Ledger: ledger}}); err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}

	content, err := os.ReadFile(ledger)
	if err != nil {
		t.Fatal(err)
	}
	want := "2021-08-16,FIDELITY,Investment Status,FOO @ Open: 1,0.00\n" +
		"2021-08-17,FIDELITY,Investment Status,FOO @ Open: 240.570007 @ High: 255.330002 @ Low: 239.860001 @ Close: 255.139999 @ Adj Close: 255.139999 @ Volume: 47553800,0.00\n"
	if string(content) != want {
		t.Errorf("ledger after sync:\n%s\nwant:\n%s", content, want)
	}

	// The requested window starts the day after the ledger's last date.
	w := client.windows["FOO"]
	if got := w.FirstDay().String(); got != "2021-08-17" {
		t.Errorf("fetched window starts %s, want 2021-08-17", got)
	}
}

// TestSyncer_NoOpWhenNothingNewer is the round-trip property: the provider
// resends only already-recorded days, so nothing is appended.
func TestSyncer_NoOpWhenNothingNewer(t *testing.T) {
	before := "2021-11-28,FIDELITY,Investment Status,FOO @ Open: 1,0.00\n" +
		"2021-11-29,FIDELITY,Investment Status,FOO @ Open: 2,0.00\n" +
		"2021-11-30,FIDELITY,Investment Status,FOO @ Open: 3,0.00\n"
	ledger := writeLedger(t, before)
	client := &stubClient{responses: map[string]string{
		"FOO": "Date,Open,High,Low,Close,Adj Close,Volume\n" +
			"2021-11-28,1,2,3,4,5,6\n" +
			"2021-11-29,1,2,3,4,5,6\n" +
			"2021-11-30,1,2,3,4,5,6\n",
	}}
	s := &Syncer{Client: client, Now: fixedNow(time.Date(2021, 12, 2, 12, 0, 0, 0, time.UTC))}

	if err := s.Sync([]Account{{Ticker: "FOO", Ledger: ledger}}); err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}
	content, err := os.ReadFile(ledger)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != before {
		t.Errorf("ledger changed on a no-op sync:\n%s", content)
	}
}

// TestSyncer_EmptyWindow checks that an up-to-date ledger short-circuits
// before the fetch: the provider is not called at all.
func TestSyncer_EmptyWindow(t *testing.T) {
	ledger := writeLedger(t, "2021-08-20,FIDELITY,Investment Status,FOO @ Open: 1,0.00\n")
	client := &stubClient{}
	s := &Syncer{Client: client, Now: fixedNow(time.Date(2021, 8, 20, 18, 0, 0, 0, time.UTC))}

	if err := s.Sync([]Account{{Ticker: "FOO", Ledger: ledger}}); err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}
	if len(client.fetched) != 0 {
		t.Errorf("provider fetched for %v on an empty window", client.fetched)
	}
}

// TestSyncer_IsolatesFailures checks that a failing account does not stop
// the batch: the remaining accounts still sync, and the aggregate error
// reports the failure.
func TestSyncer_IsolatesFailures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")
	good := writeLedger(t, "2021-08-16,FIDELITY,Investment Status,BAR @ Open: 1,0.00\n")
	client := &stubClient{responses: map[string]string{
		"BAR": "Date,Open,High,Low,Close,Adj Close,Volume\n" +
			"2021-08-17,1,2,3,4,5,6\n",
	}}
	s := &Syncer{Client: client, Now: fixedNow(time.Date(2021, 8, 20, 12, 0, 0, 0, time.UTC))}

	err := s.Sync([]Account{
		{Ticker: "FOO", Ledger: missing},
		{Ticker: "BAR", Ledger: good},
	})
	if !errors.Is(err, ErrOpenLedger) {
		t.Errorf("Sync() error = %v, want %v", err, ErrOpenLedger)
	}

	// The second account was still synced.
	content, readErr := os.ReadFile(good)
	if readErr != nil {
		t.Fatal(readErr)
	}
	want := "2021-08-16,FIDELITY,Investment Status,BAR @ Open: 1,0.00\n" +
		"2021-08-17,FIDELITY,Investment Status,BAR @ Open: 1 @ High: 2 @ Low: 3 @ Close: 4 @ Adj Close: 5 @ Volume: 6,0.00\n"
	if string(content) != want {
		t.Errorf("second account not synced, ledger:\n%s\nwant:\n%s", content, want)
	}
	if len(client.fetched) != 1 || client.fetched[0] != "BAR" {
		t.Errorf("fetched %v, want [BAR]", client.fetched)
	}
}

// TestSyncer_FetchFailure checks that a fetch error fails the account
// without touching its ledger.
func TestSyncer_FetchFailure(t *testing.T) {
	before := "2021-08-16,FIDELITY,Investment Status,FOO @ Open: 1,0.00\n"
	ledger := writeLedger(t, before)
	client := &stubClient{err: ErrTransport}
	s := &Syncer{Client: client, Now: fixedNow(time.Date(2021, 8, 20, 12, 0, 0, 0, time.UTC))}

	err := s.Sync([]Account{{Ticker: "FOO", Ledger: ledger}})
	if !errors.Is(err, ErrTransport) {
		t.Errorf("Sync() error = %v, want %v", err, ErrTransport)
	}
	content, readErr := os.ReadFile(ledger)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(content) != before {
		t.Errorf("ledger changed on a failed fetch:\n%s", content)
	}
}

// TestSyncer_EmptyDelta checks that a response with no new rows skips the
// append entirely.
func TestSyncer_EmptyDelta(t *testing.T) {
	before := "2021-08-16,FIDELITY,Investment Status,FOO @ Open: 1,0.00\n"
	ledger := writeLedger(t, before)
	client := &stubClient{responses: map[string]string{
		"FOO": "Date,Open,High,Low,Close,Adj Close,Volume\n",
	}}
	s := &Syncer{Client: client, Now: fixedNow(time.Date(2021, 8, 20, 12, 0, 0, 0, time.UTC))}

	if err := s.Sync([]Account{{Ticker: "FOO", Ledger: ledger}}); err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}
	content, err := os.ReadFile(ledger)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != before {
		t.Errorf("ledger changed on an empty delta:\n%s", content)
	}
}
