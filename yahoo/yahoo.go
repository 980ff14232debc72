// Package yahoo implements the market data client against the Yahoo
// Finance daily history download endpoint.
package yahoo

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/etnz/pricesync"
)

// The endpoint serves CSV with the header
//
//	Date,Open,High,Low,Close,Adj Close,Volume
//
// followed by one row per trading day. Bounds are unix timestamps and the
// fixed parameters select the daily interval and the split/dividend
// adjusted history.
const downloadURL = "https://query1.finance.yahoo.com/v7/finance/download"

// Client fetches daily price history. The zero value is not usable; use
// NewClient.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a Client backed by a disk-cached HTTP transport, so
// that re-running a sync on the same day replays the same responses
// instead of hammering the provider.
func NewClient() *Client {
	return &Client{base: downloadURL, http: newDailyCachingClient()}
}

// Fetch implements pricesync.MarketDataClient: it returns the raw CSV
// history of the ticker for days within the window.
func (c *Client) Fetch(ticker string, w pricesync.SyncWindow) (string, error) {
	addr := fmt.Sprintf("%s/%s?period1=%d&period2=%d&interval=1d&events=history&includeAdjustedClose=true",
		c.base, url.PathEscape(ticker), w.From.Unix(), w.To.Unix())
	return wget(c.http, addr)
}

var _ pricesync.MarketDataClient = (*Client)(nil)
