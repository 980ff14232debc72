package pricesync

import "errors"

// MarketDataClient fetches raw daily price history for a ticker over a
// window. Implementations live outside the engine (see the yahoo package);
// the engine only needs the text of the response.
type MarketDataClient interface {
	// Fetch returns the provider's raw response for the ticker restricted
	// to the window, or one of the fetch error kinds below. The engine does
	// not retry: a failed fetch fails the account for this run.
	Fetch(ticker string, w SyncWindow) (string, error)
}

// Fetch error kinds. Implementations of MarketDataClient wrap one of these
// so the orchestrator's diagnostics can name what went wrong.
var (
	// ErrTransport reports a connection-level failure (DNS, refused, timeout).
	ErrTransport = errors.New("market data transport failure")
	// ErrStatus reports a response with a non-success status.
	ErrStatus = errors.New("market data request refused")
	// ErrBody reports a response body that could not be fully read.
	ErrBody = errors.New("market data response unreadable")
)
