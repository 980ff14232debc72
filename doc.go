// Package pricesync incrementally extends per-account price ledgers with
// newly available daily market data.
//
// A ledger is an append-only CSV file holding one record per trading day.
// On every run, and for every account, the engine:
//   - reads the last recorded date from the ledger (scanning backward from
//     the end of the file, so arbitrarily large ledgers stay cheap),
//   - computes the half-open fetch window starting the day after,
//   - asks the market data provider for that window,
//   - parses the provider's CSV response into validated records,
//   - appends the new records to the ledger, preserving its format.
//
// Days already recorded are never fetched again and never duplicated.
// Accounts are processed sequentially and independently: a failure on one
// account is reported and the run moves on to the next.
//
// This package holds the sync engine itself; the `yahoo` subpackage
// implements the provider client, and the `psync` command-line tool drives
// a registry of accounts through it.
package pricesync
