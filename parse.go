package pricesync

import (
	"iter"
	"strings"

	"github.com/etnz/pricesync/date"
	"github.com/shopspring/decimal"
)

// The provider's response is line-oriented CSV: a header line followed by
// one row per trading day, in the column order
//
//	Date,Open,High,Low,Close,Adj Close,Volume

// noteLabels name the price columns folded into a record's note, in
// response column order.
var noteLabels = [...]string{"Open", "High", "Low", "Close", "Adj Close", "Volume"}

// deltaFields is the column count of a well-formed response row.
const deltaFields = 1 + len(noteLabels)

// ParseDelta parses a provider response into a lazy sequence of Records for
// the given ticker, in response order, in a single pass over the lines.
//
// The first line is always the header and is discarded on position alone,
// whatever its content. Every other line must split into at least
// deltaFields comma-separated fields, the first being a valid calendar
// date; lines that don't are silently skipped. One bad row never fails the
// batch.
//
// The price fields are not interpreted: they are folded verbatim into the
// record's note, labeled and joined with " @ ", prefixed with the ticker.
func ParseDelta(ticker, raw string) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		first := true
		for line := range strings.Lines(raw) {
			if first {
				first = false
				continue
			}
			line = strings.TrimRight(line, "\r\n")
			fields := strings.Split(line, ",")
			if len(fields) < deltaFields {
				continue
			}
			day, err := date.Parse(fields[0])
			if err != nil {
				continue
			}

			var note strings.Builder
			note.WriteString(ticker)
			for i, label := range noteLabels {
				note.WriteString(" @ ")
				note.WriteString(label)
				note.WriteString(": ")
				note.WriteString(fields[1+i])
			}

			r := Record{
				Date:     day,
				Payee:    Payee,
				Category: Category,
				Note:     note.String(),
				Amount:   decimal.Zero,
			}
			if !yield(r) {
				return
			}
		}
	}
}
