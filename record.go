package pricesync

import (
	"fmt"

	"github.com/etnz/pricesync/date"
	"github.com/shopspring/decimal"
)

// Constant columns for price-history records. A price record documents the
// state of an investment, it carries no cash amount.
const (
	// Payee is the institution name written in every price record.
	Payee = "FIDELITY"
	// Category is the activity label written in every price record.
	Category = "Investment Status"
)

// Record is a single ledger line: one trading day's price summary for one
// account. It is immutable once constructed, and written to the ledger
// exactly once.
type Record struct {
	Date     date.Date
	Payee    string
	Category string
	Note     string
	Amount   decimal.Decimal
}

// String renders the record in its ledger line form (no trailing newline):
//
//	date,payee,category,note,amount
//
// with the amount always carrying exactly two decimal places.
func (r Record) String() string {
	return fmt.Sprintf("%s,%s,%s,%s,%s", r.Date, r.Payee, r.Category, r.Note, r.Amount.StringFixed(2))
}
