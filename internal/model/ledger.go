package model

// Transaction kinds accepted by the credit-ledger endpoint.  CREDIT and
// DEBIT apply a signed amount on top of the current balance (the caller
// signs debits negative); ADJUSTMENT sets the balance to the amount.
const (
    TxCredit     = "CREDIT"
    TxDebit      = "DEBIT"
    TxAdjustment = "ADJUSTMENT"
)

// ValidTransactionType reports whether t is one of the three kinds.
func ValidTransactionType(t string) bool {
    return t == TxCredit || t == TxDebit || t == TxAdjustment
}

// LedgerEntry mirrors one row of the append-only `credit_ledgers` table.
// Unlike userfile, this table uses lower-case columns.  Entries are written
// exactly once and never mutated.
//
// Invariant: ClosingBalance == OpeningBalance + Amount for CREDIT/DEBIT and
// ClosingBalance == Amount for ADJUSTMENT.
type LedgerEntry struct {
    ID              int64   `json:"id,omitempty"`
    Username        string  `json:"username"`
    TransactionType string  `json:"transaction_type"`
    Amount          float64 `json:"amount"`
    OpeningBalance  float64 `json:"opening_balance"`
    ClosingBalance  float64 `json:"closing_balance"`
    Description     string  `json:"description,omitempty"`
    TransactionDate string  `json:"transaction_date,omitempty"`
}
