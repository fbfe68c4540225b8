// Package queue defines message payloads exchanged over the message broker.
package queue

// CreditTransactionEvent is published after a credit-ledger transaction has
// been fully applied (ledger row inserted and balance written back).  It
// carries enough for downstream consumers to log or reconcile without
// querying the primary database.
type CreditTransactionEvent struct {
    EventID         string  `json:"event_id"`
    Username        string  `json:"username"`
    TransactionType string  `json:"transaction_type"`
    Amount          float64 `json:"amount"`
    OpeningBalance  float64 `json:"opening_balance"`
    ClosingBalance  float64 `json:"closing_balance"`
    Description     string  `json:"description,omitempty"`
    AppliedAt       string  `json:"applied_at"`
}

// BalanceWritebackFailedEvent is the alert for the one unguarded
// partial-failure window in the ledger flow: the ledger row was inserted but
// the balance write-back onto the account failed, so the stored balance no
// longer matches the ledger's closing balance until someone reconciles it.
type BalanceWritebackFailedEvent struct {
    EventID         string  `json:"event_id"`
    Username        string  `json:"username"`
    ExpectedBalance float64 `json:"expected_balance"`
    Error           string  `json:"error"`
    OccurredAt      string  `json:"occurred_at"`
}
