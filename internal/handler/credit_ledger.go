package handler

import (
    "context"
    "math"
    "net/http"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/foodbao/admin-api/internal/config"
    "github.com/foodbao/admin-api/internal/model"
    "github.com/foodbao/admin-api/internal/queue"
    queue_publisher "github.com/foodbao/admin-api/internal/service"
    "github.com/foodbao/admin-api/internal/supabase"
)

// LedgerEvents receives the credit-ledger domain events.  The broker
// implementation is the default; tests substitute their own.
type LedgerEvents interface {
    CreditApplied(ctx context.Context, ev queue.CreditTransactionEvent)
    WritebackFailed(ctx context.Context, ev queue.BalanceWritebackFailedEvent)
}

type brokerEvents struct{}

func (brokerEvents) CreditApplied(ctx context.Context, ev queue.CreditTransactionEvent) {
    _ = queue_publisher.PublishCreditApplied(ctx, ev)
}

func (brokerEvents) WritebackFailed(ctx context.Context, ev queue.BalanceWritebackFailedEvent) {
    _ = queue_publisher.PublishWritebackFailed(ctx, ev)
}

// LedgerHandler serves the credit-ledger endpoints: the history query and
// the balance-changing transaction.
type LedgerHandler struct {
    Cfg    config.Config
    DB     *supabase.Client
    Events LedgerEvents
}

func NewLedgerHandler(cfg config.Config, db *supabase.Client) *LedgerHandler {
    return &LedgerHandler{Cfg: cfg, DB: db, Events: brokerEvents{}}
}

// List handles GET /api/credit-ledgers.  Username is required; startDate,
// endDate and transactionType narrow the result.  endDate is inclusive of
// the whole day, so the filter is a strict less-than of the next day.
func (h *LedgerHandler) List(c echo.Context) error {
    username := model.NormalizeUsername(c.QueryParam("username"))
    if username == "" {
        return fail(c, http.StatusBadRequest, "Username parameter is required")
    }
    q := supabase.Query{Order: "transaction_date.desc"}.
        Where(supabase.Eq("username", username))
    if v := c.QueryParam("startDate"); v != "" {
        q = q.Where(supabase.Gte("transaction_date", v))
    }
    if v := c.QueryParam("endDate"); v != "" {
        day, err := time.Parse("2006-01-02", v)
        if err != nil {
            return fail(c, http.StatusBadRequest, "Invalid endDate")
        }
        q = q.Where(supabase.Lt("transaction_date", day.AddDate(0, 0, 1).Format("2006-01-02")))
    }
    if v := c.QueryParam("transactionType"); v != "" {
        q = q.Where(supabase.Eq("transaction_type", v))
    }

    var entries []model.LedgerEntry
    if _, err := h.DB.Select(c.Request().Context(), "credit_ledgers", q, &entries); err != nil {
        return upstreamFail(c, err, "Error fetching credit ledger")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": entries})
}

type transactionReq struct {
    Username        string   `json:"username"`
    Amount          *float64 `json:"amount"`
    TransactionType string   `json:"transaction_type"`
    Description     string   `json:"description"`
}

// Transact handles POST /api/credit-ledgers: the one multi-step flow in the
// system.  Read the balance, compute the new one, append the ledger row,
// then write the balance back onto the account.  The last two writes are
// independent; a write-back failure after a successful insert is the known
// partial-failure window and is reported loudly instead of rolled back.
func (h *LedgerHandler) Transact(c echo.Context) error {
    var req transactionReq
    if err := c.Bind(&req); err != nil {
        return fail(c, http.StatusBadRequest, "Invalid request body")
    }
    req.Username = strings.TrimSpace(req.Username)
    if req.Username == "" {
        return fail(c, http.StatusBadRequest, "Username is required")
    }
    if req.Amount == nil || math.IsNaN(*req.Amount) || math.IsInf(*req.Amount, 0) {
        return fail(c, http.StatusBadRequest, "Valid amount is required")
    }
    if !model.ValidTransactionType(req.TransactionType) {
        return fail(c, http.StatusBadRequest, "Valid transaction type is required (CREDIT, DEBIT, or ADJUSTMENT)")
    }

    ctx, cancel := contextWithTimeout(c)
    defer cancel()
    norm := model.NormalizeUsername(req.Username)

    // Step 1: current balance.
    var rows []model.Account
    if _, err := h.DB.Select(ctx, "userfile",
        supabase.Query{}.Where(supabase.Eq("USERNAME", norm)), &rows); err != nil {
        return upstreamFail(c, err, "Error fetching client")
    }
    if len(rows) == 0 {
        return fail(c, http.StatusNotFound, "Client not found")
    }
    opening := rows[0].CreditBalance
    amount := *req.Amount

    // Step 2: compute.  ADJUSTMENT sets the balance outright; CREDIT and
    // DEBIT add the signed amount (the caller signs debits negative).
    closing := opening + amount
    if req.TransactionType == model.TxAdjustment {
        closing = amount
    }

    description := req.Description
    if description == "" {
        description = req.TransactionType + " transaction"
    }
    // Ledger rows store the same normalized username the account row keys
    // on, so history queries line up regardless of input casing.
    entry := model.LedgerEntry{
        Username:        norm,
        TransactionType: req.TransactionType,
        Amount:          amount,
        OpeningBalance:  opening,
        ClosingBalance:  closing,
        Description:     description,
    }

    // Step 3: append the ledger row.  A failure here aborts with nothing
    // written.
    var created []model.LedgerEntry
    if err := h.DB.Insert(ctx, "credit_ledgers", []model.LedgerEntry{entry}, &created); err != nil {
        return upstreamFail(c, err, "Error creating ledger entry")
    }

    // Step 4: write the balance back.  From here the ledger row exists, so
    // a failure leaves the stored balance behind the ledger until someone
    // reconciles; raise the alert and tell the caller exactly that.
    patch := map[string]any{"CREDIT_BALANCE": closing, "UPDATED_AT": nowISO()}
    if err := h.DB.Update(ctx, "userfile",
        supabase.Query{}.Where(supabase.Eq("USERNAME", norm)), patch); err != nil {
        c.Logger().Errorf("credit transaction: balance write-back failed for %s (expected %.2f): %v", norm, closing, err)
        h.Events.WritebackFailed(context.WithoutCancel(ctx), queue.BalanceWritebackFailedEvent{
            EventID:         uuid.NewString(),
            Username:        norm,
            ExpectedBalance: closing,
            Error:           err.Error(),
            OccurredAt:      nowISO(),
        })
        return fail(c, http.StatusInternalServerError,
            "Ledger entry recorded but balance update failed")
    }

    data := entry
    if len(created) > 0 {
        data = created[0]
    }
    h.Events.CreditApplied(context.WithoutCancel(ctx), queue.CreditTransactionEvent{
        EventID:         uuid.NewString(),
        Username:        norm,
        TransactionType: req.TransactionType,
        Amount:          amount,
        OpeningBalance:  opening,
        ClosingBalance:  closing,
        Description:     description,
        AppliedAt:       nowISO(),
    })

    return c.JSON(http.StatusOK, echo.Map{
        "success":    true,
        "message":    "Transaction completed successfully",
        "data":       data,
        "newBalance": closing,
    })
}
