package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/foodbao/admin-api/internal/config"
    "github.com/foodbao/admin-api/internal/middleware"
    "github.com/foodbao/admin-api/internal/model"
    "github.com/foodbao/admin-api/internal/supabase"
    "github.com/foodbao/admin-api/internal/utils"
)

// ClientHandler serves the client (vendor account) endpoints over the
// unified userfile table plus the app_users credentials table.
type ClientHandler struct {
    Cfg config.Config
    DB  *supabase.Client
}

func NewClientHandler(cfg config.Config, db *supabase.Client) *ClientHandler {
    return &ClientHandler{Cfg: cfg, DB: db}
}

// List handles GET /api/clients.  An optional ?search= term matches
// username, email, business name or phone with a case-insensitive substring
// OR-filter; the response carries the exact total count from upstream.
func (h *ClientHandler) List(c echo.Context) error {
    search := strings.TrimSpace(c.QueryParam("search"))
    q := supabase.Query{Select: model.ClientColumns, Count: true}
    if search != "" {
        q.Or = []supabase.Filter{
            supabase.ILike("USERNAME", search),
            supabase.ILike("EMAIL", search),
            supabase.ILike("BUSINESSNAME", search),
            supabase.ILike("PHONE_NUMBER", search),
        }
    }

    var rows []model.Account
    count, err := h.DB.Select(c.Request().Context(), "userfile", q, &rows)
    if err != nil {
        return upstreamFail(c, err, "Error fetching clients")
    }
    items := make([]model.ClientSummary, 0, len(rows))
    for _, r := range rows {
        items = append(items, r.Summary())
    }
    if count < 0 {
        count = int64(len(items))
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "items": items, "count": count})
}

// GetByUsername handles GET /api/clients/by-username/:username.
func (h *ClientHandler) GetByUsername(c echo.Context) error {
    norm := model.NormalizeUsername(c.Param("username"))
    if norm == "" {
        return fail(c, http.StatusBadRequest, "Username is required")
    }
    var rows []model.Account
    if _, err := h.DB.Select(c.Request().Context(), "userfile",
        supabase.Query{}.Where(supabase.Eq("USERNAME", norm)), &rows); err != nil {
        return upstreamFail(c, err, "Error fetching client")
    }
    if len(rows) == 0 {
        return fail(c, http.StatusNotFound, "Client not found")
    }
    acct := rows[0]
    acct.PasswordHash = "" // never serialized back to the browser
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": acct})
}

// createClientReq is the authoritative create payload.  Field names are the
// lower-case convention the admin UI sends.
type createClientReq struct {
    Username      string  `json:"username"`
    Email         string  `json:"email"`
    Password      string  `json:"password"`
    Role          string  `json:"user_role"`
    BusinessName  string  `json:"businessname"`
    BusinessChn   string  `json:"businesschn"`
    ClientType    string  `json:"client_type"`
    Category      string  `json:"catogery"`
    HawkerID      string  `json:"hawkerid"`
    Status        string  `json:"status"`
    Address       string  `json:"address"`
    City          string  `json:"city"`
    State         string  `json:"state"`
    Country       string  `json:"country"`
    ContactPerson string  `json:"contact_person"`
    PhoneNumber   string  `json:"phone_number"`
    CreditBalance float64 `json:"credit_balance"`
    DailyRate     float64 `json:"daily_rate"`
    BackgroundImg string  `json:"background_imgurl"`
    BannerImg     string  `json:"banner_imgurl"`
}

// Create handles POST /api/clients: duplicate check, credentials row via the
// upstream RPC functions, then the userfile profile row.  The three steps
// are independent writes; a failure is reported where it happens.
func (h *ClientHandler) Create(c echo.Context) error {
    var req createClientReq
    if err := c.Bind(&req); err != nil {
        return fail(c, http.StatusBadRequest, "Invalid request body")
    }
    req.Username = strings.TrimSpace(req.Username)
    req.Email = strings.TrimSpace(req.Email)
    if req.Username == "" || req.Email == "" {
        return fail(c, http.StatusBadRequest, "Username and email are required")
    }
    norm := model.NormalizeUsername(req.Username)

    ctx, cancel := contextWithTimeout(c)
    defer cancel()

    // Duplicate check first so the caller gets a clean 409.  The window
    // between check and insert is not closed here; the upstream unique
    // constraint still backstops it.
    var existing []model.Account
    if _, err := h.DB.Select(ctx, "userfile",
        supabase.Query{Select: "ID"}.Where(supabase.Eq("USERNAME", norm)), &existing); err != nil {
        return upstreamFail(c, err, "Error checking username")
    }
    if len(existing) > 0 {
        return fail(c, http.StatusConflict, "Username already exists")
    }

    var userID string
    if err := h.DB.RPC(ctx, "get_new_uuid", nil, &userID); err != nil {
        return upstreamFail(c, err, "Error allocating user id")
    }

    password := req.Password
    if password == "" {
        password = req.Username // legacy default kept from the previous flow
    }
    hash, err := utils.HashPassword(password, h.Cfg.BcryptCost)
    if err != nil {
        return fail(c, http.StatusInternalServerError, "Error hashing password")
    }
    role := req.Role
    if role == "" {
        role = "user"
    }
    if err := h.DB.RPC(ctx, "create_user_with_hashed_password", map[string]any{
        "p_id":        userID,
        "p_username":  norm,
        "p_email":     req.Email,
        "p_password":  hash,
        "p_user_role": role,
    }, nil); err != nil {
        if supabase.IsConflict(err) {
            return fail(c, http.StatusConflict, "Username or email already exists")
        }
        return upstreamFail(c, err, "Error creating user account")
    }

    now := nowISO()
    status := req.Status
    if status == "" {
        status = "ACTIVE"
    }
    clientType := req.ClientType
    if clientType == "" {
        clientType = "OTHER"
    }
    businessName := req.BusinessName
    if businessName == "" {
        businessName = req.Username
    }
    row := model.Account{
        UserID:        userID,
        Username:      norm,
        Email:         req.Email,
        Role:          role,
        Status:        status,
        BusinessName:  businessName,
        BusinessChn:   req.BusinessChn,
        ClientType:    clientType,
        Category:      req.Category,
        HawkerID:      req.HawkerID,
        Address:       req.Address,
        City:          req.City,
        State:         req.State,
        Country:       req.Country,
        ContactPerson: req.ContactPerson,
        PhoneNumber:   req.PhoneNumber,
        CreditBalance: req.CreditBalance,
        DailyRate:     req.DailyRate,
        BackgroundImg: req.BackgroundImg,
        BannerImg:     req.BannerImg,
        CreatedAt:     now,
        CreatedBy:     actor(c, norm),
        UpdatedAt:     now,
        UpdatedBy:     actor(c, norm),
    }
    var created []model.Account
    if err := h.DB.Insert(ctx, "userfile", []model.Account{row}, &created); err != nil {
        if supabase.IsConflict(err) {
            return fail(c, http.StatusConflict, "Username already exists")
        }
        return upstreamFail(c, err, "Error creating client profile")
    }
    data := row
    if len(created) > 0 {
        data = created[0]
    }
    data.PasswordHash = ""
    return c.JSON(http.StatusCreated, echo.Map{
        "success": true,
        "message": "Client created successfully",
        "data":    data,
    })
}

// Update handles PUT/PATCH /api/clients/:username.  Only fields present in
// the static field map are patchable; audit columns are stamped here.
func (h *ClientHandler) Update(c echo.Context) error {
    norm := model.NormalizeUsername(c.Param("username"))
    if norm == "" {
        return fail(c, http.StatusBadRequest, "Username is required")
    }
    var body map[string]any
    if err := c.Bind(&body); err != nil {
        return fail(c, http.StatusBadRequest, "Invalid request body")
    }

    patch := map[string]any{}
    for field, val := range body {
        if col, ok := model.ClientFieldToColumn[strings.ToLower(field)]; ok {
            patch[col] = val
        }
    }
    if len(patch) == 0 {
        return fail(c, http.StatusBadRequest, "No updatable fields in request")
    }
    patch["UPDATED_AT"] = nowISO()
    patch["UPDATED_BY"] = actor(c, "system")

    ctx, cancel := contextWithTimeout(c)
    defer cancel()

    var rows []model.Account
    if _, err := h.DB.Select(ctx, "userfile",
        supabase.Query{Select: "ID"}.Where(supabase.Eq("USERNAME", norm)), &rows); err != nil {
        return upstreamFail(c, err, "Error fetching client")
    }
    if len(rows) == 0 {
        return fail(c, http.StatusNotFound, "Client not found")
    }
    if err := h.DB.Update(ctx, "userfile",
        supabase.Query{}.Where(supabase.Eq("USERNAME", norm)), patch); err != nil {
        return upstreamFail(c, err, "Error updating client")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Client updated successfully"})
}

// Delete handles DELETE /api/clients/:username.  The profile row goes
// first, then the dependent credentials row; there is no rollback when the
// cascade fails, only an explicit error to the caller.
func (h *ClientHandler) Delete(c echo.Context) error {
    norm := model.NormalizeUsername(c.Param("username"))
    if norm == "" {
        return fail(c, http.StatusBadRequest, "Username is required")
    }
    ctx, cancel := contextWithTimeout(c)
    defer cancel()

    var rows []model.Account
    if _, err := h.DB.Select(ctx, "userfile",
        supabase.Query{Select: "ID,USERID,USERNAME"}.Where(supabase.Eq("USERNAME", norm)), &rows); err != nil {
        return upstreamFail(c, err, "Error fetching client")
    }
    if len(rows) == 0 {
        return fail(c, http.StatusNotFound, "Client not found")
    }

    if err := h.DB.Delete(ctx, "userfile",
        supabase.Query{}.Where(supabase.Eq("USERNAME", norm))); err != nil {
        return upstreamFail(c, err, "Error deleting client")
    }
    if uid := rows[0].UserID; uid != "" {
        if err := h.DB.Delete(ctx, "app_users",
            supabase.Query{}.Where(supabase.Eq("id", uid))); err != nil {
            c.Logger().Errorf("client delete: credentials cleanup failed for %s: %v", norm, err)
            return fail(c, http.StatusInternalServerError,
                "Client deleted but credentials cleanup failed")
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Client deleted successfully"})
}

// actor names who performed a mutation for the audit columns, falling back
// when the request carries no verified identity.
func actor(c echo.Context, fallback string) string {
    if sc, ok := middleware.CurrentClaims(c); ok && sc.Username != "" {
        return sc.Username
    }
    return fallback
}
