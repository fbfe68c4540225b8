package handler

import (
    "encoding/json"
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/foodbao/admin-api/internal/supabase"
)

// RPCHandler exposes the upstream database's function-call surface to the
// admin UI.  The route is admin-gated in the router; the handler itself is
// a thin passthrough.
type RPCHandler struct {
    DB *supabase.Client
}

func NewRPCHandler(db *supabase.Client) *RPCHandler {
    return &RPCHandler{DB: db}
}

type rpcReq struct {
    FunctionName string          `json:"function_name"`
    Params       json.RawMessage `json:"params"`
}

// Call handles POST /api/supabase-rpc.  The upstream result and status are
// forwarded as-is so the UI sees what the database function answered.
func (h *RPCHandler) Call(c echo.Context) error {
    var req rpcReq
    if err := c.Bind(&req); err != nil {
        return fail(c, http.StatusBadRequest, "Invalid request body")
    }
    if req.FunctionName == "" {
        return fail(c, http.StatusBadRequest, "Missing function_name parameter")
    }
    var params any
    if len(req.Params) > 0 {
        if err := json.Unmarshal(req.Params, &params); err != nil {
            return fail(c, http.StatusBadRequest, "Invalid params")
        }
    }
    var result json.RawMessage
    if err := h.DB.RPC(c.Request().Context(), req.FunctionName, params, &result); err != nil {
        var ue *supabase.UpstreamError
        if errors.As(err, &ue) {
            return c.JSONBlob(ue.Status, []byte(ue.Body))
        }
        return upstreamFail(c, err, "RPC call failed")
    }
    if len(result) == 0 {
        result = json.RawMessage("null")
    }
    return c.JSONBlob(http.StatusOK, result)
}
