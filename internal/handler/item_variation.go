package handler

import (
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/foodbao/admin-api/internal/model"
    "github.com/foodbao/admin-api/internal/supabase"
)

// ListItemVariations handles GET /api/item-variations.
func (h *CatalogHandler) ListItemVariations(c echo.Context) error {
    var vars []model.ItemVariation
    if _, err := h.DB.Select(c.Request().Context(), "items_variations", supabase.Query{}, &vars); err != nil {
        return upstreamFail(c, err, "Error fetching item variations")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": vars})
}

// GetItemVariation handles GET /api/item-variations/:id.
func (h *CatalogHandler) GetItemVariation(c echo.Context) error {
    id := c.Param("id")
    var vars []model.ItemVariation
    if _, err := h.DB.Select(c.Request().Context(), "items_variations",
        supabase.Query{}.Where(supabase.Eq("VARIATION_ID", id)), &vars); err != nil {
        return upstreamFail(c, err, "Error fetching item variation")
    }
    if len(vars) == 0 {
        return fail(c, http.StatusNotFound, "Item variation not found")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": vars[0]})
}

type createVariationReq struct {
    Name      string   `json:"NAME"`
    ItemID    int64    `json:"ITEM_ID"`
    Price     *float64 `json:"PRICE"`
    Status    string   `json:"STATUS"`
    UpdatedBy string   `json:"UPDATED_BY"`
    // Legacy contract: older UI builds delete through POST with an action
    // field instead of the DELETE method.
    Action      string `json:"action"`
    VariationID int64  `json:"variation_id"`
}

// CreateItemVariation handles POST /api/item-variations, including the
// legacy {action:"delete", variation_id} form.
func (h *CatalogHandler) CreateItemVariation(c echo.Context) error {
    var req createVariationReq
    if err := c.Bind(&req); err != nil {
        return fail(c, http.StatusBadRequest, "Invalid request body")
    }
    if req.Action == "delete" && req.VariationID > 0 {
        if err := h.DB.Delete(c.Request().Context(), "items_variations",
            supabase.Query{}.Where(supabase.Eq("VARIATION_ID", strconv.FormatInt(req.VariationID, 10)))); err != nil {
            return upstreamFail(c, err, "Error deleting item variation")
        }
        return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Variation deleted successfully"})
    }

    if strings.TrimSpace(req.Name) == "" {
        return fail(c, http.StatusBadRequest, "Variation name is required")
    }
    now := nowISO()
    by := actor(c, req.UpdatedBy)
    if by == "" {
        by = "admin"
    }
    status := req.Status
    if status == "" {
        status = "ACTIVE"
    }
    row := model.ItemVariation{
        Name:      strings.TrimSpace(req.Name),
        ItemID:    req.ItemID,
        Status:    status,
        CreatedAt: now,
        CreatedBy: by,
        UpdatedAt: now,
        UpdatedBy: by,
    }
    if req.Price != nil {
        row.Price = *req.Price
    }
    var created []model.ItemVariation
    if err := h.DB.Insert(c.Request().Context(), "items_variations", []model.ItemVariation{row}, &created); err != nil {
        return upstreamFail(c, err, "Error creating item variation")
    }
    data := row
    if len(created) > 0 {
        data = created[0]
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "success": true,
        "message": "Variation created successfully",
        "data":    data,
    })
}

// UpdateItemVariation handles PUT/PATCH /api/item-variations/:id.
func (h *CatalogHandler) UpdateItemVariation(c echo.Context) error {
    id := c.Param("id")
    var body map[string]any
    if err := c.Bind(&body); err != nil || len(body) == 0 {
        return fail(c, http.StatusBadRequest, "Invalid request body")
    }
    var existing []model.ItemVariation
    if _, err := h.DB.Select(c.Request().Context(), "items_variations",
        supabase.Query{Select: "VARIATION_ID"}.Where(supabase.Eq("VARIATION_ID", id)), &existing); err != nil {
        return upstreamFail(c, err, "Error fetching item variation")
    }
    if len(existing) == 0 {
        return fail(c, http.StatusNotFound, "Item variation not found")
    }
    patch := scrubPatch(body, "VARIATION_ID", actor(c, ""))
    if err := h.DB.Update(c.Request().Context(), "items_variations",
        supabase.Query{}.Where(supabase.Eq("VARIATION_ID", id)), patch); err != nil {
        return upstreamFail(c, err, "Error updating item variation")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Variation updated successfully"})
}

// DeleteItemVariation handles DELETE /api/item-variations/:id.
func (h *CatalogHandler) DeleteItemVariation(c echo.Context) error {
    id := c.Param("id")
    if err := h.DB.Delete(c.Request().Context(), "items_variations",
        supabase.Query{}.Where(supabase.Eq("VARIATION_ID", id))); err != nil {
        return upstreamFail(c, err, "Error deleting item variation")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Variation deleted successfully"})
}
