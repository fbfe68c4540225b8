package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/foodbao/admin-api/internal/model"
    "github.com/foodbao/admin-api/internal/supabase"
)

// ListMenuItems handles GET /api/menu-items.
func (h *CatalogHandler) ListMenuItems(c echo.Context) error {
    var items []model.MenuItem
    if _, err := h.DB.Select(c.Request().Context(), "menu_items", supabase.Query{}, &items); err != nil {
        return upstreamFail(c, err, "Error fetching menu items")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}

// GetMenuItem handles GET /api/menu-items/:id.
func (h *CatalogHandler) GetMenuItem(c echo.Context) error {
    id := c.Param("id")
    var items []model.MenuItem
    if _, err := h.DB.Select(c.Request().Context(), "menu_items",
        supabase.Query{}.Where(supabase.Eq("ITEM_ID", id)), &items); err != nil {
        return upstreamFail(c, err, "Error fetching menu item")
    }
    if len(items) == 0 {
        return fail(c, http.StatusNotFound, "Menu item not found")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items[0]})
}

type createMenuItemReq struct {
    Name        string   `json:"NAME"`
    Description string   `json:"DESCRIPTION"`
    BasePrice   *float64 `json:"BASE_PRICE"`
    CategoryID  int64    `json:"CATEGORY_ID"`
    ImageURL    string   `json:"IMAGE_URL"`
    Status      string   `json:"STATUS"`
    UpdatedBy   string   `json:"UPDATED_BY"`
}

// CreateMenuItem handles POST /api/menu-items.  NAME and BASE_PRICE are
// required; BASE_PRICE binds through a pointer so an explicit zero price is
// distinguishable from an absent one.
func (h *CatalogHandler) CreateMenuItem(c echo.Context) error {
    var req createMenuItemReq
    if err := c.Bind(&req); err != nil {
        return fail(c, http.StatusBadRequest, "Invalid request body")
    }
    if strings.TrimSpace(req.Name) == "" || req.BasePrice == nil {
        return fail(c, http.StatusBadRequest, "Name and price are required")
    }
    now := nowISO()
    by := actor(c, req.UpdatedBy)
    if by == "" {
        by = "system"
    }
    status := req.Status
    if status == "" {
        status = "ACTIVE"
    }
    row := model.MenuItem{
        Name:        strings.TrimSpace(req.Name),
        Description: req.Description,
        BasePrice:   *req.BasePrice,
        CategoryID:  req.CategoryID,
        ImageURL:    req.ImageURL,
        Status:      status,
        CreatedAt:   now,
        CreatedBy:   by,
        UpdatedAt:   now,
        UpdatedBy:   by,
    }
    var created []model.MenuItem
    if err := h.DB.Insert(c.Request().Context(), "menu_items", []model.MenuItem{row}, &created); err != nil {
        return upstreamFail(c, err, "Error creating menu item")
    }
    data := row
    if len(created) > 0 {
        data = created[0]
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "success": true,
        "message": "Menu item created successfully",
        "data":    data,
    })
}

// UpdateMenuItem handles PUT/PATCH /api/menu-items/:id.
func (h *CatalogHandler) UpdateMenuItem(c echo.Context) error {
    id := c.Param("id")
    var body map[string]any
    if err := c.Bind(&body); err != nil || len(body) == 0 {
        return fail(c, http.StatusBadRequest, "Invalid request body")
    }
    var existing []model.MenuItem
    if _, err := h.DB.Select(c.Request().Context(), "menu_items",
        supabase.Query{Select: "ITEM_ID"}.Where(supabase.Eq("ITEM_ID", id)), &existing); err != nil {
        return upstreamFail(c, err, "Error fetching menu item")
    }
    if len(existing) == 0 {
        return fail(c, http.StatusNotFound, "Menu item not found")
    }
    patch := scrubPatch(body, "ITEM_ID", actor(c, ""))
    if err := h.DB.Update(c.Request().Context(), "menu_items",
        supabase.Query{}.Where(supabase.Eq("ITEM_ID", id)), patch); err != nil {
        return upstreamFail(c, err, "Error updating menu item")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Menu item updated successfully"})
}

// DeleteMenuItem handles DELETE /api/menu-items/:id.
func (h *CatalogHandler) DeleteMenuItem(c echo.Context) error {
    id := c.Param("id")
    if err := h.DB.Delete(c.Request().Context(), "menu_items",
        supabase.Query{}.Where(supabase.Eq("ITEM_ID", id))); err != nil {
        return upstreamFail(c, err, "Error deleting menu item")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Menu item deleted successfully"})
}
