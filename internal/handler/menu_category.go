package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/foodbao/admin-api/internal/model"
    "github.com/foodbao/admin-api/internal/supabase"
)

// ListMenuCategories handles GET /api/menu-categories, ordered for display.
func (h *CatalogHandler) ListMenuCategories(c echo.Context) error {
    var cats []model.MenuCategory
    if _, err := h.DB.Select(c.Request().Context(), "menu_categories",
        supabase.Query{Order: "DISPLAY_ORDER.asc"}, &cats); err != nil {
        return upstreamFail(c, err, "Error fetching menu categories")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": cats})
}

// GetMenuCategory handles GET /api/menu-categories/:id.
func (h *CatalogHandler) GetMenuCategory(c echo.Context) error {
    id := c.Param("id")
    var cats []model.MenuCategory
    if _, err := h.DB.Select(c.Request().Context(), "menu_categories",
        supabase.Query{}.Where(supabase.Eq("CATEGORY_ID", id)), &cats); err != nil {
        return upstreamFail(c, err, "Error fetching menu category")
    }
    if len(cats) == 0 {
        return fail(c, http.StatusNotFound, "Menu category not found")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": cats[0]})
}

type createCategoryReq struct {
    Name         string `json:"NAME"`
    Description  string `json:"DESCRIPTION"`
    DisplayOrder int64  `json:"DISPLAY_ORDER"`
    Status       string `json:"STATUS"`
    UpdatedBy    string `json:"UPDATED_BY"`
}

// CreateMenuCategory handles POST /api/menu-categories.
func (h *CatalogHandler) CreateMenuCategory(c echo.Context) error {
    var req createCategoryReq
    if err := c.Bind(&req); err != nil {
        return fail(c, http.StatusBadRequest, "Invalid request body")
    }
    if strings.TrimSpace(req.Name) == "" {
        return fail(c, http.StatusBadRequest, "Category name is required")
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
    row := model.MenuCategory{
        Name:         strings.TrimSpace(req.Name),
        Description:  req.Description,
        DisplayOrder: req.DisplayOrder,
        Status:       status,
        CreatedAt:    now,
        CreatedBy:    by,
        UpdatedAt:    now,
        UpdatedBy:    by,
    }
    var created []model.MenuCategory
    if err := h.DB.Insert(c.Request().Context(), "menu_categories", []model.MenuCategory{row}, &created); err != nil {
        return upstreamFail(c, err, "Error creating menu category")
    }
    data := row
    if len(created) > 0 {
        data = created[0]
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "success": true,
        "message": "Category created successfully",
        "data":    data,
    })
}

// UpdateMenuCategory handles PUT/PATCH /api/menu-categories/:id.
func (h *CatalogHandler) UpdateMenuCategory(c echo.Context) error {
    id := c.Param("id")
    var body map[string]any
    if err := c.Bind(&body); err != nil || len(body) == 0 {
        return fail(c, http.StatusBadRequest, "Invalid request body")
    }
    var existing []model.MenuCategory
    if _, err := h.DB.Select(c.Request().Context(), "menu_categories",
        supabase.Query{Select: "CATEGORY_ID"}.Where(supabase.Eq("CATEGORY_ID", id)), &existing); err != nil {
        return upstreamFail(c, err, "Error fetching menu category")
    }
    if len(existing) == 0 {
        return fail(c, http.StatusNotFound, "Menu category not found")
    }
    patch := scrubPatch(body, "CATEGORY_ID", actor(c, ""))
    if err := h.DB.Update(c.Request().Context(), "menu_categories",
        supabase.Query{}.Where(supabase.Eq("CATEGORY_ID", id)), patch); err != nil {
        return upstreamFail(c, err, "Error updating menu category")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Category updated successfully"})
}

// DeleteMenuCategory handles DELETE /api/menu-categories/:id.
func (h *CatalogHandler) DeleteMenuCategory(c echo.Context) error {
    id := c.Param("id")
    if err := h.DB.Delete(c.Request().Context(), "menu_categories",
        supabase.Query{}.Where(supabase.Eq("CATEGORY_ID", id))); err != nil {
        return upstreamFail(c, err, "Error deleting menu category")
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Category deleted successfully"})
}
