package handler

import (
    "encoding/json"
    "io"
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/foodbao/admin-api/internal/supabase"
)

func newCatalogHandler(t *testing.T, h http.HandlerFunc) (*CatalogHandler, *fakeUpstream) {
    up := newFakeUpstream(t, h)
    cfg := testCfg(up.URL)
    return NewCatalogHandler(supabase.New(cfg.SupabaseURL, cfg.SupabaseKey)), up
}

func TestCreateMenuItemRequiresNameAndPrice(t *testing.T) {
    h, up := newCatalogHandler(t, func(w http.ResponseWriter, r *http.Request) {})

    for _, body := range []map[string]any{
        {"BASE_PRICE": 4.5},           // no name
        {"NAME": "Laksa"},             // no price
        {"NAME": "  ", "BASE_PRICE": 4.5}, // blank name
    } {
        c, rec := newCtx(t, http.MethodPost, "/api/menu-items", body)
        require.NoError(t, h.CreateMenuItem(c))
        assert.Equal(t, http.StatusBadRequest, rec.Code)
        assert.Contains(t, rec.Body.String(), "Name and price are required")
    }
    assert.Equal(t, 0, up.calls)
}

// An explicit zero price is a valid price, distinct from an absent one.
func TestCreateMenuItemAcceptsZeroPrice(t *testing.T) {
    var row map[string]any
    h, _ := newCatalogHandler(t, func(w http.ResponseWriter, r *http.Request) {
        body, _ := io.ReadAll(r.Body)
        var rows []map[string]any
        require.NoError(t, json.Unmarshal(body, &rows))
        row = rows[0]
        w.WriteHeader(http.StatusCreated)
        _, _ = w.Write(body)
    })

    c, rec := newCtx(t, http.MethodPost, "/api/menu-items", map[string]any{
        "NAME": "Free Sample", "BASE_PRICE": 0.0,
    })
    require.NoError(t, h.CreateMenuItem(c))
    require.Equal(t, http.StatusCreated, rec.Code)
    require.Contains(t, row, "BASE_PRICE")
    assert.Equal(t, float64(0), row["BASE_PRICE"])
    assert.Equal(t, "ACTIVE", row["STATUS"])
}

func TestGetMenuItemNotFound(t *testing.T) {
    h, _ := newCatalogHandler(t, func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "eq.42", r.URL.Query().Get("ITEM_ID"))
        _, _ = w.Write([]byte(`[]`))
    })

    c, rec := newCtx(t, http.MethodGet, "/api/menu-items/42", nil)
    c.SetParamNames("id")
    c.SetParamValues("42")
    require.NoError(t, h.GetMenuItem(c))
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Contains(t, rec.Body.String(), "Menu item not found")
}

func TestUpdateMenuItemScrubsProtectedColumns(t *testing.T) {
    var patch map[string]any
    h, _ := newCatalogHandler(t, func(w http.ResponseWriter, r *http.Request) {
        switch r.Method {
        case http.MethodGet:
            _, _ = w.Write([]byte(`[{"ITEM_ID":42}]`))
        case http.MethodPatch:
            body, _ := io.ReadAll(r.Body)
            require.NoError(t, json.Unmarshal(body, &patch))
            w.WriteHeader(http.StatusNoContent)
        }
    })

    c, rec := newCtx(t, http.MethodPut, "/api/menu-items/42", map[string]any{
        "NAME":       "New Name",
        "ITEM_ID":    99,
        "CREATED_AT": "2020-01-01",
        "CREATED_BY": "intruder",
    })
    c.SetParamNames("id")
    c.SetParamValues("42")
    require.NoError(t, h.UpdateMenuItem(c))
    require.Equal(t, http.StatusOK, rec.Code)

    assert.Equal(t, "New Name", patch["NAME"])
    assert.NotContains(t, patch, "ITEM_ID")
    assert.NotContains(t, patch, "CREATED_AT")
    assert.NotContains(t, patch, "CREATED_BY")
    assert.NotEmpty(t, patch["UPDATED_AT"])
}

func TestListMenuCategoriesOrdersByDisplayOrder(t *testing.T) {
    var gotQuery string
    h, _ := newCatalogHandler(t, func(w http.ResponseWriter, r *http.Request) {
        gotQuery = r.URL.RawQuery
        _, _ = w.Write([]byte(`[{"CATEGORY_ID":1,"NAME":"Noodles","DISPLAY_ORDER":1}]`))
    })

    c, rec := newCtx(t, http.MethodGet, "/api/menu-categories", nil)
    require.NoError(t, h.ListMenuCategories(c))
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, gotQuery, "order=DISPLAY_ORDER.asc")
}

// Older UI builds delete variations through POST with an action field; that
// contract still has to work.
func TestCreateItemVariationLegacyDelete(t *testing.T) {
    var deleted string
    h, _ := newCatalogHandler(t, func(w http.ResponseWriter, r *http.Request) {
        require.Equal(t, http.MethodDelete, r.Method)
        require.Equal(t, "/rest/v1/items_variations", r.URL.Path)
        deleted = r.URL.Query().Get("VARIATION_ID")
        w.WriteHeader(http.StatusNoContent)
    })

    c, rec := newCtx(t, http.MethodPost, "/api/item-variations", map[string]any{
        "action": "delete", "variation_id": 3,
    })
    require.NoError(t, h.CreateItemVariation(c))
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "eq.3", deleted)
    assert.Contains(t, rec.Body.String(), "Variation deleted successfully")
}

// A category explicitly ordered first must send DISPLAY_ORDER 0 upstream,
// not drop the column.
func TestCreateMenuCategoryKeepsZeroDisplayOrder(t *testing.T) {
    var row map[string]any
    h, _ := newCatalogHandler(t, func(w http.ResponseWriter, r *http.Request) {
        body, _ := io.ReadAll(r.Body)
        var rows []map[string]any
        require.NoError(t, json.Unmarshal(body, &rows))
        row = rows[0]
        w.WriteHeader(http.StatusCreated)
        _, _ = w.Write(body)
    })

    c, rec := newCtx(t, http.MethodPost, "/api/menu-categories", map[string]any{
        "NAME": "Specials", "DISPLAY_ORDER": 0,
    })
    require.NoError(t, h.CreateMenuCategory(c))
    require.Equal(t, http.StatusCreated, rec.Code)
    require.Contains(t, row, "DISPLAY_ORDER")
    assert.Equal(t, float64(0), row["DISPLAY_ORDER"])
}

func TestCreateItemVariationKeepsZeroPrice(t *testing.T) {
    var row map[string]any
    h, _ := newCatalogHandler(t, func(w http.ResponseWriter, r *http.Request) {
        body, _ := io.ReadAll(r.Body)
        var rows []map[string]any
        require.NoError(t, json.Unmarshal(body, &rows))
        row = rows[0]
        w.WriteHeader(http.StatusCreated)
        _, _ = w.Write(body)
    })

    c, rec := newCtx(t, http.MethodPost, "/api/item-variations", map[string]any{
        "NAME": "Small", "ITEM_ID": 5, "PRICE": 0.0,
    })
    require.NoError(t, h.CreateItemVariation(c))
    require.Equal(t, http.StatusCreated, rec.Code)
    require.Contains(t, row, "PRICE")
    assert.Equal(t, float64(0), row["PRICE"])
}

func TestCreateItemVariationRequiresName(t *testing.T) {
    h, up := newCatalogHandler(t, func(w http.ResponseWriter, r *http.Request) {})

    c, rec := newCtx(t, http.MethodPost, "/api/item-variations", map[string]any{"ITEM_ID": 5})
    require.NoError(t, h.CreateItemVariation(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, 0, up.calls)
}
