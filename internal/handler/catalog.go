package handler

import (
    "github.com/foodbao/admin-api/internal/supabase"
)

// CatalogHandler bundles the menu item, menu category and item variation
// endpoints.  All three resources are plain CRUD over their upstream tables
// and share the same envelope and validation shape.
type CatalogHandler struct {
    DB *supabase.Client
}

func NewCatalogHandler(db *supabase.Client) *CatalogHandler {
    if db == nil {
        panic("nil supabase client passed to NewCatalogHandler")
    }
    return &CatalogHandler{DB: db}
}

// scrubPatch drops the identifier and creation-audit columns from a caller
// supplied patch and stamps the update audit columns.  The UI submits rows
// in the upstream's upper-case column convention, so patches pass through
// by column name.
func scrubPatch(body map[string]any, idColumn, updatedBy string) map[string]any {
    patch := map[string]any{}
    for k, v := range body {
        switch k {
        case idColumn, "CREATED_AT", "CREATED_BY":
            continue
        }
        patch[k] = v
    }
    patch["UPDATED_AT"] = nowISO()
    if updatedBy != "" {
        patch["UPDATED_BY"] = updatedBy
    }
    return patch
}
