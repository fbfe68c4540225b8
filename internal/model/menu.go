package model

// Catalog rows.  All three tables share the upstream upper-case column
// convention and the standard audit fields.

// MenuItem mirrors `menu_items`.  BASE_PRICE carries no omitempty: zero is a
// valid price and must still reach the upstream row.
type MenuItem struct {
    ItemID      int64   `json:"ITEM_ID,omitempty"`
    Name        string  `json:"NAME,omitempty"`
    Description string  `json:"DESCRIPTION,omitempty"`
    BasePrice   float64 `json:"BASE_PRICE"`
    CategoryID  int64   `json:"CATEGORY_ID,omitempty"`
    ImageURL    string  `json:"IMAGE_URL,omitempty"`
    Status      string  `json:"STATUS,omitempty"`
    CreatedAt   string  `json:"CREATED_AT,omitempty"`
    CreatedBy   string  `json:"CREATED_BY,omitempty"`
    UpdatedAt   string  `json:"UPDATED_AT,omitempty"`
    UpdatedBy   string  `json:"UPDATED_BY,omitempty"`
}

// MenuCategory mirrors `menu_categories`.  Lists are ordered by
// DISPLAY_ORDER ascending; order 0 means "first", so the column always
// serializes.
type MenuCategory struct {
    CategoryID   int64  `json:"CATEGORY_ID,omitempty"`
    Name         string `json:"NAME,omitempty"`
    Description  string `json:"DESCRIPTION,omitempty"`
    DisplayOrder int64  `json:"DISPLAY_ORDER"`
    Status       string `json:"STATUS,omitempty"`
    CreatedAt    string `json:"CREATED_AT,omitempty"`
    CreatedBy    string `json:"CREATED_BY,omitempty"`
    UpdatedAt    string `json:"UPDATED_AT,omitempty"`
    UpdatedBy    string `json:"UPDATED_BY,omitempty"`
}

// ItemVariation mirrors `items_variations` (note the table name: plural on
// both words, an upstream quirk that must be preserved).
type ItemVariation struct {
    VariationID int64   `json:"VARIATION_ID,omitempty"`
    ItemID      int64   `json:"ITEM_ID,omitempty"`
    Name        string  `json:"NAME,omitempty"`
    Price       float64 `json:"PRICE"`
    Status      string  `json:"STATUS,omitempty"`
    CreatedAt   string  `json:"CREATED_AT,omitempty"`
    CreatedBy   string  `json:"CREATED_BY,omitempty"`
    UpdatedAt   string  `json:"UPDATED_AT,omitempty"`
    UpdatedBy   string  `json:"UPDATED_BY,omitempty"`
}
