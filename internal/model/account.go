package model

import "strings"

// Roles form a closed set.  The upstream data mixes casings ("admin" vs
// "ADMIN"), so comparisons go through NormalizeRole.
const (
    RoleAdmin  = "ADMIN"
    RoleUser   = "USER"
    RoleClient = "CLIENT"
)

// NormalizeUsername applies the platform-wide username normalization: the
// unified userfile table stores USERNAME upper-cased and every lookup must
// match it that way.
func NormalizeUsername(s string) string {
    return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeRole upper-cases a role for membership checks.
func NormalizeRole(s string) string {
    return strings.ToUpper(strings.TrimSpace(s))
}

// Account mirrors the unified `userfile` table.  Column names are the
// upstream schema's upper-case convention; they are part of the external
// contract and must not be renamed (including the CATOGERY spelling).
type Account struct {
    ID            int64   `json:"ID,omitempty"`
    UserID        string  `json:"USERID,omitempty"` // uuid of the credentials row
    Username      string  `json:"USERNAME,omitempty"`
    Email         string  `json:"EMAIL,omitempty"`
    PasswordHash  string  `json:"PASSWORD_HASH,omitempty"`
    Role          string  `json:"USER_ROLE,omitempty"`
    Status        string  `json:"STATUS,omitempty"`
    ClientID      string  `json:"CLIENT_ID,omitempty"`
    BusinessName  string  `json:"BUSINESSNAME,omitempty"`
    BusinessChn   string  `json:"BUSINESSCHN,omitempty"`
    ClientType    string  `json:"CLIENT_TYPE,omitempty"`
    Category      string  `json:"CATOGERY,omitempty"`
    HawkerID      string  `json:"HAWKERID,omitempty"`
    Address       string  `json:"ADDRESS,omitempty"`
    City          string  `json:"CITY,omitempty"`
    State         string  `json:"STATE,omitempty"`
    Country       string  `json:"COUNTRY,omitempty"`
    ContactPerson string  `json:"CONTACT_PERSON,omitempty"`
    PhoneNumber   string  `json:"PHONE_NUMBER,omitempty"`
    CreditBalance float64 `json:"CREDIT_BALANCE,omitempty"`
    DailyRate     float64 `json:"DAILY_RATE,omitempty"`
    BackgroundImg string  `json:"BACKGROUND_IMGURL,omitempty"`
    BannerImg     string  `json:"BANNER_IMGURL,omitempty"`
    LastLogin     string  `json:"LAST_LOGIN,omitempty"`
    CreatedAt     string  `json:"CREATED_AT,omitempty"`
    CreatedBy     string  `json:"CREATED_BY,omitempty"`
    UpdatedAt     string  `json:"UPDATED_AT,omitempty"`
    UpdatedBy     string  `json:"UPDATED_BY,omitempty"`
}

// ClientSummary is the browser-facing shape of an account row.  The camel
// and snake casings here match what the admin UI already consumes; this
// mapping is data plumbing, not business logic, and must stay stable.
type ClientSummary struct {
    ClientID     string `json:"client_id"`
    ID           int64  `json:"id"`
    Username     string `json:"username"`
    Email        string `json:"email"`
    Status       string `json:"status"`
    Role         string `json:"user_role"`
    BusinessName string `json:"businessName"`
    BusinessChn  string `json:"businessNameChn"`
    Phone        string `json:"phone"`
    Address      string `json:"address"`
}

// Summary maps an account row to its browser-facing projection.
func (a Account) Summary() ClientSummary {
    return ClientSummary{
        ClientID:     a.ClientID,
        ID:           a.ID,
        Username:     a.Username,
        Email:        a.Email,
        Status:       a.Status,
        Role:         a.Role,
        BusinessName: a.BusinessName,
        BusinessChn:  a.BusinessChn,
        Phone:        a.PhoneNumber,
        Address:      a.Address,
    }
}

// ClientFieldToColumn is the static mapping from browser-facing field names
// to userfile columns for the update path.  Fields absent here (username,
// id, password, audit columns) are not patchable through the API.
var ClientFieldToColumn = map[string]string{
    "email":             "EMAIL",
    "status":            "STATUS",
    "user_role":         "USER_ROLE",
    "businessname":      "BUSINESSNAME",
    "businesschn":       "BUSINESSCHN",
    "client_type":       "CLIENT_TYPE",
    "catogery":          "CATOGERY",
    "hawkerid":          "HAWKERID",
    "address":           "ADDRESS",
    "city":              "CITY",
    "state":             "STATE",
    "country":           "COUNTRY",
    "contact_person":    "CONTACT_PERSON",
    "phone_number":      "PHONE_NUMBER",
    "credit_balance":    "CREDIT_BALANCE",
    "daily_rate":        "DAILY_RATE",
    "background_imgurl": "BACKGROUND_IMGURL",
    "banner_imgurl":     "BANNER_IMGURL",
}

// ClientColumns is the projection requested for list/search responses.
const ClientColumns = "ID,USERNAME,EMAIL,USER_ROLE,STATUS,CLIENT_ID,BUSINESSNAME,BUSINESSCHN,PHONE_NUMBER,ADDRESS"
