package supabase

import (
    "net/url"
    "strings"
)

// Filter is one column/operator/value triple in PostgREST syntax, e.g.
// {Column: "USERNAME", Op: "eq", Value: "ALICE"} renders as USERNAME=eq.ALICE.
type Filter struct {
    Column string
    Op     string
    Value  string
}

// Eq matches a column exactly.
func Eq(column, value string) Filter { return Filter{Column: column, Op: "eq", Value: value} }

// ILike matches a case-insensitive substring.  The term is wrapped in %
// wildcards the same way the admin UI's search does.
func ILike(column, term string) Filter {
    return Filter{Column: column, Op: "ilike", Value: "%" + term + "%"}
}

// Gte matches values greater than or equal to value.
func Gte(column, value string) Filter { return Filter{Column: column, Op: "gte", Value: value} }

// Lt matches values strictly less than value.
func Lt(column, value string) Filter { return Filter{Column: column, Op: "lt", Value: value} }

// Query describes one upstream read or mutation target: AND-composed
// filters, an optional OR group (multi-column search), a column projection,
// an ordering clause like "transaction_date.desc", and whether an exact row
// count should be requested alongside the rows.
type Query struct {
    Filters []Filter
    Or      []Filter
    Select  string
    Order   string
    Count   bool
}

// Where appends an AND filter and returns the query for chaining.
func (q Query) Where(f Filter) Query {
    q.Filters = append(q.Filters, f)
    return q
}

// encode renders the query string.  Plain filters go through url.Values so
// values are escaped; the OR group uses PostgREST's or=(...) form with each
// disjunct escaped individually.
func (q Query) encode() string {
    v := url.Values{}
    if q.Select != "" {
        v.Set("select", q.Select)
    }
    for _, f := range q.Filters {
        v.Add(f.Column, f.Op+"."+f.Value)
    }
    if q.Order != "" {
        v.Set("order", q.Order)
    }
    qs := v.Encode()
    if len(q.Or) > 0 {
        parts := make([]string, 0, len(q.Or))
        for _, f := range q.Or {
            parts = append(parts, f.Column+"."+f.Op+"."+f.Value)
        }
        or := "or=" + url.QueryEscape("("+strings.Join(parts, ",")+")")
        if qs == "" {
            qs = or
        } else {
            qs += "&" + or
        }
    }
    return qs
}
