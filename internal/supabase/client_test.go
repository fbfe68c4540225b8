package supabase

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestQueryEncode(t *testing.T) {
    q := Query{Select: "ID,USERNAME", Order: "transaction_date.desc"}.
        Where(Eq("USERNAME", "ALICE")).
        Where(Gte("transaction_date", "2026-01-01"))
    qs := q.encode()
    assert.Contains(t, qs, "select=ID%2CUSERNAME")
    assert.Contains(t, qs, "USERNAME=eq.ALICE")
    assert.Contains(t, qs, "transaction_date=gte.2026-01-01")
    assert.Contains(t, qs, "order=transaction_date.desc")
}

func TestQueryEncodeOrGroup(t *testing.T) {
    q := Query{Or: []Filter{ILike("USERNAME", "bao"), ILike("EMAIL", "bao")}}
    qs := q.encode()
    // The group renders as or=(USERNAME.ilike.%bao%,EMAIL.ilike.%bao%),
    // escaped as one value.
    assert.Equal(t, "or=%28USERNAME.ilike.%25bao%25%2CEMAIL.ilike.%25bao%25%29", qs)
}

func TestQueryEncodeEmpty(t *testing.T) {
    assert.Equal(t, "", Query{}.encode())
}

func TestSelectSendsCredentialsAndDecodes(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, http.MethodGet, r.Method)
        assert.Equal(t, "/rest/v1/userfile", r.URL.Path)
        assert.Equal(t, "eq.ALICE", r.URL.Query().Get("USERNAME"))
        assert.Equal(t, "service-key", r.Header.Get("apikey"))
        assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
        assert.Empty(t, r.Header.Get("Prefer"))
        w.Header().Set("Content-Type", "application/json")
        _, _ = w.Write([]byte(`[{"USERNAME":"ALICE"},{"USERNAME":"ALICE2"}]`))
    }))
    defer srv.Close()

    c := New(srv.URL, "service-key")
    var rows []map[string]any
    count, err := c.Select(context.Background(), "userfile",
        Query{}.Where(Eq("USERNAME", "ALICE")), &rows)
    require.NoError(t, err)
    assert.Equal(t, int64(-1), count)
    require.Len(t, rows, 2)
    assert.Equal(t, "ALICE", rows[0]["USERNAME"])
}

func TestSelectCountExact(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "count=exact", r.Header.Get("Prefer"))
        w.Header().Set("Content-Range", "0-1/42")
        _, _ = w.Write([]byte(`[{},{}]`))
    }))
    defer srv.Close()

    c := New(srv.URL, "k")
    var rows []map[string]any
    count, err := c.Select(context.Background(), "userfile", Query{Count: true}, &rows)
    require.NoError(t, err)
    assert.Equal(t, int64(42), count)
}

func TestInsertRequestsRepresentation(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, http.MethodPost, r.Method)
        assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
        w.WriteHeader(http.StatusCreated)
        _, _ = w.Write([]byte(`[{"ID":9}]`))
    }))
    defer srv.Close()

    c := New(srv.URL, "k")
    var created []map[string]any
    err := c.Insert(context.Background(), "menu_items", []map[string]any{{"NAME": "Laksa"}}, &created)
    require.NoError(t, err)
    require.Len(t, created, 1)
    assert.Equal(t, float64(9), created[0]["ID"])
}

func TestRPCPathAndParams(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "/rest/v1/rpc/get_new_uuid", r.URL.Path)
        _, _ = w.Write([]byte(`"8b5c"`))
    }))
    defer srv.Close()

    c := New(srv.URL, "k")
    var id string
    require.NoError(t, c.RPC(context.Background(), "get_new_uuid", nil, &id))
    assert.Equal(t, "8b5c", id)
}

func TestUpstreamErrorSurfacesStatusAndBody(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusConflict)
        _, _ = w.Write([]byte(`{"code":"23505"}`))
    }))
    defer srv.Close()

    c := New(srv.URL, "k")
    err := c.Insert(context.Background(), "userfile", []map[string]any{{}}, nil)
    require.Error(t, err)
    ue, ok := err.(*UpstreamError)
    require.True(t, ok)
    assert.Equal(t, http.StatusConflict, ue.Status)
    assert.Contains(t, ue.Body, "23505")
    assert.True(t, IsConflict(err))
}

func TestParseContentRange(t *testing.T) {
    assert.Equal(t, int64(3573), parseContentRange("0-24/3573"))
    assert.Equal(t, int64(0), parseContentRange("*/0"))
    assert.Equal(t, int64(-1), parseContentRange("0-24/*"))
    assert.Equal(t, int64(-1), parseContentRange(""))
}
