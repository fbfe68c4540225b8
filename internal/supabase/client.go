// Package supabase is the gateway to the hosted database service.  Every
// piece of persistent state lives behind its REST row-filtering surface
// (/rest/v1/{table}) or its RPC surface (/rest/v1/rpc/{fn}); this client
// attaches the service-role credentials, encodes filters and surfaces
// structured errors.  There is deliberately no retry or caching layer here.
package supabase

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strconv"
    "strings"
    "time"
)

// UpstreamError reports a non-2xx response from the database service.  The
// body is kept verbatim so handlers can log it; callers map the status to a
// user-facing message.
type UpstreamError struct {
    Status int
    Body   string
}

func (e *UpstreamError) Error() string {
    return fmt.Sprintf("upstream status %d: %s", e.Status, e.Body)
}

// IsConflict reports whether the error is an upstream unique-constraint
// violation (PostgREST answers 409 for those).
func IsConflict(err error) bool {
    ue, ok := err.(*UpstreamError)
    return ok && ue.Status == http.StatusConflict
}

// Client talks to one database service instance.  The zero value is not
// usable; construct with New.
type Client struct {
    baseURL string
    key     string
    http    *http.Client
}

// New returns a Client for the given base URL and service-role key.  The
// HTTP client carries the 15 second upstream timeout used across the app.
func New(baseURL, key string) *Client {
    return &Client{
        baseURL: strings.TrimRight(baseURL, "/"),
        key:     key,
        http:    &http.Client{Timeout: 15 * time.Second},
    }
}

// Select fetches rows from table into dest (a pointer to a slice).  When
// q.Count is set the exact total row count is requested and returned;
// otherwise the count is -1.
func (c *Client) Select(ctx context.Context, table string, q Query, dest any) (int64, error) {
    url := c.baseURL + "/rest/v1/" + table
    if qs := q.encode(); qs != "" {
        url += "?" + qs
    }
    var hdr http.Header
    if q.Count {
        hdr = http.Header{"Prefer": []string{"count=exact"}}
    }
    resp, err := c.do(ctx, http.MethodGet, url, nil, hdr, dest)
    if err != nil {
        return -1, err
    }
    if q.Count {
        return parseContentRange(resp.Header.Get("Content-Range")), nil
    }
    return -1, nil
}

// Insert writes one or more rows.  When dest is non-nil the created
// representation is requested back and decoded into it.
func (c *Client) Insert(ctx context.Context, table string, rows any, dest any) error {
    url := c.baseURL + "/rest/v1/" + table
    var hdr http.Header
    if dest != nil {
        hdr = http.Header{"Prefer": []string{"return=representation"}}
    }
    _, err := c.do(ctx, http.MethodPost, url, rows, hdr, dest)
    return err
}

// Update patches every row matched by q.
func (c *Client) Update(ctx context.Context, table string, q Query, patch any) error {
    url := c.baseURL + "/rest/v1/" + table
    if qs := q.encode(); qs != "" {
        url += "?" + qs
    }
    _, err := c.do(ctx, http.MethodPatch, url, patch, nil, nil)
    return err
}

// Delete removes every row matched by q.
func (c *Client) Delete(ctx context.Context, table string, q Query) error {
    url := c.baseURL + "/rest/v1/" + table
    if qs := q.encode(); qs != "" {
        url += "?" + qs
    }
    _, err := c.do(ctx, http.MethodDelete, url, nil, nil, nil)
    return err
}

// RPC invokes a database function by name.  params may be nil; the result,
// if any, is decoded into dest.
func (c *Client) RPC(ctx context.Context, fn string, params any, dest any) error {
    url := c.baseURL + "/rest/v1/rpc/" + fn
    if params == nil {
        params = map[string]any{}
    }
    hdr := http.Header{"Prefer": []string{"return=representation"}}
    _, err := c.do(ctx, http.MethodPost, url, params, hdr, dest)
    return err
}

// do performs one upstream call: marshal body, attach credentials, check the
// status and decode the response.  Non-2xx statuses become *UpstreamError.
func (c *Client) do(ctx context.Context, method, url string, body any, extra http.Header, dest any) (*http.Response, error) {
    var rdr io.Reader
    if body != nil {
        buf, err := json.Marshal(body)
        if err != nil {
            return nil, err
        }
        rdr = bytes.NewReader(buf)
    }
    req, err := http.NewRequestWithContext(ctx, method, url, rdr)
    if err != nil {
        return nil, err
    }
    req.Header.Set("Content-Type", "application/json")
    req.Header.Set("apikey", c.key)
    req.Header.Set("Authorization", "Bearer "+c.key)
    for k, vals := range extra {
        for _, v := range vals {
            req.Header.Add(k, v)
        }
    }
    resp, err := c.http.Do(req)
    if err != nil {
        return nil, err
    }
    defer resp.Body.Close()
    raw, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, err
    }
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return nil, &UpstreamError{Status: resp.StatusCode, Body: string(raw)}
    }
    if dest != nil && len(raw) > 0 {
        if err := json.Unmarshal(raw, dest); err != nil {
            return nil, fmt.Errorf("decode upstream response: %w", err)
        }
    }
    return resp, nil
}

// parseContentRange extracts the total from a "0-24/3573" style header.
// Returns -1 when the header is absent or malformed.
func parseContentRange(v string) int64 {
    idx := strings.LastIndex(v, "/")
    if idx < 0 {
        return -1
    }
    n, err := strconv.ParseInt(v[idx+1:], 10, 64)
    if err != nil {
        return -1
    }
    return n
}
