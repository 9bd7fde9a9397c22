package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the interface for fetching pages from the collection
// endpoint. This interface is implemented by *Client and can be used for
// testing.
type Fetcher interface {
	FetchPage(ctx context.Context, query Query) (Page, error)
	FetchTotal(ctx context.Context, query Query) (int, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// TotalCountHeader carries the total match count (ignoring pagination) on
// every list response.
const TotalCountHeader = "X-Total-Count"

const (
	listPath         = "/api/countries"
	defaultUserAgent = "gazetteer/0.1"
	requestTimeout   = 5 * time.Second
)

// Query configures one list request. Zero-valued fields are omitted from the
// encoded request.
type Query struct {
	Offset         int
	Limit          int
	FilterField    string // filter parameter is keyed by the field name
	FilterText     string
	SortField      string
	SortDescending bool
}

// Client talks to the collection endpoint over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given base address. A bare host:port is
// promoted to an http URL.
func NewClient(base string) (*Client, error) {
	parsed, err := parseBaseURL(base)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: parsed,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchPage retrieves one page of countries along with the total match count
// carried by the count header.
func (c *Client) FetchPage(ctx context.Context, query Query) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: listPath, RawQuery: encodeQuery(query)}

	var payload ListResponse
	total, err := c.doURL(ctx, rel, &payload)
	if err != nil {
		return Page{}, err
	}
	return Page{Items: payload.Items, TotalCount: total}, nil
}

// FetchTotal retrieves only the total match count for the query's filter.
// It issues a limit=1 request and discards the body; the endpoint exposes no
// dedicated count route.
func (c *Client) FetchTotal(ctx context.Context, query Query) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	query.Offset = 0
	query.Limit = 1
	rel := &url.URL{Path: listPath, RawQuery: encodeQuery(query)}

	total, err := c.doURL(ctx, rel, nil)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func encodeQuery(query Query) string {
	values := url.Values{}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		values.Set("offset", strconv.Itoa(query.Offset))
	}
	if field := strings.TrimSpace(query.FilterField); field != "" {
		values.Set(field, strings.TrimSpace(query.FilterText))
	}
	if field := strings.TrimSpace(query.SortField); field != "" {
		values.Set("sortField", field)
		direction := "asc"
		if query.SortDescending {
			direction = "desc"
		}
		values.Set("sortDirection", direction)
	}
	return values.Encode()
}

// doURL executes one GET against the endpoint, decodes the body into dest
// when dest is non-nil, and returns the parsed total-count header.
func (c *Client) doURL(ctx context.Context, rel *url.URL, dest any) (int, error) {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("endpoint %s returned status %d", rel.String(), resp.StatusCode)
	}

	total, err := parseTotalCount(resp.Header.Get(TotalCountHeader))
	if err != nil {
		return 0, err
	}

	if dest != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(dest); err != nil {
			return 0, fmt.Errorf("decode response: %w", err)
		}
	}
	return total, nil
}

func parseTotalCount(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("response missing %s header", TotalCountHeader)
	}
	total, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse %s header %q: %w", TotalCountHeader, raw, err)
	}
	if total < 0 {
		return 0, fmt.Errorf("negative %s header %q", TotalCountHeader, raw)
	}
	return total, nil
}

func parseBaseURL(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return nil, fmt.Errorf("base address is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base address %q: %w", base, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
