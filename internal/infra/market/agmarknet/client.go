// Package agmarknet reads daily mandi prices from the data.gov.in
// Agmarknet resource.
package agmarknet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/kisan-advisor/internal/domain/market"
)

const (
	defaultBaseURL    = "https://api.data.gov.in"
	defaultResourceID = "9ef84268-d588-465a-a308-a864a43d0070"
	defaultLimit      = 100
	arrivalLayout     = "02/01/2006"
)

// ErrHistoryUnsupported is returned because the resource carries no series.
var ErrHistoryUnsupported = errors.New("agmarknet: price history not available")

// Client implements market.Source against data.gov.in.
type Client struct {
	baseURL    string
	resourceID string
	apiKey     string
	limit      int
	httpClient *http.Client
}

// Options configures the client.
type Options struct {
	BaseURL    string
	ResourceID string
	APIKey     string
	Limit      int
}

// NewClient builds an API client.
func NewClient(opts Options) *Client {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	resource := strings.TrimSpace(opts.ResourceID)
	if resource == "" {
		resource = defaultResourceID
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		resourceID: resource,
		apiKey:     opts.APIKey,
		limit:      limit,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Name() string { return "agmarknet" }

// Prices fetches the latest records, filtered upstream by state when given.
func (c *Client) Prices(ctx context.Context, state string) ([]market.Price, error) {
	params := url.Values{
		"api-key": {c.apiKey},
		"format":  {"json"},
		"limit":   {strconv.Itoa(c.limit)},
	}
	if s := strings.TrimSpace(state); s != "" {
		params.Set("filters[state]", s)
	}
	endpoint := fmt.Sprintf("%s/resource/%s?%s", c.baseURL, url.PathEscape(c.resourceID), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build market request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("market request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("market request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode market response: %w", err)
	}
	return normalizeRecords(raw.Records), nil
}

// History is not offered by the resource.
func (c *Client) History(context.Context, string, int) ([]market.PricePoint, error) {
	return nil, ErrHistoryUnsupported
}

type apiResponse struct {
	Records []record `json:"records"`
}

type record struct {
	State       string `json:"state"`
	District    string `json:"district"`
	Market      string `json:"market"`
	Commodity   string `json:"commodity"`
	Variety     string `json:"variety"`
	ArrivalDate string `json:"arrival_date"`
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
	ModalPrice  string `json:"modal_price"`
}

func normalizeRecords(records []record) []market.Price {
	out := make([]market.Price, 0, len(records))
	for _, rec := range records {
		minPrice, err1 := parsePrice(rec.MinPrice)
		maxPrice, err2 := parsePrice(rec.MaxPrice)
		modal, err3 := parsePrice(rec.ModalPrice)
		if err := errors.Join(err1, err2, err3); err != nil {
			continue
		}
		out = append(out, market.Price{
			Commodity: strings.TrimSpace(rec.Commodity),
			Variety:   strings.TrimSpace(rec.Variety),
			Market:    strings.TrimSpace(rec.Market),
			State:     strings.TrimSpace(rec.State),
			Price:     market.PriceRange{Min: minPrice, Max: maxPrice, Modal: modal},
			Unit:      "Quintal",
			Date:      parseDate(rec.ArrivalDate),
			Trend:     market.TrendStable,
		})
	}
	return out
}

func parsePrice(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

// parseDate converts dd/mm/yyyy; anything else passes through unchanged.
func parseDate(value string) string {
	ts, err := time.Parse(arrivalLayout, strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return ts.Format(time.DateOnly)
}

var _ market.Source = (*Client)(nil)
