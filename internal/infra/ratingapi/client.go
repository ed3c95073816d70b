package ratingapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/yanqian/insurance-quotes/internal/domain/quote"
	"github.com/yanqian/insurance-quotes/internal/infra/config"
	"github.com/yanqian/insurance-quotes/pkg/metrics"
)

const (
	defaultBaseURL    = "https://csgapi.appspot.com/v1"
	defaultAuthHeader = "x-api-token"
	defaultTimeout    = 15 * time.Second
)

var (
	// ErrUnconfigured is returned when no usable API token is set.
	ErrUnconfigured = eris.New("rating provider token is not configured")
	// ErrUnavailable wraps transport failures, non-2xx answers and unreadable payloads.
	ErrUnavailable = eris.New("rating provider unavailable")
)

var productPaths = map[quote.Product]string{
	quote.ProductMedicareSupplement: "med_supp/quotes.json",
	quote.ProductDental:             "dental/quotes.json",
	quote.ProductHospitalIndemnity:  "hospital_indemnity/quotes.json",
	quote.ProductFinalExpenseLife:   "final_expense_life/quotes.json",
	quote.ProductMedicareAdvantage:  "medicare_advantage/quotes.json",
}

// listKeys are the envelope keys a quote list may be wrapped under, in order.
var listKeys = []string{"quotes", "results", "data", "plans"}

// Config describes how to reach the rating provider.
type Config struct {
	BaseURL    string
	APIToken   string
	AuthHeader string
	Timeout    time.Duration
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the configured base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Client fetches raw quote records from the rating provider.
type Client struct {
	baseURL    string
	token      string
	authHeader string
	httpClient *http.Client
}

// NewClient builds a provider client.
func NewClient(cfg Config, opts ...Option) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	header := strings.TrimSpace(cfg.AuthHeader)
	if header == "" {
		header = defaultAuthHeader
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      strings.TrimSpace(cfg.APIToken),
		authHeader: header,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Configured reports whether the client holds a usable token.
func (c *Client) Configured() bool {
	return config.ProviderConfig{APIToken: c.token}.Configured()
}

// FetchQuotes performs one GET for a product and parameter set.
func (c *Client) FetchQuotes(ctx context.Context, product quote.Product, params url.Values) (records []quote.RawRecord, err error) {
	start := time.Now()
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeFailure
		}
		metrics.ProviderRequests.WithLabelValues(string(product), outcome).Inc()
		metrics.ProviderLatency.WithLabelValues(string(product)).Observe(time.Since(start).Seconds())
	}()

	if !c.Configured() {
		return nil, eris.Wrapf(ErrUnconfigured, "ratingapi: %s", product)
	}
	path, ok := productPaths[product]
	if !ok {
		return nil, eris.Errorf("ratingapi: no provider endpoint for product %q", product)
	}

	endpoint := c.baseURL + "/" + path
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, eris.Wrap(err, "ratingapi: build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.authHeader, c.authValue())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrapf(ErrUnavailable, "ratingapi: %s request failed: %v", product, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, eris.Wrapf(ErrUnavailable, "ratingapi: %s status=%d body=%s", product, resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrapf(ErrUnavailable, "ratingapi: read %s response: %v", product, err)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, eris.Wrapf(ErrUnavailable, "ratingapi: decode %s response: %v", product, err)
	}
	records, err = extractRecords(payload)
	if err != nil {
		return nil, eris.Wrapf(ErrUnavailable, "ratingapi: %s: %v", product, err)
	}
	return records, nil
}

func (c *Client) authValue() string {
	if strings.EqualFold(c.authHeader, "Authorization") {
		return "Bearer " + c.token
	}
	return c.token
}

// extractRecords unwraps the quote list from the provider payload. Lists may
// arrive bare or inside an envelope. A single object is one record only when
// it looks like a quote; anything else is an error body.
func extractRecords(payload any) ([]quote.RawRecord, error) {
	switch v := payload.(type) {
	case nil:
		return []quote.RawRecord{}, nil
	case []any:
		return objects(v), nil
	case map[string]any:
		for _, key := range listKeys {
			raw, present := v[key]
			if !present {
				continue
			}
			list, ok := raw.([]any)
			if !ok {
				return nil, eris.Errorf("envelope key %q holds %T, not a list", key, raw)
			}
			return objects(list), nil
		}
		if rec := quote.RawRecord(v); quote.LooksLikeQuote(rec) {
			return []quote.RawRecord{rec}, nil
		}
		return nil, eris.Errorf("payload is not a quote: %s", describeKeys(v))
	default:
		return nil, eris.Errorf("unexpected payload type %T", payload)
	}
}

func describeKeys(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "keys=[" + strings.Join(keys, ",") + "]"
}

func objects(items []any) []quote.RawRecord {
	records := make([]quote.RawRecord, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			records = append(records, quote.RawRecord(obj))
		}
	}
	return records
}
