// Package ecoscore is the Go client for the product impact assessment API.
// It sets the X-API-Key header on every call and wraps the assess-impact and
// methodology endpoints.
package ecoscore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Environment variables read by NewClient when the matching option is not
// given.
const (
	EnvAPIKey  = "ECOSCORE_API_KEY"
	EnvBaseURL = "ECOSCORE_BASE_URL"
)

// Defaults applied to zero-value request fields, chosen for the common
// consumer-goods case of products made in China and sold in the US.
const (
	DefaultWeightKg           = 0.2
	DefaultOriginCountry      = "CN"
	DefaultDestinationCountry = "US"
)

const defaultTimeout = 30 * time.Second

// Client calls the impact assessment API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the API key, overriding ECOSCORE_API_KEY.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithBaseURL sets the API root, e.g. "https://api.example.com", overriding
// ECOSCORE_BASE_URL.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient replaces the default HTTP client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a client from options and the environment. The API key
// and base URL are both required, from an option or the environment.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		apiKey:     os.Getenv(EnvAPIKey),
		baseURL:    os.Getenv(EnvBaseURL),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.apiKey = strings.TrimSpace(c.apiKey)
	c.baseURL = strings.TrimRight(strings.TrimSpace(c.baseURL), "/")

	if c.apiKey == "" {
		return nil, errors.New("ecoscore: API key required; pass WithAPIKey or set " + EnvAPIKey)
	}
	if c.baseURL == "" {
		return nil, errors.New("ecoscore: base URL required; pass WithBaseURL or set " + EnvBaseURL)
	}
	return c, nil
}

// SingleMaterial builds a composition of one material at full share.
func SingleMaterial(name string) map[string]float64 {
	return map[string]float64{name: 1.0}
}

// AssessImpact assesses one product. Material names are normalized to the
// API's snake_case identifiers; shares that normalize to the same material
// are merged. A *APIError is returned for request rejections.
func (c *Client) AssessImpact(ctx context.Context, req AssessmentRequest) (*Assessment, error) {
	if req.WeightKg == 0 {
		req.WeightKg = DefaultWeightKg
	}
	if req.OriginCountry == "" {
		req.OriginCountry = DefaultOriginCountry
	}
	if req.DestinationCountry == "" {
		req.DestinationCountry = DefaultDestinationCountry
	}

	composition := make(map[string]float64, len(req.MaterialComposition))
	for name, share := range req.MaterialComposition {
		composition[normalizeMaterialKey(name)] += share
	}
	req.MaterialComposition = composition

	var result Assessment
	if err := c.doJSON(ctx, http.MethodPost, "/v1/assess-impact", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Methodology fetches the calculation methodology document: formulas,
// weights, factor tables and the disclaimer.
func (c *Client) Methodology(ctx context.Context) (map[string]any, error) {
	var doc map[string]any
	if err := c.doJSON(ctx, http.MethodGet, "/v1/methodology", nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// normalizeMaterialKey turns "Recycled Cotton" into "recycled_cotton".
func normalizeMaterialKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")
	return strings.ReplaceAll(key, "-", "_")
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeAPIError maps an error response body to *APIError. Bodies that are
// not the service's {code, message} shape fall back to the HTTP status text.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Code:       "unknown",
		Message:    http.StatusText(resp.StatusCode),
	}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
		if body.Code != "" {
			apiErr.Code = body.Code
		}
	}
	return apiErr
}
