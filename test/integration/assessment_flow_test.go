//go:build integration

// Package integration exercises the full HTTP stack: the Go client from
// pkg/ecoscore against an in-process server with authentication, rate
// limiting and the complete scoring pipeline.
//
// Run with: go test -tags=integration ./test/integration/... -v
package integration

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autozbudoucnosti/ecoscore/internal/api"
	"github.com/autozbudoucnosti/ecoscore/internal/config"
	"github.com/autozbudoucnosti/ecoscore/internal/engine"
	"github.com/autozbudoucnosti/ecoscore/internal/factors"
	"github.com/autozbudoucnosti/ecoscore/pkg/ecoscore"
)

const apiKey = "integration-test-key"

func startServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()

	table := factors.New()
	service := api.New(cfg, zerolog.Nop(), table, engine.New(table))

	srv := httptest.NewServer(service.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func serverConfig(maxRequests int, window time.Duration) config.Config {
	return config.Config{
		Auth:      config.Auth{APIKeys: []string{apiKey}},
		RateLimit: config.RateLimit{MaxRequests: maxRequests, Window: window},
	}
}

func newTestClient(t *testing.T, srv *httptest.Server, key string) *ecoscore.Client {
	t.Helper()

	client, err := ecoscore.NewClient(ecoscore.WithAPIKey(key), ecoscore.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return client
}

// TestAssessmentFlow verifies the complete round trip for the reference
// product: client request, middleware chain, scoring and response decoding.
func TestAssessmentFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	srv := startServer(t, serverConfig(100, time.Second))
	client := newTestClient(t, srv, apiKey)

	result, err := client.AssessImpact(context.Background(), ecoscore.AssessmentRequest{
		ProductName:         "Organic Cotton T-Shirt",
		MaterialComposition: ecoscore.SingleMaterial("Organic Cotton"),
		WeightKg:            0.25,
		OriginCountry:       "IN",
		DestinationCountry:  "DE",
		ShippingMode:        "sea",
	})
	require.NoError(t, err)

	assert.Equal(t, "Organic Cotton T-Shirt", result.ProductName)
	assert.InDelta(t, 66.29, result.TotalSustainabilityScore, 0.001)
	assert.InDelta(t, 74.0, result.Breakdown.MaterialScore, 0.001)
	assert.InDelta(t, 35.0, result.Breakdown.LogisticsScore, 0.001)
	assert.InDelta(t, 93.97, result.Breakdown.WeightImpact, 0.001)
	assert.InDelta(t, 3.36, result.CO2EstimateKg, 0.001)
	assert.InDelta(t, 1625.0, result.WaterUsageLiters, 0.001)
	assert.False(t, result.CBAMRelevant)
	assert.NotEmpty(t, result.Explanation)

	doc, err := client.Methodology(context.Background())
	require.NoError(t, err)
	assert.Equal(t, result.MethodologyVersion, doc["methodology_version"])
}

// TestAssessmentFlow_Deterministic verifies identical requests produce
// identical results over the wire.
func TestAssessmentFlow_Deterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	srv := startServer(t, serverConfig(100, time.Second))
	client := newTestClient(t, srv, apiKey)

	req := ecoscore.AssessmentRequest{
		ProductName: "Hiking Boots",
		MaterialComposition: map[string]float64{
			"leather": 0.6,
			"rubber":  0.3,
			"steel":   0.1,
		},
		WeightKg:           1.4,
		OriginCountry:      "VN",
		DestinationCountry: "US",
		ShippingMode:       "air",
	}

	first, err := client.AssessImpact(context.Background(), req)
	require.NoError(t, err)
	second, err := client.AssessImpact(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, first.CBAMRelevant, "steel in the composition is CBAM relevant")
}

func TestAssessmentFlow_ValidationError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	srv := startServer(t, serverConfig(100, time.Second))
	client := newTestClient(t, srv, apiKey)

	_, err := client.AssessImpact(context.Background(), ecoscore.AssessmentRequest{
		ProductName: "Half a Shirt",
		MaterialComposition: map[string]float64{
			"cotton": 0.5,
		},
		WeightKg: 0.2,
	})

	var apiErr *ecoscore.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "validation_error", apiErr.Code)
	assert.Contains(t, apiErr.Message, "shares must sum to 1.0")
}

func TestAssessmentFlow_AuthRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	srv := startServer(t, serverConfig(100, time.Second))
	client := newTestClient(t, srv, "not-the-key")

	_, err := client.AssessImpact(context.Background(), ecoscore.AssessmentRequest{
		ProductName:         "T-Shirt",
		MaterialComposition: ecoscore.SingleMaterial("cotton"),
	})

	var apiErr *ecoscore.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, "unauthorized", apiErr.Code)
}

// TestAssessmentFlow_RateLimitRecovers exhausts the per-key allowance and
// verifies the limiter opens again after the window passes.
func TestAssessmentFlow_RateLimitRecovers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	window := 500 * time.Millisecond
	srv := startServer(t, serverConfig(3, window))
	client := newTestClient(t, srv, apiKey)

	req := ecoscore.AssessmentRequest{
		ProductName:         "T-Shirt",
		MaterialComposition: ecoscore.SingleMaterial("cotton"),
	}

	for i := 1; i <= 3; i++ {
		_, err := client.AssessImpact(context.Background(), req)
		require.NoError(t, err, "request %d should pass", i)
	}

	_, err := client.AssessImpact(context.Background(), req)
	var apiErr *ecoscore.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 429, apiErr.StatusCode)
	assert.Equal(t, "rate_limited", apiErr.Code)

	time.Sleep(window + 100*time.Millisecond)

	_, err = client.AssessImpact(context.Background(), req)
	assert.NoError(t, err, "limiter should open after the window passes")
}

func TestAssessmentFlow_Batch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	srv := startServer(t, serverConfig(1000, time.Second))
	client := newTestClient(t, srv, apiKey)

	products := []string{"T-Shirt", "Jeans", "Hoodie", "Socks", "Cap", "Scarf"}
	reqs := make([]ecoscore.AssessmentRequest, len(products))
	for i, name := range products {
		reqs[i] = ecoscore.AssessmentRequest{
			ProductName:         name,
			MaterialComposition: ecoscore.SingleMaterial("cotton"),
			WeightKg:            0.2 + float64(i)*0.1,
		}
	}

	results, err := client.AssessImpactBatch(context.Background(), reqs, 4)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	for i, result := range results {
		assert.Equal(t, products[i], result.ProductName)
		assert.Greater(t, result.TotalSustainabilityScore, 0.0)
		assert.LessOrEqual(t, result.TotalSustainabilityScore, 100.0)
	}
}
