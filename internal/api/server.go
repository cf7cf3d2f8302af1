// Package api exposes the impact assessment engine over HTTP: routing,
// middleware (auth, rate limiting, logging, metrics) and the wire contract.
package api

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/autozbudoucnosti/ecoscore/internal/config"
	"github.com/autozbudoucnosti/ecoscore/internal/engine"
	"github.com/autozbudoucnosti/ecoscore/internal/factors"
)

// API bundles the HTTP surface and its dependencies.
type API struct {
	logger      zerolog.Logger
	engine      *engine.Engine
	validate    *validator.Validate
	limiter     *Limiter
	metrics     *Metrics
	apiKeys     map[string]struct{}
	methodology methodologyResponse
}

// New wires the API from configuration, the factor table and the scoring
// engine.
func New(cfg config.Config, logger zerolog.Logger, table *factors.Table, eng *engine.Engine) *API {
	keys := make(map[string]struct{}, len(cfg.Auth.APIKeys))
	for _, key := range cfg.Auth.APIKeys {
		keys[key] = struct{}{}
	}

	return &API{
		logger:      logger,
		engine:      eng,
		validate:    newValidator(),
		limiter:     NewLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
		metrics:     NewMetrics(),
		apiKeys:     keys,
		methodology: newMethodologyResponse(table),
	}
}

// newValidator builds the boundary validator reporting wire field names, so
// messages say "weight_kg" rather than "WeightKg".
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Handler assembles the router. /health, /metrics and /v1/methodology are
// public; /v1/assess-impact requires an API key and is rate limited per key.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(hlog.NewHandler(a.logger))
	r.Use(requestID)
	r.Use(a.metrics.Middleware)
	r.Use(accessLog)
	r.Use(recovery)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, codeNotFound, "Resource not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed.")
	})

	r.Get("/health", a.handleHealth)
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/methodology", a.handleMethodology)

		r.Group(func(r chi.Router) {
			r.Use(requireAPIKey(a.apiKeys))
			r.Use(rateLimit(a.limiter))
			r.Post("/assess-impact", a.handleAssessImpact)
		})
	})

	return r
}
