package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/autozbudoucnosti/ecoscore/internal/engine"
)

// handleAssessImpact serves POST /v1/assess-impact. Shape errors are caught
// by the boundary validator; semantic errors (share sum, weight range) by the
// engine. Both reject with 400 and a validation_error code.
func (a *API) handleAssessImpact(w http.ResponseWriter, r *http.Request) {
	var req assessImpactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, "Request body is not valid JSON.")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.metrics.ObserveAssessment("rejected")
		writeError(w, r, http.StatusBadRequest, codeValidationError, validationMessage(err))
		return
	}

	result, err := a.engine.Assess(req.toEngine())
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			a.metrics.ObserveAssessment("rejected")
			writeError(w, r, http.StatusBadRequest, codeValidationError, verr.Error())
			return
		}

		zerolog.Ctx(r.Context()).Error().Err(err).Msg("assessment failed")
		writeError(w, r, http.StatusInternalServerError, codeInternalError, "Internal server error.")
		return
	}

	a.metrics.ObserveAssessment("ok")

	zerolog.Ctx(r.Context()).Info().
		Str("product", result.ProductName).
		Float64("total_score", result.TotalSustainabilityScore).
		Bool("cbam_relevant", result.CBAM.Relevant).
		Msg("assessment completed")

	writeJSON(w, r, http.StatusOK, toAssessImpactResponse(result))
}

// handleMethodology serves GET /v1/methodology. The payload is static for
// the life of the process, assembled once at startup.
func (a *API) handleMethodology(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, a.methodology)
}

// handleHealth is the liveness probe.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// validationMessage flattens validator errors into one human-readable line
// using the wire field names.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Request failed validation."
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" "+validationReason(fe))
	}
	return strings.Join(parts, "; ")
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + fe.Param() + " entry"
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}
