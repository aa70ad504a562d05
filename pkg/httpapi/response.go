package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/idcheck/pkg/ruleset"
	"github.com/dmitrymomot/idcheck/pkg/validator"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// OutcomeResponse is the result of validating one value.
type OutcomeResponse struct {
	Valid   bool           `json:"valid"`
	Kind    string         `json:"kind,omitempty"`
	Message string         `json:"message,omitempty"`
	Vars    map[string]any `json:"vars,omitempty"`
}

// translateFunc renders the message for a translation key, falling back to def.
type translateFunc func(key, def string, vars map[string]any) string

func untranslated(_, def string, _ map[string]any) string { return def }

func outcomeResponse(o validator.Outcome, tr translateFunc) OutcomeResponse {
	resp := OutcomeResponse{
		Valid: o.IsValid(),
		Kind:  string(o.Kind),
		Vars:  o.Vars,
	}
	if !resp.Valid {
		resp.Message = tr("validation."+string(o.Kind), o.Message(), o.Vars)
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any, meta map[string]any) {
	writeJSON(w, http.StatusOK, Envelope{Data: data, Meta: meta})
}

// errorStatus maps err to a status code and error detail.
func errorStatus(err error, tr translateFunc) (int, *ErrorDetail) {
	if ve := validator.ExtractValidationErrors(err); ve != nil {
		details := make(map[string][]string, len(ve))
		for _, e := range ve {
			details[e.Field] = append(details[e.Field], tr(e.TranslationKey, e.Message, e.TranslationValues))
		}
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: "validation failed",
			Details: details,
		}
	}

	switch {
	case errors.Is(err, ruleset.ErrRuleNotFound):
		return http.StatusNotFound, &ErrorDetail{Code: "rule_not_found", Message: err.Error()}
	case errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest, &ErrorDetail{Code: "malformed_body", Message: err.Error()}
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: "body_too_large", Message: err.Error()}
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, &ErrorDetail{Code: "rate_limited", Message: err.Error()}
	default:
		return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
	}
}
