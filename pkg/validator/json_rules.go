package validator

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// JSON validates that a value is a syntactically valid JSON document.
// Empty values (see Value.IsEmpty) are valid; use a required rule to reject them.
type JSON struct{}

func NewJSON() *JSON { return &JSON{} }

func (JSON) Validate(v Value) Outcome {
	if v.IsEmpty() {
		return Valid()
	}
	if !v.IsScalar() {
		return Invalid(KindJSONInvalid, map[string]any{"reason": "invalid type"})
	}

	s := v.String()
	if !utf8.ValidString(s) {
		return Invalid(KindJSONInvalid, map[string]any{"reason": "malformed UTF-8 characters"})
	}

	var doc any
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return Invalid(KindJSONInvalid, map[string]any{"reason": jsonReason(err)})
	}
	return Valid()
}

func jsonReason(err error) string {
	var reason string
	switch e := err.(type) {
	case *json.SyntaxError:
		reason = fmt.Sprintf("%s (offset %d)", e.Error(), e.Offset)
	default:
		reason = err.Error()
	}
	if reason == "" {
		return "an unexpected error occurred"
	}
	return reason
}
