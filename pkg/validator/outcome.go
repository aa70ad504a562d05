package validator

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorKind is a stable identifier of a validation failure.
// The identifiers are part of the public contract: callers branch on them and
// translation catalogues are keyed by them.
type ErrorKind string

const (
	KindBirthNumberInvalid ErrorKind = "birthNumberInvalid"
	KindNotBirthNumber     ErrorKind = "notBirthNumber"
	KindIntInvalid         ErrorKind = "intInvalid"
	KindNotMinorChild      ErrorKind = "notMinorChild"

	KindIdentificationNumberInvalid ErrorKind = "identificationNumberInvalid"
	KindNotIdentificationNumber     ErrorKind = "notIdentificationNumber"

	KindVINInvalid                 ErrorKind = "vinInvalid"
	KindVINInvalidChars            ErrorKind = "vinInvalidChars"
	KindVINInvalidCn               ErrorKind = "vinInvalidCn"
	KindVINInvalidConsecutiveOnes  ErrorKind = "vinInvalidConsecutiveOnes"
	KindVINInvalidConsecutiveZeros ErrorKind = "vinInvalidConsecutiveZeros"
	KindVINInvalidLength           ErrorKind = "vinInvalidLength"

	KindDateFormatInvalid       ErrorKind = "dateFormatInvalid"
	KindDateFormatInvalidDate   ErrorKind = "dateFormatInvalidDate"
	KindDateFormatInvalidFormat ErrorKind = "dateFormatInvalidFormat"

	KindDateGreaterThanInvalid      ErrorKind = "dateGreaterThanInvalid"
	KindNotDateGreaterThan          ErrorKind = "notDateGreaterThan"
	KindNotDateGreaterThanInclusive ErrorKind = "notDateGreaterThanInclusive"

	KindDateLessThanInvalid      ErrorKind = "dateLessThanInvalid"
	KindNotDateLessThan          ErrorKind = "notDateLessThan"
	KindNotDateLessThanInclusive ErrorKind = "notDateLessThanInclusive"

	KindPhoneNumberInvalid              ErrorKind = "phoneNumberInvalid"
	KindPhoneNumberNoMatch              ErrorKind = "phoneNumberNoMatch"
	KindPhoneNumberNoMatchInternational ErrorKind = "phoneNumberNoMatchInternational"
	KindPhoneNumberUnsupported          ErrorKind = "phoneNumberUnsupported"

	KindJSONInvalid ErrorKind = "jsonInvalid"

	KindNoAlpha           ErrorKind = "noAlpha"
	KindNoValidCharacters ErrorKind = "noValidCharacters"
	KindNoCapitalLetter   ErrorKind = "noCapitalLetter"
	KindNoNumeric         ErrorKind = "noNumeric"
	KindNoSmallLetter     ErrorKind = "noSmallLetter"

	KindValueInvalid   ErrorKind = "valueInvalid"
	KindValueNotUnique ErrorKind = "valueNotUnique"
)

// messageTemplates holds the default English message per kind.
// Placeholders in the form %name% are replaced with the outcome variables.
var messageTemplates = map[ErrorKind]string{
	KindBirthNumberInvalid: "Invalid type given. String or integer expected",
	KindNotBirthNumber:     "The value does not appear to be a birth number",
	KindIntInvalid:         "Invalid type given. String or integer expected",
	KindNotMinorChild:      "The value does not appear to be a minor child",

	KindIdentificationNumberInvalid: "Invalid type given. String or integer expected",
	KindNotIdentificationNumber:     "The value does not appear to be an identification number",

	KindVINInvalid:                 "Invalid type given. String expected",
	KindVINInvalidChars:            "The value contains invalid characters",
	KindVINInvalidCn:               "Invalid control number",
	KindVINInvalidConsecutiveOnes:  "The value contains consecutive ones",
	KindVINInvalidConsecutiveZeros: "The value contains consecutive zeros",
	KindVINInvalidLength:           "Invalid value length",

	KindDateFormatInvalid:       "Invalid type given. String or integer expected",
	KindDateFormatInvalidDate:   "Invalid date '%value%' given.",
	KindDateFormatInvalidFormat: "Date '%value%' doesn`t match format '%format%'",

	KindDateGreaterThanInvalid:      "Invalid type given. String or integer expected",
	KindNotDateGreaterThan:          "The input is not greater than date '%min%'",
	KindNotDateGreaterThanInclusive: "The input is not greater or equal than date '%min%'",

	KindDateLessThanInvalid:      "Invalid type given. String or integer expected",
	KindNotDateLessThan:          "The input is not less than date '%max%'",
	KindNotDateLessThanInclusive: "The input is not less or equal than date '%max%'",

	KindPhoneNumberInvalid:              "Invalid type given. String expected",
	KindPhoneNumberNoMatch:              "The input does not match a phone number format",
	KindPhoneNumberNoMatchInternational: "The input does not match an international phone number format",
	KindPhoneNumberUnsupported:          "The country provided is currently unsupported",

	KindJSONInvalid: "Json is invalid: %reason%",

	KindNoAlpha:           "Value must contain at least one alphabetic character",
	KindNoValidCharacters: "The input contains an invalid characters",
	KindNoCapitalLetter:   "Value must contain at least one capital letter",
	KindNoNumeric:         "Value must contain at least one numeric character",
	KindNoSmallLetter:     "Value must contain at least one small letter",

	KindValueInvalid:   "Invalid type given. Boolean, float, integer, or string expected",
	KindValueNotUnique: "Value must be unique",
}

// Outcome is the result of a single Validate call.
// The zero value is a valid outcome.
type Outcome struct {
	Kind ErrorKind
	Vars map[string]any
}

// Valid returns a successful outcome.
func Valid() Outcome { return Outcome{} }

// Invalid returns a failed outcome of the given kind.
// vars are exposed to message templates and translation catalogues.
func Invalid(kind ErrorKind, vars map[string]any) Outcome {
	return Outcome{Kind: kind, Vars: vars}
}

func (o Outcome) IsValid() bool { return o.Kind == "" }

// Message renders the default English message for the outcome.
// It returns an empty string for valid outcomes.
func (o Outcome) Message() string {
	if o.IsValid() {
		return ""
	}
	tpl, ok := messageTemplates[o.Kind]
	if !ok {
		return string(o.Kind)
	}
	if len(o.Vars) == 0 || !strings.Contains(tpl, "%") {
		return tpl
	}

	keys := make([]string, 0, len(o.Vars))
	for k := range o.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "%"+k+"%", fmt.Sprint(o.Vars[k]))
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

// Validator is implemented by every rule in this package.
// Implementations are immutable after construction and safe for concurrent use.
type Validator interface {
	Validate(v Value) Outcome
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(v Value) Outcome

func (f ValidatorFunc) Validate(v Value) Outcome { return f(v) }
