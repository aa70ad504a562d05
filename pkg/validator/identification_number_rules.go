package validator

import (
	"regexp"
	"strings"
)

const identificationNumberLength = 8

var identificationNumberRegex = regexp.MustCompile(`^\d{8}$`)

// IdentificationNumberConfig configures the identification number validator.
type IdentificationNumberConfig struct {
	// Exclude lists patterns matched against the zero-padded eight digit form.
	Exclude []string `yaml:"exclude" json:"exclude,omitempty"`
}

// IdentificationNumber validates Czech organisation identification numbers (IČO).
type IdentificationNumber struct {
	exclude exclusions
}

// NewIdentificationNumber builds an identification number validator.
// It returns ErrInvalidPattern when an exclusion pattern does not compile.
func NewIdentificationNumber(cfg IdentificationNumberConfig) (*IdentificationNumber, error) {
	ex, err := compileExclusions(cfg.Exclude)
	if err != nil {
		return nil, err
	}
	return &IdentificationNumber{exclude: ex}, nil
}

func (n *IdentificationNumber) Validate(v Value) Outcome {
	if !v.IsStringOrInt() {
		return Invalid(KindIdentificationNumberInvalid, nil)
	}

	s := padLeft(v.String(), identificationNumberLength, '0')
	if !identificationNumberRegex.MatchString(s) {
		return Invalid(KindNotIdentificationNumber, nil)
	}
	if n.exclude.match(s) {
		return Valid()
	}

	digits := make([]int, identificationNumberLength-1)
	weights := make([]int, identificationNumberLength-1)
	for i := range digits {
		digits[i] = int(s[i] - '0')
		weights[i] = identificationNumberLength - i
	}

	var check int
	switch mod := weightedSum(digits, weights); mod {
	case 0, 10:
		check = 1
	case 1:
		check = 0
	default:
		check = 11 - mod
	}

	if int(s[identificationNumberLength-1]-'0') != check {
		return Invalid(KindNotIdentificationNumber, nil)
	}
	return Valid()
}

// padLeft pads s with c up to n bytes. Longer strings are returned unchanged.
func padLeft(s string, n int, c byte) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(string(c), n-len(s)) + s
}
