package validator

import (
	"errors"
	"fmt"
	"strings"
)

// MaxASCIILimit is the upper bound of StringContainsConfig.ASCIILimit.
const MaxASCIILimit = 128

// StringContainsConfig configures the character composition validator.
type StringContainsConfig struct {
	// Characters is an allowlist; every character of the value must be in it.
	Characters string `yaml:"characters" json:"characters,omitempty"`
	// ASCIILimit allows the first N ASCII code points (0..N-1) instead of an allowlist.
	// Zero disables the check.
	ASCIILimit int `yaml:"ascii_limit" json:"ascii_limit,omitempty"`

	RequireAlpha         bool `yaml:"require_alpha" json:"require_alpha"`
	RequireCapitalLetter bool `yaml:"require_capital_letter" json:"require_capital_letter"`
	RequireNumeric       bool `yaml:"require_numeric" json:"require_numeric"`
	RequireSmallLetter   bool `yaml:"require_small_letter" json:"require_small_letter"`
}

// StringContains checks which character classes a string is made of.
// Conditions are evaluated in a fixed order and the first failing one is reported:
// alpha, allowed characters, capital letter, digit, small letter.
type StringContains struct {
	allowed    map[rune]struct{}
	asciiLimit int
	cfg        StringContainsConfig
}

func NewStringContains(cfg StringContainsConfig) (*StringContains, error) {
	if cfg.ASCIILimit < 0 || cfg.ASCIILimit > MaxASCIILimit {
		return nil, errors.Join(ErrInvalidOption, fmt.Errorf("ascii limit must be within 0..%d, got %d", MaxASCIILimit, cfg.ASCIILimit))
	}
	if cfg.ASCIILimit > 0 && cfg.Characters != "" {
		return nil, errors.Join(ErrInvalidOption, errors.New("characters and ascii limit are mutually exclusive"))
	}

	sc := &StringContains{asciiLimit: cfg.ASCIILimit, cfg: cfg}
	if cfg.Characters != "" {
		sc.allowed = make(map[rune]struct{}, len(cfg.Characters))
		for _, r := range cfg.Characters {
			sc.allowed[r] = struct{}{}
		}
	}
	return sc, nil
}

func (c *StringContains) Validate(v Value) Outcome {
	s := v.String()

	if c.cfg.RequireAlpha && !strings.ContainsFunc(s, isASCIILetter) {
		return Invalid(KindNoAlpha, nil)
	}
	if !c.onlyAllowed(s) {
		return Invalid(KindNoValidCharacters, nil)
	}
	if c.cfg.RequireCapitalLetter && !strings.ContainsFunc(s, isASCIIUpper) {
		return Invalid(KindNoCapitalLetter, nil)
	}
	if c.cfg.RequireNumeric && !strings.ContainsFunc(s, isASCIIDigit) {
		return Invalid(KindNoNumeric, nil)
	}
	if c.cfg.RequireSmallLetter && !strings.ContainsFunc(s, isASCIILower) {
		return Invalid(KindNoSmallLetter, nil)
	}
	return Valid()
}

func (c *StringContains) onlyAllowed(s string) bool {
	switch {
	case c.allowed != nil:
		for _, r := range s {
			if _, ok := c.allowed[r]; !ok {
				return false
			}
		}
	case c.asciiLimit > 0:
		for _, r := range s {
			if r >= rune(c.asciiLimit) {
				return false
			}
		}
	}
	return true
}

func isASCIIUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isASCIILetter(r rune) bool { return isASCIIUpper(r) || isASCIILower(r) }
