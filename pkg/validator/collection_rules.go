package validator

import (
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UniqueValueConfig configures the uniqueness validator.
type UniqueValueConfig struct {
	// Haystack holds the values already taken. Required.
	Haystack []Value `yaml:"-" json:"-"`
	// CaseSensitive disables lowercasing of strings before comparison.
	CaseSensitive bool `yaml:"case_sensitive" json:"case_sensitive"`
	// Strict requires equal types as well as equal values.
	Strict bool `yaml:"strict" json:"strict"`
}

// UniqueValue validates that a value does not occur in a reference collection.
type UniqueValue struct {
	haystack      []Value
	caseSensitive bool
	strict        bool
}

func NewUniqueValue(cfg UniqueValueConfig) (*UniqueValue, error) {
	if len(cfg.Haystack) == 0 {
		return nil, errors.Join(ErrMissingOption, errors.New("unique value expects a haystack"))
	}

	u := &UniqueValue{
		caseSensitive: cfg.CaseSensitive,
		strict:        cfg.Strict,
	}
	u.haystack = make([]Value, len(cfg.Haystack))
	for i, h := range cfg.Haystack {
		u.haystack[i] = u.fold(h)
	}
	return u, nil
}

func (u *UniqueValue) Validate(v Value) Outcome {
	if !v.IsScalar() {
		return Invalid(KindValueInvalid, nil)
	}

	needle := u.fold(v)
	for _, h := range u.haystack {
		if u.equal(needle, h) {
			return Invalid(KindValueNotUnique, nil)
		}
	}
	return Valid()
}

// fold lowercases strings unless the comparison is case sensitive.
// A cases.Caser is not safe for concurrent use, so each call gets its own.
func (u *UniqueValue) fold(v Value) Value {
	if u.caseSensitive || v.Type() != TypeString {
		return v
	}
	return String(cases.Lower(language.Und).String(v.String()))
}

func (u *UniqueValue) equal(a, b Value) bool {
	if u.strict {
		return a.Type() == b.Type() && a.Any() == b.Any()
	}
	if a.Type() == TypeBool || b.Type() == TypeBool {
		return a.IsEmpty() == b.IsEmpty()
	}
	if an, ok := a.number(); ok {
		if bn, ok := b.number(); ok {
			return an == bn
		}
	}
	return a.String() == b.String()
}
