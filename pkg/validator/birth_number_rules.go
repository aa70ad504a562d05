package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DefaultMinorChildLimit is the age of majority in years.
const DefaultMinorChildLimit = 18

var birthNumberRegex = regexp.MustCompile(`^\s*(\d\d)(\d\d)(\d\d)(\d\d\d)(\d?)\s*$`)

// BirthNumberConfig configures the birth number validator.
type BirthNumberConfig struct {
	// Exclude lists regular expressions (RE2 syntax) of values that are always valid,
	// e.g. `0000$` for test numbers.
	Exclude []string `yaml:"exclude" json:"exclude,omitempty"`
	// Clock supplies the reference instant used for century resolution. Defaults to time.Now.
	Clock func() time.Time `yaml:"-" json:"-"`
}

// BirthNumber validates Czech and Slovak birth numbers (rodné číslo), 9 or 10 digits.
type BirthNumber struct {
	exclude exclusions
	clock   func() time.Time
}

// NewBirthNumber builds a birth number validator.
// It returns ErrInvalidPattern when an exclusion pattern does not compile.
func NewBirthNumber(cfg BirthNumberConfig) (*BirthNumber, error) {
	ex, err := compileExclusions(cfg.Exclude)
	if err != nil {
		return nil, err
	}
	return &BirthNumber{exclude: ex, clock: clockOrNow(cfg.Clock)}, nil
}

func (b *BirthNumber) Validate(v Value) Outcome {
	if !v.IsStringOrInt() {
		return Invalid(KindBirthNumberInvalid, nil)
	}

	s := v.String()
	if b.exclude.match(s) {
		return Valid()
	}

	bn, ok := parseBirthNumber(s, b.clock().Year())
	if !ok {
		return Invalid(KindNotBirthNumber, nil)
	}
	// Numbers issued before 1954 carry no check digit and cannot be verified.
	if !bn.hasCheck {
		return Valid()
	}
	if !bn.verify() {
		return Invalid(KindNotBirthNumber, nil)
	}
	return Valid()
}

// BirthNumberMinorChildConfig configures the minor child validator.
type BirthNumberMinorChildConfig struct {
	// Limit is the age in years from which a person is no longer a minor. Must be > 0.
	Limit   int              `yaml:"limit" json:"limit"`
	Exclude []string         `yaml:"exclude" json:"exclude,omitempty"`
	Clock   func() time.Time `yaml:"-" json:"-"`
}

// DefaultBirthNumberMinorChildConfig returns a config with the default age limit.
func DefaultBirthNumberMinorChildConfig() BirthNumberMinorChildConfig {
	return BirthNumberMinorChildConfig{Limit: DefaultMinorChildLimit}
}

// BirthNumberMinorChild validates that a birth number belongs to a person
// younger than the configured limit.
type BirthNumberMinorChild struct {
	limit   int
	exclude exclusions
	clock   func() time.Time
}

// NewBirthNumberMinorChild builds a minor child validator.
// A non-positive limit is rejected with ErrInvalidLimit.
func NewBirthNumberMinorChild(cfg BirthNumberMinorChildConfig) (*BirthNumberMinorChild, error) {
	if cfg.Limit <= 0 {
		return nil, errors.Join(ErrInvalidLimit, fmt.Errorf("got %d", cfg.Limit))
	}
	ex, err := compileExclusions(cfg.Exclude)
	if err != nil {
		return nil, err
	}
	return &BirthNumberMinorChild{
		limit:   cfg.Limit,
		exclude: ex,
		clock:   clockOrNow(cfg.Clock),
	}, nil
}

func (m *BirthNumberMinorChild) Validate(v Value) Outcome {
	if !v.IsStringOrInt() {
		return Invalid(KindIntInvalid, nil)
	}

	s := v.String()
	if m.exclude.match(s) {
		return Valid()
	}

	now := m.clock()
	bn, ok := parseBirthNumber(s, now.Year())
	if !ok {
		return Invalid(KindNotBirthNumber, nil)
	}
	if !bn.hasCheck {
		return Valid()
	}
	if !bn.verify() {
		return Invalid(KindNotBirthNumber, nil)
	}

	if bn.birthDate().Before(now.AddDate(-m.limit, 0, 0)) {
		return Invalid(KindNotMinorChild, map[string]any{"limit": m.limit})
	}
	return Valid()
}

// birthNumber holds the fields of a parsed birth number. It never outlives a call.
type birthNumber struct {
	digits   string // YYMMDDEEE without the check digit
	yy       int
	rawMonth int
	day      int
	check    int
	hasCheck bool
	year     int // resolved four-digit year
	month    int // month with the offset removed
}

func parseBirthNumber(s string, refYear int) (birthNumber, bool) {
	m := birthNumberRegex.FindStringSubmatch(s)
	if m == nil {
		return birthNumber{}, false
	}

	bn := birthNumber{digits: m[1] + m[2] + m[3] + m[4]}
	bn.yy, _ = strconv.Atoi(m[1])
	bn.rawMonth, _ = strconv.Atoi(m[2])
	bn.day, _ = strconv.Atoi(m[3])
	if m[5] != "" {
		bn.hasCheck = true
		bn.check = int(m[5][0] - '0')
	}

	bn.year = resolveBirthYear(bn.yy, bn.hasCheck, refYear)
	bn.month = decodeBirthMonth(bn.rawMonth, bn.year)
	return bn, true
}

// verify checks the check digit and the encoded calendar date.
func (bn birthNumber) verify() bool {
	if nationalCheckDigit(decimalMod11(bn.digits)) != bn.check {
		return false
	}
	return validDate(bn.year, bn.month, bn.day)
}

func (bn birthNumber) birthDate() time.Time {
	return time.Date(bn.year, time.Month(bn.month), bn.day, 0, 0, 0, 0, time.UTC)
}

func clockOrNow(clock func() time.Time) func() time.Time {
	if clock == nil {
		return time.Now
	}
	return clock
}
