package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateParser reads dates written in one of the configured layouts first and
// falls back to any of the common notations (ISO 8601, RFC 1123, unix
// timestamps, ...). Values without a zone are read in loc.
//
// The layout comes first because the fallback reads dotted dates month first,
// while "05.03.2020" is the 5th of March in Czech and Slovak notation.
type dateParser struct {
	layout string
	loc    *time.Location
}

func newDateParser(layout, timezone string) (dateParser, error) {
	loc, err := loadLocation(timezone)
	if err != nil {
		return dateParser{}, err
	}
	return dateParser{layout: layout, loc: loc}, nil
}

func (p dateParser) parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	if t, ok := p.parseLayout(s); ok {
		return t, nil
	}
	return dateparse.ParseIn(s, p.loc)
}

// parseLayout accepts the layout with or without zero padded day and month.
func (p dateParser) parseLayout(s string) (time.Time, bool) {
	if p.layout == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{p.layout, relaxLayout(p.layout)} {
		if t, err := time.ParseInLocation(layout, s, p.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// relaxLayout replaces the zero padded day and month with their unpadded forms.
func relaxLayout(layout string) string {
	r := strings.NewReplacer("2006", "2006", "02", "2", "01", "1")
	return r.Replace(layout)
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Join(ErrInvalidOption, fmt.Errorf("timezone %q: %w", name, err))
	}
	return loc, nil
}

// normalizeDate drops a single leading zero and the zero after every dot, so
// that "05.03.2020" and "5.3.2020" compare equal.
func normalizeDate(s string) string {
	s = strings.TrimPrefix(s, "0")
	return strings.ReplaceAll(s, ".0", ".")
}

// DateFormatConfig configures the date format validator.
type DateFormatConfig struct {
	// Layout is a Go reference layout, e.g. "02.01.2006". Required.
	Layout string `yaml:"layout" json:"layout"`
	// Timezone is an IANA zone name used for values without an offset. Defaults to UTC.
	Timezone string `yaml:"timezone" json:"timezone,omitempty"`
}

// DateFormat validates that a value is a date written exactly in the configured layout.
// Leading zeros of the day and month may be omitted.
type DateFormat struct {
	layout string
	parser dateParser
}

func NewDateFormat(cfg DateFormatConfig) (*DateFormat, error) {
	if cfg.Layout == "" {
		return nil, errors.Join(ErrMissingOption, errors.New("date format expects a layout"))
	}
	parser, err := newDateParser(cfg.Layout, cfg.Timezone)
	if err != nil {
		return nil, err
	}
	return &DateFormat{layout: cfg.Layout, parser: parser}, nil
}

func (d *DateFormat) Validate(v Value) Outcome {
	if !v.IsScalar() {
		return Invalid(KindDateFormatInvalid, nil)
	}

	s := v.String()
	vars := map[string]any{"value": s, "format": d.layout}

	t, err := d.parser.parse(s)
	if err != nil {
		return Invalid(KindDateFormatInvalidDate, vars)
	}
	if normalizeDate(strings.TrimSpace(s)) != normalizeDate(t.Format(d.layout)) {
		return Invalid(KindDateFormatInvalidFormat, vars)
	}
	return Valid()
}

// DateGreaterThanConfig configures the lower date bound validator.
// Either Min or MinString must be set; Min takes precedence. MinString may be
// relative ("now", "today", "-18 years"), in which case it is resolved
// against Clock on every validation.
type DateGreaterThanConfig struct {
	Min       time.Time `yaml:"-" json:"-"`
	MinString string    `yaml:"min" json:"min"`
	Inclusive bool      `yaml:"inclusive" json:"inclusive"`
	Timezone  string    `yaml:"timezone" json:"timezone,omitempty"`
	// Layout is an optional Go reference layout tried before the generic notations.
	Layout string `yaml:"layout" json:"layout,omitempty"`
	// Clock supplies the current instant for relative bounds. Defaults to time.Now.
	Clock func() time.Time `yaml:"-" json:"-"`
}

// DateGreaterThan validates that a date is after (or, inclusive, not before) a bound.
type DateGreaterThan struct {
	min       dateBound
	inclusive bool
	parser    dateParser
}

func NewDateGreaterThan(cfg DateGreaterThanConfig) (*DateGreaterThan, error) {
	parser, err := newDateParser(cfg.Layout, cfg.Timezone)
	if err != nil {
		return nil, err
	}
	bound, err := newDateBound("min", cfg.Min, cfg.MinString, parser, cfg.Clock)
	if err != nil {
		return nil, err
	}
	return &DateGreaterThan{min: bound, inclusive: cfg.Inclusive, parser: parser}, nil
}

func (d *DateGreaterThan) Validate(v Value) Outcome {
	if !v.IsScalar() {
		return Invalid(KindDateGreaterThanInvalid, nil)
	}
	t, err := d.parser.parse(v.String())
	if err != nil {
		return Invalid(KindDateGreaterThanInvalid, nil)
	}

	bound := d.min.resolve()
	vars := map[string]any{"min": d.min.label}
	if d.inclusive {
		if t.Before(bound) {
			return Invalid(KindNotDateGreaterThanInclusive, vars)
		}
		return Valid()
	}
	if !t.After(bound) {
		return Invalid(KindNotDateGreaterThan, vars)
	}
	return Valid()
}

// DateLessThanConfig configures the upper date bound validator.
// Either Max or MaxString must be set; Max takes precedence. MaxString may be
// relative, see DateGreaterThanConfig.
type DateLessThanConfig struct {
	Max       time.Time `yaml:"-" json:"-"`
	MaxString string    `yaml:"max" json:"max"`
	Inclusive bool      `yaml:"inclusive" json:"inclusive"`
	Timezone  string    `yaml:"timezone" json:"timezone,omitempty"`
	// Layout is an optional Go reference layout tried before the generic notations.
	Layout string `yaml:"layout" json:"layout,omitempty"`
	// Clock supplies the current instant for relative bounds. Defaults to time.Now.
	Clock func() time.Time `yaml:"-" json:"-"`
}

// DateLessThan validates that a date is before (or, inclusive, not after) a bound.
type DateLessThan struct {
	max       dateBound
	inclusive bool
	parser    dateParser
}

func NewDateLessThan(cfg DateLessThanConfig) (*DateLessThan, error) {
	parser, err := newDateParser(cfg.Layout, cfg.Timezone)
	if err != nil {
		return nil, err
	}
	bound, err := newDateBound("max", cfg.Max, cfg.MaxString, parser, cfg.Clock)
	if err != nil {
		return nil, err
	}
	return &DateLessThan{max: bound, inclusive: cfg.Inclusive, parser: parser}, nil
}

func (d *DateLessThan) Validate(v Value) Outcome {
	if !v.IsScalar() {
		return Invalid(KindDateLessThanInvalid, nil)
	}
	t, err := d.parser.parse(v.String())
	if err != nil {
		return Invalid(KindDateLessThanInvalid, nil)
	}

	bound := d.max.resolve()
	vars := map[string]any{"max": d.max.label}
	if d.inclusive {
		if t.After(bound) {
			return Invalid(KindNotDateLessThanInclusive, vars)
		}
		return Valid()
	}
	if !t.Before(bound) {
		return Invalid(KindNotDateLessThan, vars)
	}
	return Valid()
}

func newDateBound(name string, fixed time.Time, raw string, parser dateParser, clock func() time.Time) (dateBound, error) {
	if !fixed.IsZero() {
		return dateBound{fixed: fixed, label: fixed.Format(time.RFC3339)}, nil
	}
	if raw == "" {
		return dateBound{}, errors.Join(ErrMissingOption, fmt.Errorf("%q option is required", name))
	}
	if rd, ok := parseRelativeDate(raw); ok {
		return dateBound{relative: &rd, label: raw, loc: parser.loc, clock: clockOrNow(clock)}, nil
	}
	t, err := parser.parse(raw)
	if err != nil {
		return dateBound{}, errors.Join(ErrInvalidDate, fmt.Errorf("%s %q: %w", name, raw, err))
	}
	return dateBound{fixed: t, label: raw}, nil
}
