package tags

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/idcheck/pkg/validator"
)

// Tag names registered by Register.
const (
	TagBirthNumber      = "cz_birth_number"
	TagBirthNumberMinor = "cz_birth_number_minor"
	TagICO              = "cz_ico"
	TagVIN              = "vin"
	TagVINStrict        = "vin_strict"
	TagPhone            = "phone_czsk"
	TagJSON             = "json_syntax"
)

type options struct {
	clock          func() time.Time
	exclude        []string
	icoExclude     []string
	minorLimit     int
	phoneLocales   []string
	phoneStrict    bool
	vinLongAllowed bool
}

// Option configures the validators behind the registered tags.
type Option func(*options)

// WithClock sets the clock used for century resolution and age checks.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithBirthNumberExclude sets patterns of birth numbers that are always accepted.
func WithBirthNumberExclude(patterns ...string) Option {
	return func(o *options) { o.exclude = patterns }
}

// WithICOExclude sets patterns of identification numbers that are always accepted.
func WithICOExclude(patterns ...string) Option {
	return func(o *options) { o.icoExclude = patterns }
}

// WithMinorChildLimit sets the default age limit of cz_birth_number_minor.
// A tag parameter, e.g. `cz_birth_number_minor=15`, takes precedence.
func WithMinorChildLimit(limit int) Option {
	return func(o *options) { o.minorLimit = limit }
}

// WithPhoneLocales restricts phone_czsk to the given locales.
// A tag parameter, e.g. `phone_czsk=sk-SK`, takes precedence.
func WithPhoneLocales(locales ...string) Option {
	return func(o *options) { o.phoneLocales = locales }
}

// WithStrictPhone requires phone numbers in international form.
func WithStrictPhone() Option {
	return func(o *options) { o.phoneStrict = true }
}

// WithoutLongVINSequences rejects VINs with seven zeros or six ones in a row.
func WithoutLongVINSequences() Option {
	return func(o *options) { o.vinLongAllowed = false }
}

// New creates a go-playground validator with all tags registered.
func New(opts ...Option) (*playground.Validate, error) {
	v := playground.New(playground.WithRequiredStructEnabled())
	if err := Register(v, opts...); err != nil {
		return nil, err
	}
	return v, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *playground.Validate {
	v, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Register adds the tags to an existing validator instance.
func Register(v *playground.Validate, opts ...Option) error {
	o := options{
		minorLimit:     validator.DefaultMinorChildLimit,
		vinLongAllowed: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	birthNumber, err := validator.NewBirthNumber(validator.BirthNumberConfig{Exclude: o.exclude, Clock: o.clock})
	if err != nil {
		return errors.Join(ErrInvalidOptions, err)
	}
	minor, err := newMinorChild(o, o.minorLimit)
	if err != nil {
		return err
	}
	ico, err := validator.NewIdentificationNumber(validator.IdentificationNumberConfig{Exclude: o.icoExclude})
	if err != nil {
		return errors.Join(ErrInvalidOptions, err)
	}
	vin, err := validator.NewVIN(validator.VINConfig{AllowLongSequences: o.vinLongAllowed})
	if err != nil {
		return errors.Join(ErrInvalidOptions, err)
	}
	vinStrict, err := validator.NewVIN(validator.VINConfig{Strict: true, AllowLongSequences: o.vinLongAllowed})
	if err != nil {
		return errors.Join(ErrInvalidOptions, err)
	}
	phone, err := validator.NewPhoneNumberCZSK(validator.PhoneNumberCZSKConfig{Locales: o.phoneLocales, Strict: o.phoneStrict})
	if err != nil {
		return errors.Join(ErrInvalidOptions, err)
	}

	funcs := map[string]playground.Func{
		TagBirthNumber: check(birthNumber),
		TagBirthNumberMinor: func(fl playground.FieldLevel) bool {
			rule := validator.Validator(minor)
			if p := fl.Param(); p != "" {
				limit, err := strconv.Atoi(p)
				if err != nil {
					return false
				}
				custom, err := newMinorChild(o, limit)
				if err != nil {
					return false
				}
				rule = custom
			}
			return rule.Validate(fieldValue(fl.Field())).IsValid()
		},
		TagICO:       check(ico),
		TagVIN:       check(vin),
		TagVINStrict: check(vinStrict),
		TagPhone: func(fl playground.FieldLevel) bool {
			rule := validator.Validator(phone)
			if p := fl.Param(); p != "" {
				custom, err := validator.NewPhoneNumberCZSK(validator.PhoneNumberCZSKConfig{
					Locales: strings.Fields(p),
					Strict:  o.phoneStrict,
				})
				if err != nil {
					return false
				}
				rule = custom
			}
			return rule.Validate(fieldValue(fl.Field())).IsValid()
		},
		TagJSON: check(validator.NewJSON()),
	}

	for _, tag := range []string{TagBirthNumber, TagBirthNumberMinor, TagICO, TagVIN, TagVINStrict, TagPhone, TagJSON} {
		if err := v.RegisterValidation(tag, funcs[tag]); err != nil {
			return fmt.Errorf("register %s validation: %w", tag, err)
		}
	}
	return nil
}

func newMinorChild(o options, limit int) (*validator.BirthNumberMinorChild, error) {
	minor, err := validator.NewBirthNumberMinorChild(validator.BirthNumberMinorChildConfig{
		Limit:   limit,
		Exclude: o.exclude,
		Clock:   o.clock,
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidOptions, err)
	}
	return minor, nil
}

func check(rule validator.Validator) playground.Func {
	return func(fl playground.FieldLevel) bool {
		return rule.Validate(fieldValue(fl.Field())).IsValid()
	}
}

// fieldValue converts a struct field into a validator.Value.
// Nil pointers become null, other pointers are dereferenced.
func fieldValue(field reflect.Value) validator.Value {
	for field.Kind() == reflect.Pointer || field.Kind() == reflect.Interface {
		if field.IsNil() {
			return validator.Null()
		}
		field = field.Elem()
	}
	if !field.IsValid() || !field.CanInterface() {
		return validator.Null()
	}

	// Named types (type BirthNumber string) are passed through their kind.
	switch field.Kind() {
	case reflect.String:
		return validator.String(field.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return validator.Int(field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return validator.ValueOf(field.Uint())
	case reflect.Float32, reflect.Float64:
		return validator.Float(field.Float())
	case reflect.Bool:
		return validator.Bool(field.Bool())
	default:
		return validator.ValueOf(field.Interface())
	}
}
