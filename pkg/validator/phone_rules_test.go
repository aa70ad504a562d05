package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idcheck/pkg/validator"
)

func newPhone(t *testing.T, cfg validator.PhoneNumberCZSKConfig) *validator.PhoneNumberCZSK {
	t.Helper()
	v, err := validator.NewPhoneNumberCZSK(cfg)
	require.NoError(t, err)
	return v
}

func TestPhoneNumberCZSK(t *testing.T) {
	t.Parallel()

	t.Run("any supported locale", func(t *testing.T) {
		v := newPhone(t, validator.PhoneNumberCZSKConfig{})
		for _, value := range []string{
			"603123456",
			"603 123 456",
			"+420 603 123 456",
			"+420603123456",
			"420603123456",
			"+421 905 123 456",
			"421905123456",
		} {
			assert.True(t, v.Validate(validator.String(value)).IsValid(), "should be valid: %q", value)
		}
		for _, value := range []string{
			"012345678",
			"60312345",
			"6031234567",
			"+48 603 123 456",
			"603-123-456",
			"",
		} {
			assert.Equal(t, validator.KindPhoneNumberNoMatch, v.Validate(validator.String(value)).Kind, "should not match: %q", value)
		}
	})

	t.Run("only strings are accepted", func(t *testing.T) {
		v := newPhone(t, validator.PhoneNumberCZSKConfig{})
		for _, value := range []validator.Value{validator.Int(603123456), validator.Float(6.03), validator.Null()} {
			assert.Equal(t, validator.KindPhoneNumberInvalid, v.Validate(value).Kind)
		}
	})

	t.Run("restricted locale", func(t *testing.T) {
		v := newPhone(t, validator.PhoneNumberCZSKConfig{Locales: []string{validator.LocaleSlovak}})
		assert.True(t, v.Validate(validator.String("+421905123456")).IsValid())
		assert.Equal(t, validator.KindPhoneNumberNoMatch, v.Validate(validator.String("+420603123456")).Kind)
	})

	t.Run("locale tags are canonicalised", func(t *testing.T) {
		v := newPhone(t, validator.PhoneNumberCZSKConfig{Locales: []string{"cs-cz"}})
		assert.True(t, v.Validate(validator.String("+420603123456")).IsValid())
	})

	t.Run("unsupported locale", func(t *testing.T) {
		v := newPhone(t, validator.PhoneNumberCZSKConfig{Locales: []string{"de-DE"}})
		outcome := v.Validate(validator.String("+420603123456"))
		assert.Equal(t, validator.KindPhoneNumberUnsupported, outcome.Kind)
		assert.Equal(t, "de-DE", outcome.Vars["locale"])

		mixed := newPhone(t, validator.PhoneNumberCZSKConfig{Locales: []string{validator.LocaleCzech, "de-DE"}})
		assert.True(t, mixed.Validate(validator.String("+420603123456")).IsValid())
		assert.Equal(t, validator.KindPhoneNumberUnsupported, mixed.Validate(validator.String("+421905123456")).Kind)
	})

	t.Run("strict mode requires international form", func(t *testing.T) {
		v := newPhone(t, validator.PhoneNumberCZSKConfig{Strict: true})
		assert.True(t, v.Validate(validator.String("+420 603 123 456")).IsValid())
		assert.True(t, v.Validate(validator.String("+421905123456")).IsValid())
		assert.Equal(t, validator.KindPhoneNumberNoMatchInternational, v.Validate(validator.String("603123456")).Kind)
		assert.Equal(t, validator.KindPhoneNumberNoMatchInternational, v.Validate(validator.String("420603123456")).Kind)
		assert.Equal(t, validator.KindPhoneNumberNoMatchInternational, v.Validate(validator.String("+48603123456")).Kind)
	})
}
