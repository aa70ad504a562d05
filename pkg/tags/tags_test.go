package tags_test

import (
	"errors"
	"testing"
	"time"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idcheck/pkg/tags"
)

func clock() time.Time {
	return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
}

type vehicle struct {
	Owner   string  `validate:"required,cz_birth_number"`
	Child   string  `validate:"omitempty,cz_birth_number_minor"`
	Company string  `validate:"cz_ico"`
	VIN     string  `validate:"vin"`
	Strict  string  `validate:"omitempty,vin_strict"`
	Phone   string  `validate:"phone_czsk"`
	Extra   string  `validate:"json_syntax"`
	OwnerID *int64  `validate:"omitempty,cz_birth_number"`
	Alias   ownerID `validate:"omitempty,cz_birth_number"`
}

type ownerID string

func validVehicle() vehicle {
	return vehicle{
		Owner:   "8001011238",
		Child:   "1005051234",
		Company: "25596641",
		VIN:     "1HGCM82643A004352",
		Strict:  "1HGCM82633A004352",
		Phone:   "+420 603 123 456",
		Extra:   `{"note":"ok"}`,
	}
}

func failedTags(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs playground.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func TestNew(t *testing.T) {
	t.Parallel()
	v := tags.MustNew(tags.WithClock(clock))

	t.Run("valid struct", func(t *testing.T) {
		assert.NoError(t, v.Struct(validVehicle()))
	})

	t.Run("every tag reports its field", func(t *testing.T) {
		bad := vehicle{
			Owner:   "8001011239",
			Child:   "8001011238",
			Company: "12345678",
			VIN:     "1HGCM82633A00435",
			Strict:  "1HGCM82643A004352",
			Phone:   "012345678",
			Extra:   "{bad}",
		}
		assert.Equal(t, map[string]string{
			"Owner":   tags.TagBirthNumber,
			"Child":   tags.TagBirthNumberMinor,
			"Company": tags.TagICO,
			"VIN":     tags.TagVIN,
			"Strict":  tags.TagVINStrict,
			"Phone":   tags.TagPhone,
			"Extra":   tags.TagJSON,
		}, failedTags(t, v.Struct(bad)))
	})

	t.Run("pointers and named types", func(t *testing.T) {
		good := validVehicle()
		id := int64(8001011238)
		good.OwnerID = &id
		good.Alias = "0572101233"
		assert.NoError(t, v.Struct(good))

		bad := validVehicle()
		wrong := int64(8001011239)
		bad.OwnerID = &wrong
		bad.Alias = "0102291233"
		assert.Equal(t, map[string]string{
			"OwnerID": tags.TagBirthNumber,
			"Alias":   tags.TagBirthNumber,
		}, failedTags(t, v.Struct(bad)))
	})
}

func TestTagParameters(t *testing.T) {
	t.Parallel()
	v := tags.MustNew(tags.WithClock(clock))

	type form struct {
		Child string `validate:"cz_birth_number_minor=15"`
		Phone string `validate:"phone_czsk=sk-SK"`
	}

	assert.NoError(t, v.Struct(form{Child: "1505051230", Phone: "+421 905 123 456"}))
	assert.Equal(t, map[string]string{
		"Child": tags.TagBirthNumberMinor,
		"Phone": tags.TagPhone,
	}, failedTags(t, v.Struct(form{Child: "1005051234", Phone: "+420 603 123 456"})))

	type broken struct {
		Child string `validate:"cz_birth_number_minor=many"`
	}
	assert.Error(t, v.Struct(broken{Child: "1005051234"}))
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("exclusions", func(t *testing.T) {
		v := tags.MustNew(tags.WithClock(clock), tags.WithBirthNumberExclude(`0000$`), tags.WithICOExclude(`^9999`))
		assert.NoError(t, v.Var("8001010000", tags.TagBirthNumber))
		assert.NoError(t, v.Var("99990000", tags.TagICO))
	})

	t.Run("minor child limit", func(t *testing.T) {
		v := tags.MustNew(tags.WithClock(clock), tags.WithMinorChildLimit(15))
		assert.Error(t, v.Var("1005051234", tags.TagBirthNumberMinor))
	})

	t.Run("strict phone", func(t *testing.T) {
		v := tags.MustNew(tags.WithStrictPhone(), tags.WithPhoneLocales("cs-CZ"))
		assert.NoError(t, v.Var("+420603123456", tags.TagPhone))
		assert.Error(t, v.Var("603123456", tags.TagPhone))
		assert.Error(t, v.Var("+421905123456", tags.TagPhone))
	})

	t.Run("long VIN sequences", func(t *testing.T) {
		v := tags.MustNew(tags.WithoutLongVINSequences())
		assert.Error(t, v.Var("1M8GDM9AX0000000Z", tags.TagVIN))
		assert.NoError(t, tags.MustNew().Var("1M8GDM9AX0000000Z", tags.TagVIN))
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := tags.New(tags.WithBirthNumberExclude("("))
		assert.ErrorIs(t, err, tags.ErrInvalidOptions)

		_, err = tags.New(tags.WithMinorChildLimit(0))
		assert.ErrorIs(t, err, tags.ErrInvalidOptions)

		assert.Panics(t, func() { tags.MustNew(tags.WithMinorChildLimit(-1)) })
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	v := playground.New()
	require.NoError(t, tags.Register(v, tags.WithClock(clock)))
	assert.NoError(t, v.Var("25596641", tags.TagICO))
	assert.Error(t, v.Var("25596642", tags.TagICO))
	assert.NoError(t, v.Var(25596641, tags.TagICO))
}
