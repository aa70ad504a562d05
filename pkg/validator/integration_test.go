package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idcheck/pkg/validator"
)

type vehicleRegistration struct {
	OwnerBirthNumber string
	CompanyID        string
	VIN              string
	Phone            string
	RegisteredAt     string
	Metadata         string
}

type registrationValidators struct {
	birthNumber *validator.BirthNumber
	company     *validator.IdentificationNumber
	vin         *validator.VIN
	phone       *validator.PhoneNumberCZSK
	date        *validator.DateFormat
	after       *validator.DateGreaterThan
	metadata    *validator.JSON
}

func newRegistrationValidators(t *testing.T) registrationValidators {
	t.Helper()

	var (
		rv  registrationValidators
		err error
	)
	rv.birthNumber, err = validator.NewBirthNumber(validator.BirthNumberConfig{Clock: fixedClock})
	require.NoError(t, err)
	rv.company, err = validator.NewIdentificationNumber(validator.IdentificationNumberConfig{})
	require.NoError(t, err)
	rv.vin, err = validator.NewVIN(validator.VINConfig{Strict: true})
	require.NoError(t, err)
	rv.phone, err = validator.NewPhoneNumberCZSK(validator.PhoneNumberCZSKConfig{})
	require.NoError(t, err)
	rv.date, err = validator.NewDateFormat(validator.DateFormatConfig{Layout: "02.01.2006", Timezone: "Europe/Prague"})
	require.NoError(t, err)
	rv.after, err = validator.NewDateGreaterThan(validator.DateGreaterThanConfig{
		MinString: "01.01.2000",
		Layout:    "02.01.2006",
		Inclusive: true,
		Timezone:  "Europe/Prague",
	})
	require.NoError(t, err)
	rv.metadata = validator.NewJSON()
	return rv
}

func (rv registrationValidators) validate(form vehicleRegistration) error {
	return validator.Apply(
		validator.Check("owner_birth_number", rv.birthNumber, validator.String(form.OwnerBirthNumber)),
		validator.Check("company_id", rv.company, validator.String(form.CompanyID)),
		validator.Check("vin", rv.vin, validator.String(form.VIN)),
		validator.Check("phone", rv.phone, validator.String(form.Phone)),
		validator.Check("registered_at", rv.date, validator.String(form.RegisteredAt)),
		validator.Check("registered_at", rv.after, validator.String(form.RegisteredAt)),
		validator.Check("metadata", rv.metadata, validator.String(form.Metadata)),
	)
}

func TestVehicleRegistrationValidation(t *testing.T) {
	t.Parallel()
	rv := newRegistrationValidators(t)

	t.Run("validates a correct registration", func(t *testing.T) {
		err := rv.validate(vehicleRegistration{
			OwnerBirthNumber: "8001011238",
			CompanyID:        "25596641",
			VIN:              "1M8GDM9AXKP042788",
			Phone:            "+420 603 123 456",
			RegisteredAt:     "15.06.2021",
			Metadata:         `{"colour":"red"}`,
		})
		assert.NoError(t, err)
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		err := rv.validate(vehicleRegistration{
			OwnerBirthNumber: "8001011239",
			CompanyID:        "12345678",
			VIN:              "1HGCM82643A004352",
			Phone:            "012 345 678",
			RegisteredAt:     "1999-12-31",
			Metadata:         `{colour:red}`,
		})
		require.Error(t, err)
		require.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"owner_birth_number", "company_id", "vin", "phone", "registered_at", "metadata"}, verrs.Fields())

		assert.Equal(t, []validator.ErrorKind{validator.KindNotBirthNumber}, verrs.Kinds("owner_birth_number"))
		assert.Equal(t, []validator.ErrorKind{validator.KindNotIdentificationNumber}, verrs.Kinds("company_id"))
		assert.Equal(t, []validator.ErrorKind{validator.KindVINInvalidCn}, verrs.Kinds("vin"))
		assert.Equal(t, []validator.ErrorKind{validator.KindPhoneNumberNoMatch}, verrs.Kinds("phone"))
		assert.Equal(t, []validator.ErrorKind{
			validator.KindDateFormatInvalidFormat,
			validator.KindNotDateGreaterThanInclusive,
		}, verrs.Kinds("registered_at"))
		assert.Equal(t, []validator.ErrorKind{validator.KindJSONInvalid}, verrs.Kinds("metadata"))

		assert.Contains(t, verrs.Get("registered_at"), "The input is not greater or equal than date '01.01.2000'")
		for _, verr := range verrs {
			assert.Equal(t, "validation."+string(verr.Kind), verr.TranslationKey)
			assert.Equal(t, verr.Field, verr.TranslationValues["field"])
		}
	})

	t.Run("validators are reusable", func(t *testing.T) {
		form := vehicleRegistration{
			OwnerBirthNumber: "0572101233",
			CompanyID:        "23337",
			VIN:              "WVWZZZ1JZ3W386752",
			Phone:            "905123456",
			RegisteredAt:     "1.1.2000",
		}
		for range 3 {
			assert.NoError(t, rv.validate(form))
		}
	})
}
