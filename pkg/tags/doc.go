// Package tags registers the identifier validators as struct tags on a
// github.com/go-playground/validator/v10 instance.
//
//	type Vehicle struct {
//	    Owner   string `validate:"required,cz_birth_number"`
//	    Child   string `validate:"omitempty,cz_birth_number_minor=15"`
//	    Company string `validate:"cz_ico"`
//	    VIN     string `validate:"vin_strict"`
//	    Phone   string `validate:"phone_czsk=sk-SK"`
//	    Extra   string `validate:"json_syntax"`
//	}
//
//	v := tags.MustNew(tags.WithBirthNumberExclude(`0000$`))
//	err := v.Struct(vehicle)
//
// A tag validator fails when the underlying rule reports any ErrorKind.
// Callers that need the kind itself should use package validator directly.
package tags
