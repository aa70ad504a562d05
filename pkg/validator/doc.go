// Package validator provides independent, pure validation rules for Czech and
// Slovak identifiers (birth numbers, organisation identification numbers),
// vehicle identification numbers, phone numbers, dates, JSON documents,
// string composition and uniqueness.
//
// Every rule is a Validator: a small immutable value built once from a
// configuration struct and then reused for any number of Validate calls.
// Constructors check their configuration eagerly and return an error for
// anything malformed (a regular expression that does not compile, a missing
// bound, a non-positive age limit); Validate never fails, it always returns an
// Outcome.
//
// # Architecture
//
// Each source file groups one family of rules (`birth_number_rules.go`,
// `vin_rules.go`, `date_rules.go`, ...). Shared arithmetic lives in
// `checksum.go` (mod 11 weighted sums) and `calendar.go` (century resolution and
// Gregorian date checks). There is no global mutable state; validators are safe
// for concurrent use.
//
// Core building blocks:
//   - Value: tagged union of accepted inputs (string, int, float, bool, null)
//   - Outcome: Valid or Invalid{Kind, Vars}
//   - ErrorKind: stable identifiers such as "notBirthNumber" or "vinInvalidCn"
//   - Rule / Apply: bind outcomes to fields and aggregate them as ValidationErrors
//
// # Usage
//
//	bn, err := validator.NewBirthNumber(validator.BirthNumberConfig{
//	    Exclude: []string{`0000$`},
//	})
//	if err != nil {
//	    return err
//	}
//	vin, _ := validator.NewVIN(validator.VINConfig{Strict: true, AllowLongSequences: true})
//
//	err = validator.Apply(
//	    validator.Check("birth_number", bn, validator.String(form.BirthNumber)),
//	    validator.Check("vin", vin, validator.String(form.VIN)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Kinds("vin") -> []ErrorKind{"vinInvalidCn"}
//	}
//
// # Dates and clocks
//
// Rules that depend on the current date (birth number century resolution, the
// minor child age gate, relative date bounds such as "-18 years") read it from
// an injectable Clock, which defaults to time.Now. Absolute date bounds are
// parsed once at construction; relative ones are resolved on every call.
//
// # Error Handling
//
// Construction errors wrap the sentinel errors in errors.go and can be matched
// with errors.Is. ValidationErrors implements error and carries the ErrorKind,
// a default English message and a translation key ("validation.<kind>") for
// every failed field.
package validator
