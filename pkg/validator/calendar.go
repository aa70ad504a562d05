package validator

import "time"

// Birth numbers with a check digit were issued from 1954 on.
const checkDigitSinceYear = 54

// resolveBirthYear turns the two-digit year of a birth number into a full year.
// Nine-digit numbers and years 54-99 belong to the 1900s, the rest to the 2000s.
// The result is then kept inside [refYear-100, refYear].
func resolveBirthYear(yy int, hasCheckDigit bool, refYear int) int {
	year := yy + 2000
	if !hasCheckDigit || yy >= checkDigitSinceYear {
		year = yy + 1900
	}

	if year > refYear {
		year -= 100
	}
	if year < refYear-100 {
		year += 100
	}
	return year
}

// decodeBirthMonth strips the offset added to the month field.
// +50 marks women; +20 and +70 are used from 2004 when a day runs out of extensions.
func decodeBirthMonth(raw, year int) int {
	switch {
	case raw > 70 && year > 2003:
		return raw - 70
	case raw > 50:
		return raw - 50
	case raw > 20 && year > 2003:
		return raw - 20
	default:
		return raw
	}
}

// validDate reports whether year-month-day is a real Gregorian date.
func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
