package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// relativeDate is a bound written relative to the current instant, such as
// "now", "today", "-18 years" or "today +1 month -2 days". It is resolved on
// every validation, so the bound moves forward with the clock.
type relativeDate struct {
	base    string // "now", "today", "tomorrow" or "yesterday"
	offsets []dateOffset
}

type dateOffset struct {
	n    int
	unit string
}

var (
	relativeDatePattern = regexp.MustCompile(`^(?:(now|today|midnight|tomorrow|yesterday)\b\s*)?((?:[+-]?\s*\d+\s*[a-z]+\s*)*)$`)
	dateOffsetPattern   = regexp.MustCompile(`([+-]?)\s*(\d+)\s*([a-z]+)`)
)

var dateUnits = map[string]string{
	"sec": "second", "secs": "second", "second": "second", "seconds": "second",
	"min": "minute", "mins": "minute", "minute": "minute", "minutes": "minute",
	"hour": "hour", "hours": "hour",
	"day": "day", "days": "day",
	"week": "week", "weeks": "week",
	"month": "month", "months": "month",
	"year": "year", "years": "year",
}

// parseRelativeDate reads the relative notation. The second result is false
// for anything else, including absolute dates.
func parseRelativeDate(s string) (relativeDate, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	m := relativeDatePattern.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[2] == "") {
		return relativeDate{}, false
	}

	rd := relativeDate{base: m[1]}
	if rd.base == "" {
		rd.base = "now"
	}
	for _, o := range dateOffsetPattern.FindAllStringSubmatch(m[2], -1) {
		unit, ok := dateUnits[o[3]]
		if !ok {
			return relativeDate{}, false
		}
		n, err := strconv.Atoi(o[2])
		if err != nil {
			return relativeDate{}, false
		}
		if o[1] == "-" {
			n = -n
		}
		rd.offsets = append(rd.offsets, dateOffset{n: n, unit: unit})
	}
	return rd, true
}

// at resolves the date against now in loc. Month and year offsets follow
// time.AddDate, so Jan 31 +1 month is Mar 2 or 3.
func (rd relativeDate) at(now time.Time, loc *time.Location) time.Time {
	now = now.In(loc)
	t := now
	if rd.base != "now" {
		y, m, d := now.Date()
		t = time.Date(y, m, d, 0, 0, 0, 0, loc)
		switch rd.base {
		case "tomorrow":
			t = t.AddDate(0, 0, 1)
		case "yesterday":
			t = t.AddDate(0, 0, -1)
		}
	}

	for _, o := range rd.offsets {
		switch o.unit {
		case "second":
			t = t.Add(time.Duration(o.n) * time.Second)
		case "minute":
			t = t.Add(time.Duration(o.n) * time.Minute)
		case "hour":
			t = t.Add(time.Duration(o.n) * time.Hour)
		case "day":
			t = t.AddDate(0, 0, o.n)
		case "week":
			t = t.AddDate(0, 0, 7*o.n)
		case "month":
			t = t.AddDate(0, o.n, 0)
		case "year":
			t = t.AddDate(o.n, 0, 0)
		}
	}
	return t
}

// dateBound is a fixed instant or a relative date resolved per validation.
type dateBound struct {
	fixed    time.Time
	relative *relativeDate
	label    string
	loc      *time.Location
	clock    func() time.Time
}

func (b dateBound) resolve() time.Time {
	if b.relative != nil {
		return b.relative.at(b.clock(), b.loc)
	}
	return b.fixed
}
