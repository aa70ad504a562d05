package validator

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Supported phone number locales.
const (
	LocaleCzech  = "cs-CZ"
	LocaleSlovak = "sk-SK"
)

var phonePatterns = map[string]*regexp.Regexp{
	LocaleCzech:  regexp.MustCompile(`^(\+?420)? ?[1-9][0-9]{2} ?[0-9]{3} ?[0-9]{3}$`),
	LocaleSlovak: regexp.MustCompile(`^(\+?421)? ?[1-9][0-9]{2} ?[0-9]{3} ?[0-9]{3}$`),
}

// phoneLocaleOrder fixes the order in which patterns are tried when no locale is configured.
var phoneLocaleOrder = []string{LocaleCzech, LocaleSlovak}

// PhoneNumberCZSKConfig configures the phone number validator.
type PhoneNumberCZSKConfig struct {
	// Locales restricts the accepted numbering plans. Empty means all supported locales.
	Locales []string `yaml:"locales" json:"locales,omitempty"`
	// Strict requires numbers in international form, starting with "+".
	Strict bool `yaml:"strict" json:"strict"`
}

// PhoneNumberCZSK validates Czech and Slovak phone numbers.
type PhoneNumberCZSK struct {
	locales []string
	strict  bool
}

// NewPhoneNumberCZSK builds a phone number validator.
// Locale tags are canonicalised ("cs-cz" becomes "cs-CZ"); tags that are not
// supported are kept and reported as phoneNumberUnsupported during validation.
func NewPhoneNumberCZSK(cfg PhoneNumberCZSKConfig) (*PhoneNumberCZSK, error) {
	locales := make([]string, 0, len(cfg.Locales))
	for _, l := range cfg.Locales {
		locales = append(locales, canonicalLocale(l))
	}
	return &PhoneNumberCZSK{locales: locales, strict: cfg.Strict}, nil
}

func canonicalLocale(l string) string {
	tag, err := language.Parse(strings.TrimSpace(l))
	if err != nil {
		return l
	}
	return tag.String()
}

func (p *PhoneNumberCZSK) Validate(v Value) Outcome {
	if v.Type() != TypeString {
		return Invalid(KindPhoneNumberInvalid, nil)
	}

	s := v.String()
	if p.strict && !strings.HasPrefix(s, "+") {
		return Invalid(KindPhoneNumberNoMatchInternational, nil)
	}

	locales := p.locales
	if len(locales) == 0 {
		locales = phoneLocaleOrder
	}
	for _, l := range locales {
		re, ok := phonePatterns[l]
		if !ok {
			return Invalid(KindPhoneNumberUnsupported, map[string]any{"locale": l})
		}
		if re.MatchString(s) {
			return Valid()
		}
	}

	if p.strict {
		return Invalid(KindPhoneNumberNoMatchInternational, nil)
	}
	return Invalid(KindPhoneNumberNoMatch, nil)
}
