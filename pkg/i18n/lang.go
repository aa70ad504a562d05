package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength bounds the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// Negotiate picks the best loaded language for an Accept-Language header.
// Quality values are honoured; "sk-SK" matches "sk" and an unmatched or
// malformed header yields the default language.
func (t *Translator) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLang
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// Supported returns the loaded language for lang, matched on the base
// language, and whether there is one.
func (t *Translator) Supported(lang string) (string, bool) {
	lang = normalizeLang(lang)
	if lang == "" {
		return "", false
	}
	if _, ok := t.messages[lang]; ok {
		return lang, true
	}
	if base := baseLang(lang); base != lang {
		if _, ok := t.messages[base]; ok {
			return base, true
		}
	}
	return "", false
}
