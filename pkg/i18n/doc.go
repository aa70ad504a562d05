// Package i18n translates validation messages.
//
// A Translator ships with Czech, Slovak and English catalogues for every
// "validation.<kind>" key produced by the validator package. More catalogues
// can be layered on top with WithFS; each YAML file maps a language to a tree
// of messages:
//
//	cs:
//	  validation:
//	    notBirthNumber: "Hodnota nevypadá jako rodné číslo"
//
// Messages use %name% placeholders, the same form as the default English
// templates, so outcome variables substitute directly:
//
//	tr := i18n.MustNew()
//	msg := tr.T("cs", "validation.vinInvalidLength", map[string]any{"length": 17})
//
// Middleware negotiates the request language from ?lang= or Accept-Language
// using golang.org/x/text/language and stores it in the request context.
package i18n
