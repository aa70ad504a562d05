package i18n

import (
	"io/fs"
	"log/slog"
)

type source struct {
	fsys fs.FS
	dir  string
}

type options struct {
	sources []source
}

// Option configures a Translator.
type Option func(*Translator, *options)

// WithDefaultLanguage sets the language used when nothing else matches.
// The language must have a catalogue.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator, _ *options) {
		if lang = normalizeLang(lang); lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFS adds every *.yaml and *.yml catalogue in dir of fsys. Keys override
// the built-in messages of the same language.
func WithFS(fsys fs.FS, dir string) Option {
	return func(_ *Translator, o *options) {
		if fsys == nil {
			return
		}
		if dir == "" {
			dir = "."
		}
		o.sources = append(o.sources, source{fsys: fsys, dir: dir})
	}
}

// WithLogger sets the logger. If not specified, logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator, _ *options) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging controls whether missing keys are logged.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator, _ *options) {
		t.missingLogMode = log
	}
}
