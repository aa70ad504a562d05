package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when no other language can be negotiated.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var builtin embed.FS

// Translator holds flattened message catalogues keyed by language and
// dot separated message key. It is immutable after New and safe for
// concurrent use.
type Translator struct {
	messages       map[string]map[string]string
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger

	langs   []string
	matcher language.Matcher
}

// New loads the built-in Czech, Slovak and English catalogues followed by any
// catalogues added with WithFS. Later sources override earlier keys.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{
		messages:    make(map[string]map[string]string),
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.DiscardHandler),
	}

	cfg := &options{}
	for _, opt := range opts {
		opt(t, cfg)
	}

	if err := t.loadFS(builtin, "locales"); err != nil {
		return nil, err
	}
	for _, src := range cfg.sources {
		if err := t.loadFS(src.fsys, src.dir); err != nil {
			return nil, err
		}
	}

	if _, ok := t.messages[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrLanguageNotSupported, t.defaultLang)
	}

	// The default language goes first so the matcher falls back to it.
	t.langs = make([]string, 0, len(t.messages))
	t.langs = append(t.langs, t.defaultLang)
	for _, lang := range slices.Sorted(maps.Keys(t.messages)) {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	tags := make([]language.Tag, 0, len(t.langs))
	for _, lang := range t.langs {
		tags = append(tags, language.Make(lang))
	}
	t.matcher = language.NewMatcher(tags)

	t.logger.Info("translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Translator {
	t, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Translator) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return errors.Join(ErrFailedToReadDirectory, err)
	}
	for _, e := range entries {
		if e.IsDir() || !isCatalogFile(e.Name()) {
			continue
		}
		name := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", name, err))
		}
		if err := t.parse(data); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func isCatalogFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// parse merges a document of the form {lang: {nested: {key: message}}}.
func (t *Translator) parse(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Join(ErrFailedToParseYAML, err)
	}
	if len(doc) == 0 {
		return fmt.Errorf("%w: empty document", ErrFailedToParseYAML)
	}

	for lang, val := range doc {
		tree, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: language %q: expected map, got %T", ErrFailedToParseYAML, lang, val)
		}
		lang = normalizeLang(lang)
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrFailedToParseYAML)
		}
		if t.messages[lang] == nil {
			t.messages[lang] = make(map[string]string)
		}
		flatten(t.messages[lang], "", tree)
	}
	return nil
}

func flatten(dst map[string]string, prefix string, tree map[string]any) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case map[string]any:
			flatten(dst, key, x)
		case string:
			dst[key] = x
		case nil:
		default:
			dst[key] = fmt.Sprint(x)
		}
	}
}

// Languages returns the loaded languages, default first.
func (t *Translator) Languages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Has reports whether lang has its own message for key.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.messages[normalizeLang(lang)][key]
	return ok
}

// T translates key into lang and substitutes %name% placeholders from vars.
// Lookup falls back from a regional tag to its base language ("cs-CZ" to "cs")
// and then to the default language. If no catalogue has the key, the key is
// returned.
func (t *Translator) T(lang, key string, vars map[string]any) string {
	return t.Td(lang, key, key, vars)
}

// Td is like T but returns def, with placeholders substituted, when no
// catalogue has the key.
func (t *Translator) Td(lang, key, def string, vars map[string]any) string {
	msg, ok := t.lookup(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		msg = def
	}
	return substitute(msg, vars)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	lang = normalizeLang(lang)
	for _, candidate := range []string{lang, baseLang(lang), t.defaultLang} {
		if msg, ok := t.messages[candidate][key]; ok {
			return msg, true
		}
	}
	return "", false
}

func substitute(tmpl string, vars map[string]any) string {
	if len(vars) == 0 || !strings.Contains(tmpl, "%") {
		return tmpl
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "%"+k+"%", fmt.Sprint(vars[k]))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func normalizeLang(lang string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
}

func baseLang(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
