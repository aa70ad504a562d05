package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores locale in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// Tc translates key into the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, vars map[string]any) string {
	return t.T(GetLocale(ctx), key, vars)
}
