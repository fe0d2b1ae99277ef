package i18n

import (
	"math"
	"strings"
)

// Translator resolves message keys against the flattened index. All
// lookup state is built once at construction and immutable afterwards;
// the only mutable cell is the current locale, which is read on every
// query. The zero value is not usable, construct via New.
type Translator struct {
	store          Store
	rules          *ruleSet
	locale         *LocaleCell
	fallbackLocale string
	messages       Messages
	available      []string
	missingWarn    bool
	warn           WarnHandler
	hooks          []TranslationHook
}

// T resolves key for the current locale, falling back to the fallback
// locale, and substitutes params into {placeholder} tokens. A key
// missing at both locales emits a diagnostic and resolves to the key
// itself, so the caller always gets a renderable string.
func (t *Translator) T(key string, params ...any) string {
	locale := t.locale.Get()
	for _, hook := range t.hooks {
		hook.BeforeTranslate(locale, key)
	}

	template, found := t.lookup(locale, key)
	if !found {
		t.warnMissing(locale, key)
		template = key
	}

	result := Interpolate(displayTemplate(template), resolveParams(params))
	for _, hook := range t.hooks {
		hook.AfterTranslate(locale, key, result, !found)
	}
	return result
}

// Tc resolves key as a pluralized message: the locale's rule picks a
// variant by count magnitude, then params are substituted. Keys without
// plural variants, and NaN counts, degrade to the plain T path.
func (t *Translator) Tc(key string, count float64, params ...any) string {
	if math.IsNaN(count) {
		if t.missingWarn && t.warn != nil {
			t.warn("i18n: plural count is not a number", "key", key)
		}
		return t.T(key, params...)
	}

	locale := t.locale.Get()

	variants, ok := t.store.Variants(locale, key)
	if !ok {
		variants, ok = t.store.Variants(t.fallbackLocale, key)
	}
	if !ok {
		return t.T(key, params...)
	}

	for _, hook := range t.hooks {
		hook.BeforeTranslate(locale, key)
	}

	magnitude := int(math.Abs(count))
	rule := t.rules.forLocale(locale)
	index := clampIndex(rule(magnitude), len(variants))

	result := Interpolate(variants[index], resolveParams(params))
	for _, hook := range t.hooks {
		hook.AfterTranslate(locale, key, result, false)
	}
	return result
}

// Locale returns the current locale.
func (t *Translator) Locale() string {
	return t.locale.Get()
}

// SetLocale switches the current locale with immediate effect on
// subsequent lookups. The index is not rebuilt.
func (t *Translator) SetLocale(locale string) {
	t.locale.Set(normalizeLocale(locale))
}

// OnLocaleChange subscribes to locale switches. The returned function
// removes the subscription.
func (t *Translator) OnLocaleChange(fn func(locale string)) func() {
	return t.locale.Subscribe(fn)
}

// FallbackLocale returns the permanent fallback target set at
// construction.
func (t *Translator) FallbackLocale() string {
	return t.fallbackLocale
}

// AvailableLocales lists the locales the translator was built with, in
// registration order.
func (t *Translator) AvailableLocales() []string {
	out := make([]string, len(t.available))
	copy(out, t.available)
	return out
}

// Messages returns the message trees the translator was built from.
// Callers must treat the result as read only.
func (t *Translator) Messages() Messages {
	return t.messages
}

func (t *Translator) lookup(locale, key string) (string, bool) {
	if value, ok := t.store.Get(locale, key); ok {
		return value, true
	}
	if value, ok := t.store.Get(t.fallbackLocale, key); ok {
		return value, true
	}
	return "", false
}

func (t *Translator) warnMissing(locale, key string) {
	if !t.missingWarn || t.warn == nil {
		return
	}
	t.warn("i18n: missing translation",
		"locale", locale,
		"fallback", t.fallbackLocale,
		"key", key)
}

// displayTemplate renders a canonical value for plain resolution. Keys
// holding plural variants show the full variant list, mirroring their
// pipe delimited source form.
func displayTemplate(value string) string {
	if !strings.Contains(value, variantSeparator) {
		return value
	}
	return strings.ReplaceAll(value, variantSeparator, " | ")
}
