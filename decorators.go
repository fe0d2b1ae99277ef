package i18n

// TranslationHook observes lookups on the query path. Hooks fire even
// when warnings are suppressed, which makes them the place to collect
// translation coverage metrics.
type TranslationHook interface {
	BeforeTranslate(locale, key string)
	AfterTranslate(locale, key, result string, missing bool)
}

// TranslationHookFuncs adapts bare functions to the TranslationHook
// interface. Nil fields are skipped.
type TranslationHookFuncs struct {
	Before func(locale, key string)
	After  func(locale, key, result string, missing bool)
}

func (h TranslationHookFuncs) BeforeTranslate(locale, key string) {
	if h.Before != nil {
		h.Before(locale, key)
	}
}

func (h TranslationHookFuncs) AfterTranslate(locale, key, result string, missing bool) {
	if h.After != nil {
		h.After(locale, key, result, missing)
	}
}
