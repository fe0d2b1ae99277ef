package i18n

import "sort"

type config struct {
	locale         string
	fallbackLocale string
	localeCell     *LocaleCell
	messages       Messages
	order          []string
	loader         Loader
	missingWarn    bool
	warn           WarnHandler
	overrides      map[string]PluralRule
	hooks          []TranslationHook
}

// Option mutates the translator configuration during construction
type Option func(*config) error

// New builds a Translator via supplied options. The message index, the
// plural variant table and the rule table are constructed here once;
// only the current locale mutates afterwards.
func New(opts ...Option) (*Translator, error) {
	cfg := &config{
		messages:    make(Messages),
		missingWarn: true,
		warn:        defaultWarnHandler,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.loader != nil {
		if err := cfg.applyLoader(); err != nil {
			return nil, err
		}
	}

	if cfg.locale == "" && cfg.localeCell != nil {
		cfg.locale = normalizeLocale(cfg.localeCell.Get())
	}
	if cfg.locale == "" {
		return nil, ErrNoLocale
	}
	if cfg.fallbackLocale == "" {
		cfg.fallbackLocale = cfg.locale
	}

	cell := cfg.localeCell
	if cell == nil {
		cell = NewLocaleCell(cfg.locale)
	} else if cell.Get() != cfg.locale {
		cell.Set(cfg.locale)
	}

	return &Translator{
		store:          newStaticStoreOrdered(cfg.messages, cfg.order),
		rules:          newRuleSet(cfg.fallbackLocale, cfg.overrides),
		locale:         cell,
		fallbackLocale: cfg.fallbackLocale,
		messages:       cfg.messages,
		available:      dedupeLocales(cfg.order),
		missingWarn:    cfg.missingWarn,
		warn:           cfg.warn,
		hooks:          cfg.hooks,
	}, nil
}

// WithLocale sets the initial current locale
func WithLocale(locale string) Option {
	return func(c *config) error {
		c.locale = normalizeLocale(locale)
		return nil
	}
}

// WithFallbackLocale sets the permanent fallback target. Defaults to
// the current locale when omitted.
func WithFallbackLocale(locale string) Option {
	return func(c *config) error {
		c.fallbackLocale = normalizeLocale(locale)
		return nil
	}
}

// WithLocaleCell hands the translator a caller owned locale cell,
// letting the host share the reactive handle with other components.
func WithLocaleCell(cell *LocaleCell) Option {
	return func(c *config) error {
		c.localeCell = cell
		return nil
	}
}

// WithMessages registers message trees for several locales at once.
// Locales are appended to the available list in sorted order; trees
// replace earlier registrations for the same locale.
func WithMessages(data Messages) Option {
	return func(c *config) error {
		locales := make([]string, 0, len(data))
		for locale := range data {
			locales = append(locales, locale)
		}
		sort.Strings(locales)

		for _, locale := range locales {
			c.setLocaleMessages(locale, data[locale])
		}
		return nil
	}
}

// WithLocaleMessages registers the message tree for a single locale,
// preserving registration order in AvailableLocales.
func WithLocaleMessages(locale string, tree MessageTree) Option {
	return func(c *config) error {
		c.setLocaleMessages(locale, tree)
		return nil
	}
}

// WithLoader seeds messages from a Loader. Loaded trees merge under
// messages registered inline, which win on conflicting paths.
func WithLoader(loader Loader) Option {
	return func(c *config) error {
		c.loader = loader
		return nil
	}
}

// WithMissingWarn toggles the missing translation and invalid count
// diagnostics. Enabled by default.
func WithMissingWarn(enabled bool) Option {
	return func(c *config) error {
		c.missingWarn = enabled
		return nil
	}
}

// WithWarnHandler replaces the default slog backed diagnostic sink
func WithWarnHandler(handler WarnHandler) Option {
	return func(c *config) error {
		if handler != nil {
			c.warn = handler
		}
		return nil
	}
}

// WithPluralRule overrides the built in rule for a single locale.
// Overrides replace, not merge with, the default entry.
func WithPluralRule(locale string, rule PluralRule) Option {
	return func(c *config) error {
		if rule == nil {
			return ErrNilPluralRule
		}
		if c.overrides == nil {
			c.overrides = make(map[string]PluralRule)
		}
		c.overrides[normalizeLocale(locale)] = rule
		return nil
	}
}

// WithPluralRules overrides built in rules for several locales at once
func WithPluralRules(rules map[string]PluralRule) Option {
	return func(c *config) error {
		for locale, rule := range rules {
			if rule == nil {
				return ErrNilPluralRule
			}
			if c.overrides == nil {
				c.overrides = make(map[string]PluralRule)
			}
			c.overrides[normalizeLocale(locale)] = rule
		}
		return nil
	}
}

// WithTranslationHooks registers observers on the query path
func WithTranslationHooks(hooks ...TranslationHook) Option {
	return func(c *config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.hooks = append(c.hooks, hook)
		}
		return nil
	}
}

func (c *config) setLocaleMessages(locale string, tree MessageTree) {
	normalized := normalizeLocale(locale)
	if normalized == "" || tree == nil {
		return
	}
	if _, exists := c.messages[normalized]; !exists {
		c.order = append(c.order, normalized)
	}
	c.messages[normalized] = tree
}

func (c *config) applyLoader() error {
	loaded, err := c.loader.Load()
	if err != nil {
		return err
	}

	locales := make([]string, 0, len(loaded))
	for locale := range loaded {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}

		tree := loaded[locale]
		if existing, ok := c.messages[normalized]; ok {
			merged := cloneTree(tree)
			mergeTree(merged, existing)
			c.messages[normalized] = merged
			continue
		}

		c.messages[normalized] = tree
		c.order = append(c.order, normalized)
	}

	return nil
}
