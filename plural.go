package i18n

// defaultPluralRule is the universal two form fallback used when
// neither the query locale nor the fallback locale has a rule.
var defaultPluralRule PluralRule = func(n int) int {
	if n == 1 {
		return 0
	}
	return 1
}

// DefaultPluralRules returns the built in rule table. Rules receive the
// count magnitude and return a zero based variant index.
func DefaultPluralRules() map[string]PluralRule {
	twoForm := func(n int) int {
		if n == 1 {
			return 0
		}
		return 1
	}

	// Chinese, Japanese, Korean: single form
	noPlural := func(n int) int { return 0 }

	return map[string]PluralRule{
		"zh":    noPlural,
		"zh-CN": noPlural,
		"zh-TW": noPlural,
		"ja":    noPlural,
		"ko":    noPlural,

		"en": twoForm,
		"de": twoForm,
		"es": twoForm,

		// French treats 0 as singular
		"fr": func(n int) int {
			if n == 0 || n == 1 {
				return 0
			}
			return 1
		},

		// Russian: three forms keyed on the last digits
		"ru": func(n int) int {
			mod10 := n % 10
			mod100 := n % 100

			if mod10 == 1 && mod100 != 11 {
				return 0
			}
			if mod10 >= 2 && mod10 <= 4 && (mod100 < 10 || mod100 >= 20) {
				return 1
			}
			return 2
		},

		// Polish: three forms, 1 is always singular
		"pl": func(n int) int {
			mod10 := n % 10
			mod100 := n % 100

			if n == 1 {
				return 0
			}
			if mod10 >= 2 && mod10 <= 4 && (mod100 < 10 || mod100 >= 20) {
				return 1
			}
			return 2
		},

		// Arabic: six forms
		"ar": func(n int) int {
			mod100 := n % 100

			switch {
			case n == 0:
				return 0
			case n == 1:
				return 1
			case n == 2:
				return 2
			case mod100 >= 3 && mod100 <= 10:
				return 3
			case mod100 >= 11 && mod100 <= 99:
				return 4
			default:
				return 5
			}
		},
	}
}

// ruleSet resolves locale codes to plural rules. Built once at
// construction from the default table overlaid with caller overrides.
type ruleSet struct {
	rules          map[string]PluralRule
	fallbackLocale string
}

func newRuleSet(fallbackLocale string, overrides map[string]PluralRule) *ruleSet {
	rules := DefaultPluralRules()
	for locale, rule := range overrides {
		if rule == nil {
			continue
		}
		// overrides replace the built in entry for that locale only
		rules[normalizeLocale(locale)] = rule
	}

	return &ruleSet{
		rules:          rules,
		fallbackLocale: fallbackLocale,
	}
}

// forLocale resolves the rule for a locale: exact entry, then parent
// locales (en-GB finds en), then the fallback locale's rule, then the
// universal default.
func (rs *ruleSet) forLocale(locale string) PluralRule {
	if rs == nil {
		return defaultPluralRule
	}

	if rule, ok := rs.rules[locale]; ok {
		return rule
	}

	for _, parent := range localeParentChain(locale) {
		if rule, ok := rs.rules[parent]; ok {
			return rule
		}
	}

	if rule, ok := rs.rules[rs.fallbackLocale]; ok {
		return rule
	}

	return defaultPluralRule
}

// clampIndex bounds a rule result to the available variants so an out
// of range index degrades to the last variant instead of failing.
func clampIndex(index, variantCount int) int {
	if index < 0 {
		return 0
	}
	if index >= variantCount {
		return variantCount - 1
	}
	return index
}
