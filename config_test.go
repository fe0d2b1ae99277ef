package i18n

import (
	"errors"
	"testing"
)

func TestNewRequiresLocale(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrNoLocale) {
		t.Fatalf("New() err = %v, want ErrNoLocale", err)
	}
}

func TestNewFallbackDefaultsToLocale(t *testing.T) {
	translator, err := New(WithLocale("en"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if translator.FallbackLocale() != "en" {
		t.Fatalf("FallbackLocale() = %q", translator.FallbackLocale())
	}
}

func TestNewNormalizesLocales(t *testing.T) {
	translator, err := New(
		WithLocale(" en_US "),
		WithFallbackLocale("en_GB"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if translator.Locale() != "en-US" {
		t.Fatalf("Locale() = %q", translator.Locale())
	}
	if translator.FallbackLocale() != "en-GB" {
		t.Fatalf("FallbackLocale() = %q", translator.FallbackLocale())
	}
}

func TestNewNilPluralRule(t *testing.T) {
	if _, err := New(WithLocale("en"), WithPluralRule("en", nil)); !errors.Is(err, ErrNilPluralRule) {
		t.Fatalf("err = %v, want ErrNilPluralRule", err)
	}

	if _, err := New(WithLocale("en"), WithPluralRules(map[string]PluralRule{"fr": nil})); !errors.Is(err, ErrNilPluralRule) {
		t.Fatalf("err = %v, want ErrNilPluralRule", err)
	}
}

func TestWithMessagesSortedOrder(t *testing.T) {
	translator, err := New(
		WithLocale("en"),
		WithMessages(Messages{
			"fr": {"k": "v"},
			"de": {"k": "v"},
			"en": {"k": "v"},
		}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	locales := translator.AvailableLocales()
	want := []string{"de", "en", "fr"}
	if len(locales) != len(want) {
		t.Fatalf("AvailableLocales() = %v", locales)
	}
	for i, locale := range want {
		if locales[i] != locale {
			t.Fatalf("AvailableLocales()[%d] = %q, want %q", i, locales[i], locale)
		}
	}
}

func TestWithLocaleMessagesReplacesEarlier(t *testing.T) {
	translator, err := New(
		WithLocale("en"),
		WithLocaleMessages("en", MessageTree{"k": "first"}),
		WithLocaleMessages("en", MessageTree{"k": "second"}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := translator.T("k"); got != "second" {
		t.Fatalf("T(k) = %q, want later registration to win", got)
	}

	if locales := translator.AvailableLocales(); len(locales) != 1 {
		t.Fatalf("AvailableLocales() = %v", locales)
	}
}

func TestWithLoaderMergesUnderInlineMessages(t *testing.T) {
	loader := LoaderFunc(func() (Messages, error) {
		return Messages{
			"en": {
				"loaded": "from loader",
				"shared": "loader value",
			},
			"fr": {"k": "v"},
		}, nil
	})

	translator, err := New(
		WithLocale("en"),
		WithLocaleMessages("en", MessageTree{"shared": "inline value"}),
		WithLoader(loader),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := translator.T("loaded"); got != "from loader" {
		t.Fatalf("T(loaded) = %q", got)
	}
	// inline registrations win on conflicting paths
	if got := translator.T("shared"); got != "inline value" {
		t.Fatalf("T(shared) = %q", got)
	}

	locales := translator.AvailableLocales()
	if len(locales) != 2 || locales[0] != "en" || locales[1] != "fr" {
		t.Fatalf("AvailableLocales() = %v", locales)
	}
}

func TestWithLoaderError(t *testing.T) {
	loader := LoaderFunc(func() (Messages, error) {
		return nil, errors.New("boom")
	})

	if _, err := New(WithLocale("en"), WithLoader(loader)); err == nil {
		t.Fatal("expected loader error to surface")
	}
}
