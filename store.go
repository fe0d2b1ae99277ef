package i18n

import (
	"sort"
	"strings"
)

// Store exposes read only access to the flattened message index.
type Store interface {
	// Get returns the canonical value for locale/key and ok=false if missing
	Get(locale, key string) (string, bool)
	// Variants returns the ordered plural variants for locale/key, if any
	Variants(locale, key string) ([]string, bool)
	// Locales returns the list of locales known to the store
	Locales() []string
}

// Loader retrieves the messages used to seed a Store
type Loader interface {
	Load() (Messages, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (Messages, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Messages, error) {
	return fn()
}

// StaticStore is an in memory store, read only after construction. Each
// locale tree is flattened independently and merged into a single cross
// locale table keyed by locale + "." + dotted path. The plural variant
// table is derived once from canonical values carrying the internal
// separator and is always a strict subset of the index keys.
type StaticStore struct {
	index    map[string]string
	variants map[string][]string
	locales  []string
}

var _ Store = &StaticStore{}

// NewStaticStore builds an immutable snapshot from the given messages.
// Locales are ordered deterministically (sorted).
func NewStaticStore(data Messages) *StaticStore {
	locales := make([]string, 0, len(data))
	for locale := range data {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	return newStaticStoreOrdered(data, locales)
}

// newStaticStoreOrdered builds the snapshot with an explicit locale
// order, used when messages are registered locale by locale.
func newStaticStoreOrdered(data Messages, order []string) *StaticStore {
	store := &StaticStore{
		index:    make(map[string]string),
		variants: make(map[string][]string),
		locales:  make([]string, 0, len(order)),
	}

	for _, locale := range order {
		tree, ok := data[locale]
		if !ok {
			continue
		}
		store.locales = append(store.locales, locale)

		for path, value := range Flatten(tree) {
			composite := locale + "." + path
			store.index[composite] = value
			if strings.Contains(value, variantSeparator) {
				store.variants[composite] = strings.Split(value, variantSeparator)
			}
		}
	}

	return store
}

// NewStaticStoreFromLoader hydrates a StaticStore using the provided loader
func NewStaticStoreFromLoader(loader Loader) (*StaticStore, error) {
	if loader == nil {
		return NewStaticStore(nil), nil
	}

	messages, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewStaticStore(messages), nil
}

// Get returns the canonical value for locale/key
func (s *StaticStore) Get(locale, key string) (string, bool) {
	if s == nil || s.index == nil {
		return "", false
	}
	value, ok := s.index[locale+"."+key]
	return value, ok
}

// Variants returns the ordered, trimmed plural variants for locale/key.
// Keys without multiple variants report ok=false.
func (s *StaticStore) Variants(locale, key string) ([]string, bool) {
	if s == nil || s.variants == nil {
		return nil, false
	}

	variants, ok := s.variants[locale+"."+key]
	if !ok {
		return nil, false
	}

	out := make([]string, len(variants))
	copy(out, variants)
	return out, true
}

// Locales returns a slice with all locale codes
func (s *StaticStore) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

// Keys returns the sorted dot paths indexed for a locale. Used by
// tooling that audits catalogs for coverage gaps.
func (s *StaticStore) Keys(locale string) []string {
	if s == nil || len(s.index) == 0 {
		return nil
	}

	prefix := locale + "."
	keys := make([]string, 0, len(s.index))
	for composite := range s.index {
		if strings.HasPrefix(composite, prefix) {
			keys = append(keys, strings.TrimPrefix(composite, prefix))
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)
	return keys
}
