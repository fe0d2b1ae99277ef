package i18n

// Exposer is the narrow capability a host framework implements to
// receive globally visible handles. The resolver never mutates a global
// namespace itself; an adapter hands it to the host.
type Exposer interface {
	Expose(name string, value any)
}

// Install registers the translator's public operations with the host
// under an optional name prefix: t, tc, locale and the translator
// itself. This is the whole of the global injection surface.
func Install(t *Translator, host Exposer, prefix string) {
	if t == nil || host == nil {
		return
	}

	host.Expose(prefix+"t", func(key string, params ...any) string {
		return t.T(key, params...)
	})
	host.Expose(prefix+"tc", func(key string, count float64, params ...any) string {
		return t.Tc(key, count, params...)
	})
	host.Expose(prefix+"locale", func() string {
		return t.Locale()
	})
	host.Expose(prefix+"i18n", t)
}
