package i18n

import (
	"math"
	"strconv"
)

// TemplateHelpers exposes t, tc and locale helpers for use as a
// text/template or html/template FuncMap. The tc helper accepts any
// numeric count so template pipelines can pass ints directly.
func TemplateHelpers(t *Translator) map[string]any {
	return map[string]any{
		"t": func(key string, params ...any) string {
			return t.T(key, params...)
		},
		"tc": func(key string, count any, params ...any) string {
			return t.Tc(key, asCount(count), params...)
		},
		"locale": func() string {
			return t.Locale()
		},
	}
}

// asCount coerces template supplied counts to float64. Unparseable
// values map to NaN so Tc applies its invalid count policy.
func asCount(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return math.NaN()
}
