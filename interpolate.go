package i18n

import (
	"fmt"
	"regexp"
	"strconv"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Interpolate substitutes {name} tokens in template with values from
// params. Tokens without a matching param are left untouched, and a
// template without params is returned unchanged.
func Interpolate(template string, params Params) string {
	if len(params) == 0 {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		value, ok := params[name]
		if !ok {
			return match
		}
		return stringify(value)
	})
}

// stringify converts a param value to its textual form. Floats drop a
// trailing ".0" so counts render as integers.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// resolveParams merges the variadic param arguments accepted by T and
// Tc. Each argument may be a Params map, a plain map, or a Derefable
// wrapper, dereferenced here so the engine always sees the current
// underlying value. Later arguments win on key conflicts.
func resolveParams(args []any) Params {
	var merged Params

	for _, arg := range args {
		var p Params
		switch v := arg.(type) {
		case nil:
			continue
		case Params:
			p = v
		case map[string]any:
			p = v
		case Derefable:
			p = v.Deref()
		default:
			continue
		}

		if len(p) == 0 {
			continue
		}
		if merged == nil {
			merged = make(Params, len(p))
		}
		for key, value := range p {
			merged[key] = value
		}
	}

	return merged
}
