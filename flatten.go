package i18n

import "strings"

// Flatten walks a message tree depth first and returns a flat table
// keyed by dot joined paths. String leaves containing pipe separated
// plural variants, and slice leaves, are canonicalized into a single
// value with an internal variant separator. Non string leaves are
// dropped; looking up their paths later behaves as missing.
//
// Flatten is a pure function of its input. Colliding paths resolve as
// last write wins.
func Flatten(tree MessageTree) map[string]string {
	out := make(map[string]string)
	flattenInto(out, tree, "")
	return out
}

func flattenInto(dst map[string]string, tree MessageTree, prefix string) {
	for key, value := range tree {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			dst[path] = canonicalizeLeaf(v)
		case MessageTree:
			flattenInto(dst, v, path)
		case map[string]any:
			flattenInto(dst, MessageTree(v), path)
		case []string:
			if leaf, ok := joinVariants(toAnySlice(v)); ok {
				dst[path] = leaf
			}
		case []any:
			if leaf, ok := joinVariants(v); ok {
				dst[path] = leaf
			}
		default:
			// numbers, booleans, nil: excluded from the index
		}
	}
}

// canonicalizeLeaf rewrites pipe delimited variants into separator
// joined form, trimming whitespace around each variant. Leaves without
// a pipe are stored verbatim.
func canonicalizeLeaf(s string) string {
	if !strings.Contains(s, "|") {
		return s
	}

	parts := strings.Split(s, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, variantSeparator)
}

// joinVariants collapses a slice leaf into canonical form. The leaf is
// excluded unless every element is a string.
func joinVariants(values []any) (string, bool) {
	if len(values) == 0 {
		return "", false
	}

	parts := make([]string, 0, len(values))
	for _, value := range values {
		s, ok := value.(string)
		if !ok {
			return "", false
		}
		parts = append(parts, strings.TrimSpace(s))
	}
	return strings.Join(parts, variantSeparator), true
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}
