package i18n

// MessageTree is a nested mapping from string keys to string leaves,
// ordered variant slices, or deeper MessageTree nodes. Trees are owned
// by the caller and read only to the resolver after construction.
type MessageTree map[string]any

// Messages maps a locale code to its message tree.
type Messages map[string]MessageTree

// Params carries named values substituted into {placeholder} tokens.
type Params map[string]any

// Derefable lets callers hand the resolver a live wrapper instead of a
// plain Params map. The wrapper is dereferenced on every call, so
// mutating the underlying value affects subsequent translations only.
type Derefable interface {
	Deref() Params
}

// PluralRule maps a non negative count magnitude to a zero based
// variant index. Rules returning an out of range index are clamped to
// the last available variant.
type PluralRule func(n int) int

// variantSeparator marks plural variant boundaries inside canonical
// index values. Non printable so it cannot collide with message text.
const variantSeparator = "\x1f"
