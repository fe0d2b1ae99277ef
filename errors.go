package i18n

import "errors"

// ErrNoLocale indicates the translator was constructed without a current locale.
var ErrNoLocale = errors.New("i18n: no locale configured")

// ErrNilPluralRule indicates a nil rule was supplied as a per locale override.
var ErrNilPluralRule = errors.New("i18n: nil plural rule")
