package i18n

import "sync"

// LocaleCell is an observable single value container holding the
// current locale. The translator reads it on every query, so setting a
// new locale takes effect immediately without rebuilding the index.
// Safe for concurrent use.
type LocaleCell struct {
	mu        sync.RWMutex
	value     string
	nextID    int
	observers map[int]func(locale string)
}

// NewLocaleCell returns a cell initialized to the given locale.
func NewLocaleCell(locale string) *LocaleCell {
	return &LocaleCell{value: locale}
}

// Get returns the current locale.
func (c *LocaleCell) Get() string {
	if c == nil {
		return ""
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the current locale and notifies subscribers. Observers
// run outside the cell lock.
func (c *LocaleCell) Set(locale string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.value = locale
	observers := make([]func(string), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(locale)
	}
}

// Subscribe registers an observer invoked after each Set. The returned
// function removes the subscription.
func (c *LocaleCell) Subscribe(fn func(locale string)) func() {
	if c == nil || fn == nil {
		return func() {}
	}

	c.mu.Lock()
	if c.observers == nil {
		c.observers = make(map[int]func(string))
	}
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}
