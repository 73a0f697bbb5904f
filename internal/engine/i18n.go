package engine

import "aicomply/internal/model"

// Messages is a per-locale string table. Lookups fall back to English for
// locales or keys a bundle does not carry; a key missing everywhere is
// reported so callers can omit the string instead of rendering garbage.
type Messages map[model.Locale]map[string]string

// Lookup resolves a key for a locale, falling back to English.
func (m Messages) Lookup(locale model.Locale, key string) (string, bool) {
	if table, ok := m[locale]; ok {
		if s, ok := table[key]; ok {
			return s, true
		}
	}
	if locale != model.LocaleEN {
		if table, ok := m[model.LocaleEN]; ok {
			if s, ok := table[key]; ok {
				return s, true
			}
		}
	}
	return "", false
}

// Get resolves a key and returns the key itself when no translation
// exists. Used for question texts, where a visible placeholder beats an
// empty screen.
func (m Messages) Get(locale model.Locale, key string) string {
	if s, ok := m.Lookup(locale, key); ok {
		return s
	}
	return key
}
