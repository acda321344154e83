// Package i18n picks the storefront locale for a request and holds the
// English/Arabic strings the API returns to shoppers.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Arabic,
}

var matcher = language.NewMatcher(supported)

// Parse maps an explicit tag such as "ar" or "en-US" to a supported locale.
func Parse(tag string) (Locale, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", false
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", false
	}
	base, _ := t.Base()
	switch base.String() {
	case "ar":
		return Arabic, true
	case "en":
		return English, true
	}
	return "", false
}

// Match resolves an Accept-Language header against the supported locales.
// Anything unparseable falls back to English.
func Match(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	if supported[idx] == language.Arabic {
		return Arabic
	}
	return English
}

// Dir is the text direction for the locale.
func (l Locale) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Toggle flips between the two storefront languages.
func (l Locale) Toggle() Locale {
	if l == Arabic {
		return English
	}
	return Arabic
}

func (l Locale) String() string {
	if l == "" {
		return string(English)
	}
	return string(l)
}
