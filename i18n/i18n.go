// Package i18n holds the locale set and the static UI dictionaries of the
// public site. Translated project content lives in the database; this package
// only covers fixed interface strings.
package i18n

// Locales supported by the public site, in switcher order.
var Locales = []string{"es", "en", "zh", "ja", "pt"}

// DefaultLocale is used when no locale preference is known.
const DefaultLocale = "es"

// ContentLocales are the locales project content gets translated into. The
// default locale's text lives on the project row itself.
var ContentLocales = []string{"en", "zh", "ja", "pt"}

// LocaleNames maps each locale to its display name in its own language.
var LocaleNames = map[string]string{
	"es": "Español",
	"en": "English",
	"zh": "中文",
	"ja": "日本語",
	"pt": "Português",
}

// IsValid reports whether locale is one of the supported locales.
func IsValid(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}
