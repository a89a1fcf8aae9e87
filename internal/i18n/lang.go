// Package i18n holds the supported site languages, Accept-Language
// negotiation, the localized message catalog and locale number formatting.
package i18n

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Lang is a supported site language code as it appears in URLs.
type Lang string

// Supported languages.
const (
	EN Lang = "en"
	AR Lang = "ar"
	DE Lang = "de"
	ES Lang = "es"
	FR Lang = "fr"
	IT Lang = "it"
	PT Lang = "pt"
	RU Lang = "ru"
	TR Lang = "tr"
)

// Default is the language of unprefixed URLs.
const Default = EN

// Supported lists every language in URL order. English comes first.
var Supported = []Lang{EN, AR, DE, ES, FR, IT, PT, RU, TR}

var (
	tags    []language.Tag
	matcher language.Matcher
)

func init() {
	tags = make([]language.Tag, len(Supported))
	for i, l := range Supported {
		tags[i] = language.MustParse(string(l))
	}
	matcher = language.NewMatcher(tags)
}

// Parse validates a URL path segment as a supported language.
func Parse(s string) (Lang, bool) {
	for _, l := range Supported {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Match returns the best supported language for an Accept-Language header.
// It returns Default when nothing matches.
func Match(acceptLanguage string) Lang {
	if acceptLanguage == "" {
		return Default
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Tag returns the BCP 47 tag of the language.
func (l Lang) Tag() language.Tag {
	for i, s := range Supported {
		if s == l {
			return tags[i]
		}
	}
	return language.English
}

// Dir returns the HTML text direction.
func (l Lang) Dir() string {
	if l == AR {
		return "rtl"
	}
	return "ltr"
}

// FormatNumber formats v with the language's separators and at most 3
// fraction digits. Halves round away from zero.
func (l Lang) FormatNumber(v float64) string {
	// Above 1e15 a float64 has no fraction digits left and v*1000 may overflow.
	if math.Abs(v) < 1e15 {
		v = math.Round(v*1000) / 1000
	}
	p := message.NewPrinter(l.Tag())
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}
