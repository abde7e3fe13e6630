// Package country normalizes order-form country codes for the Processor,
// which wants ISO 3166 alpha-2 codes plus a locale tag.
package country

import (
	"strings"

	"github.com/biter777/countries"
)

// locales maps alpha-2 country codes to the storefront locale the
// Processor should quote in. Anything unmapped falls back to en_US.
var locales = map[string]string{
	"BR": "pt_BR",
	"ES": "es_ES",
	"FR": "fr_FR",
	"BE": "fr_BE",
	"DE": "de_DE",
	"AT": "de_AT",
	"DK": "da_DK",
	"FI": "fi_FI",
	"IE": "en_IE",
	"IT": "it_IT",
	"NL": "nl_NL",
	"SE": "sv_SE",
	"GB": "en_GB",
}

const DefaultLocale = "en_US"

// ToAlpha2 converts a 3-letter country code to its 2-letter form.
// Empty or unknown input yields "" so incomplete upstream data does not
// fail checkout construction.
func ToAlpha2(code3 string) string {
	if code3 == "" {
		return ""
	}
	c := countries.ByName(strings.ToUpper(strings.TrimSpace(code3)))
	if c == countries.Unknown {
		return ""
	}
	return c.Alpha2()
}

// Locale resolves the checkout locale for a 2-letter country code.
func Locale(code2 string) string {
	if l, ok := locales[strings.ToUpper(code2)]; ok {
		return l
	}
	return DefaultLocale
}
