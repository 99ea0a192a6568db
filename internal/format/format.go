// Package format renders prices and percentages for templates.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var symbols = map[string]string{
	"INR": "₹",
	"JPY": "¥",
	"USD": "$",
	"EUR": "€",
}

// regions whose grouping conventions apply to each currency
var regions = map[string]string{
	"INR": "IN",
	"JPY": "JP",
	"USD": "US",
}

// FmtCurrency formats a whole-unit amount with the currency symbol and locale grouping.
// Example: FmtCurrency(2999, "INR", "en") => "₹2,999"
func FmtCurrency(amount int64, currency, lang string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	p := message.NewPrinter(printerTag(lang, currency))
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := p.Sprintf("%d", amount)
	sym, ok := symbols[currency]
	out := sym + digits
	if !ok {
		out = currency + " " + digits
	}
	if neg {
		return "-" + out
	}
	return out
}

// FmtDiscount renders a discount badge such as "-33%". Zero renders empty.
func FmtDiscount(pct int) string {
	if pct <= 0 {
		return ""
	}
	return message.NewPrinter(language.English).Sprintf("-%d%%", pct)
}

// FmtDate formats time in a locale-friendly short form.
func FmtDate(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	switch strings.ToLower(lang) {
	case "hi":
		return t.Format("02/01/2006")
	default:
		return t.Format("Jan 2, 2006")
	}
}

func printerTag(lang, currency string) language.Tag {
	base, err := language.ParseBase(strings.ToLower(strings.TrimSpace(lang)))
	if err != nil {
		base, _ = language.English.Base()
	}
	if region, ok := regions[currency]; ok {
		if r, err := language.ParseRegion(region); err == nil {
			if tag, err := language.Compose(base, r); err == nil {
				return tag
			}
		}
	}
	return language.Make(base.String())
}
