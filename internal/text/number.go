package text

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale formats numbers for report cells
type Locale struct {
	printer *message.Printer
}

// NewLocale creates a number formatter for the given language tag.
// Unknown tags fall back to Polish, the language of the reports.
func NewLocale(tag string) *Locale {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.Polish
	}
	return &Locale{printer: message.NewPrinter(lang)}
}

// Decimal formats v with exactly prec fraction digits using the locale separators
func (l *Locale) Decimal(v float64, prec int) string {
	return l.printer.Sprint(number.Decimal(v, number.Scale(prec)))
}
