// Package locale formats money and dates the way Indonesian report readers expect them.
package locale

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/goodsign/monday"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultTimezone = "Asia/Jakarta"
	currencySymbol  = "Rp"
)

// Formatter renders values for the id-ID locale in a fixed timezone.
type Formatter struct {
	loc     *time.Location
	printer *message.Printer
}

// New returns a Formatter. A nil loc means UTC.
func New(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{
		loc:     loc,
		printer: message.NewPrinter(language.Indonesian),
	}
}

// LoadLocation resolves a timezone name, falling back to DefaultTimezone when empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// Location returns the formatter's timezone.
func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Number groups thousands with dots: 1500000 -> "1.500.000".
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Currency renders an amount in rupiah with no decimal places: "Rp 1.500.000".
func (f *Formatter) Currency(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return "-" + currencySymbol + " " + f.Number(-n)
	}
	return currencySymbol + " " + f.Number(n)
}

// ShortDate renders d/m/yyyy, e.g. "31/1/2025".
func (f *Formatter) ShortDate(t time.Time) string {
	return t.In(f.loc).Format("2/1/2006")
}

// LongDate renders weekday, day, month name and year, e.g. "Jumat, 31 Januari 2025".
func (f *Formatter) LongDate(t time.Time) string {
	return monday.Format(t.In(f.loc), "Monday, 2 January 2006", monday.LocaleIdID)
}

// Month renders month name and year, e.g. "Januari 2025".
func (f *Formatter) Month(t time.Time) string {
	return monday.Format(t.In(f.loc), "January 2006", monday.LocaleIdID)
}
