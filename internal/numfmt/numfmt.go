// Package numfmt formats and parses numbers the way they are displayed to users.
package numfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alutools/dieprofile/schema"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is shown in place of a value that cannot be displayed.
const Placeholder = "—"

// maxInputDecimals caps the fraction digits used when echoing raw inputs.
const maxInputDecimals = 3

// separators holds the grouping and decimal marks of a locale.
type separators struct {
	group   string
	decimal string
}

var localeSeparators = map[schema.LocaleName]separators{
	schema.LocaleDE: {group: ".", decimal: ","},
	schema.LocaleEN: {group: ",", decimal: "."},
}

var localeTags = map[schema.LocaleName]language.Tag{
	schema.LocaleDE: language.German,
	schema.LocaleEN: language.English,
}

// ErrPlaceholder is returned when parsing the placeholder for a non-finite value.
var ErrPlaceholder = errors.New("value is not available")

// printer returns the message printer for a locale, falling back to German.
func printer(locale schema.LocaleName) *message.Printer {
	tag, ok := localeTags[locale]
	if !ok {
		tag = language.German
	}
	return message.NewPrinter(tag)
}

// Format renders v with exactly decimals fraction digits using the locale's separators.
// Non-finite values render as Placeholder.
func Format(v float64, decimals int, locale schema.LocaleName) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	if decimals < 0 {
		decimals = 0
	}
	p := printer(locale)
	return p.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

// FormatInput renders a raw input value with as many fraction digits as it needs, up to three.
func FormatInput(v float64, locale schema.LocaleName) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	p := printer(locale)
	return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(maxInputDecimals)))
}

// FormatInt renders an integer with the locale's grouping.
func FormatInt(v int, locale schema.LocaleName) string {
	return printer(locale).Sprintf("%v", number.Decimal(v))
}

// Parse is the inverse of Format for the given locale.
func Parse(s string, locale schema.LocaleName) (float64, error) {
	s = strings.TrimSpace(s)
	if s == Placeholder {
		return 0, ErrPlaceholder
	}
	sep, ok := localeSeparators[locale]
	if !ok {
		sep = localeSeparators[schema.LocaleDE]
	}
	s = strings.ReplaceAll(s, sep.group, "")
	s = strings.Replace(s, sep.decimal, ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number: %w", locale, err)
	}
	return v, nil
}

// ParseLenient reads a number typed by a person without knowing the locale.
// The separator that appears last is the decimal mark unless it repeats, in which
// case all separators are grouping. Blank or unreadable input yields (0, false).
func ParseLenient(s string) (float64, bool) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return 0, false
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	decimal, group := ".", ","
	if lastComma > lastDot {
		decimal, group = ",", "."
	}
	s = strings.ReplaceAll(s, group, "")
	if strings.Count(s, decimal) > 1 {
		s = strings.ReplaceAll(s, decimal, "")
	} else {
		s = strings.Replace(s, decimal, ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
