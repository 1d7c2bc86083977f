// Package format presentación de valores para personas: moneda, cantidades y fechas.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout día/mes/año con cuatro dígitos.
const DateLayout = "02/01/2006"

var printer = message.NewPrinter(language.English)

// Money "$" + separador de miles + dos decimales. Ej: 1234.5 -> "$1,234.50".
func Money(d decimal.Decimal) string {
	return "$" + printer.Sprintf("%.2f", d.RoundBank(2).InexactFloat64())
}

// Count separador de miles sin decimales (redondeo a par). Ej: 1000 -> "1,000".
func Count(d decimal.Decimal) string {
	return printer.Sprintf("%.0f", d.RoundBank(0).InexactFloat64())
}

// Date fecha como dd/mm/aaaa.
func Date(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// NullMoney Money con cero por defecto cuando el valor falta.
func NullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return Money(decimal.Zero)
	}
	return Money(d.Decimal)
}

// NullCount Count con cero por defecto cuando el valor falta.
func NullCount(d decimal.NullDecimal) string {
	if !d.Valid {
		return Count(decimal.Zero)
	}
	return Count(d.Decimal)
}
