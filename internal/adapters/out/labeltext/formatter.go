// Package labeltext renders shipping labels and order summaries as plain text.
// It implements ports.LabelFormatter; money is printed with the locale's decimal
// and grouping separators via golang.org/x/text/message.
package labeltext

import (
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// DefaultLocale is the locale labels are printed in when none is configured.
	DefaultLocale = "pt-BR"
	// DefaultCurrencySymbol is the symbol prefixed to fees when none is configured.
	DefaultCurrencySymbol = "R$"

	feeDecimalPlaces = 2
)

// Formatter renders Portuguese plain-text labels.
// It is immutable and safe for concurrent use.
type Formatter struct {
	groupSeparator   string
	decimalSeparator string
	currencySymbol   string
}

// NewFormatter creates a Formatter for the default locale and currency symbol.
func NewFormatter() *Formatter {
	return newFormatter(language.BrazilianPortuguese, DefaultCurrencySymbol)
}

// NewFormatterForLocale creates a Formatter printing numbers for locale (a BCP 47 tag
// such as "pt-BR") and prefixing fees with currencySymbol.
func NewFormatterForLocale(locale, currencySymbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse label locale %q: %w", locale, err)
	}

	currencySymbol = strings.TrimSpace(currencySymbol)
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}

	return newFormatter(tag, currencySymbol), nil
}

func newFormatter(tag language.Tag, currencySymbol string) *Formatter {
	group, decimalSep := separators(message.NewPrinter(tag))
	return &Formatter{
		groupSeparator:   group,
		decimalSeparator: decimalSep,
		currencySymbol:   currencySymbol,
	}
}

// separators reads the locale's grouping and decimal symbols off a printed sample.
// Locales that print non-ASCII digits fall back to "," and ".".
func separators(p *message.Printer) (group, decimalSep string) {
	sample := p.Sprintf("%.1f", separatorSample) // "1.234.567,5" in pt-BR

	first := strings.Index(sample, "234")
	last := strings.Index(sample, "567")
	if !strings.HasPrefix(sample, "1") || !strings.HasSuffix(sample, "5") || first < 0 || last < first {
		return ",", "."
	}

	return sample[1:first], sample[last+3 : len(sample)-1]
}

const separatorSample = 1234567.5

// FormatLabel renders recipient, address and fee on three lines.
func (f *Formatter) FormatLabel(d delivery.Delivery, fee decimal.Decimal) string {
	return "Destinatário: " + d.Recipient() +
		"\nEndereço: " + d.Address() +
		"\nValor do Frete: " + f.FormatMoney(fee)
}

// FormatSummary renders a single line naming recipient, freight code and fee.
func (f *Formatter) FormatSummary(d delivery.Delivery, fee decimal.Decimal) string {
	return "Pedido para " + d.Recipient() +
		" com frete tipo " + d.FreightCode() +
		" no valor de " + f.FormatMoney(fee)
}

// FormatMoney prints fee rounded half away from zero to two places, e.g. "R$ 17,50".
// The digits come straight from the decimal, so any magnitude prints exactly.
func (f *Formatter) FormatMoney(fee decimal.Decimal) string {
	digits := fee.StringFixed(feeDecimalPlaces)

	sign := ""
	if rest, found := strings.CutPrefix(digits, "-"); found {
		sign, digits = "-", rest
	}

	whole, cents, _ := strings.Cut(digits, ".")
	return f.currencySymbol + " " + sign + groupDigits(whole, f.groupSeparator) + f.decimalSeparator + cents
}

// groupDigits inserts sep between every three digits counted from the right.
func groupDigits(digits, sep string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.WriteString(digits[:min(head, len(digits))])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
