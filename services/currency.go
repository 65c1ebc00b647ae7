package services

import (
	"fmt"
	"math"
	"strings"
)

// Display currencies supported by the quote editor and the share view. All
// quote amounts are held in AED; other currencies are presentation only.
const (
	CurrencyAED = "AED"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Editor quick-preview rates, expressed as AED per unit of the target
// currency. The share view accepts a user-chosen rate at share time, so
// these only drive the live preview next to the editor totals.
const (
	AEDPerUSD = 3.67
	AEDPerEUR = 4.02
)

// EURBankSurchargeRate is the flat bank-conversion surcharge the share view
// adds on top of EUR-converted totals, applied after conversion.
const EURBankSurchargeRate = 0.03

// PreviewRate returns the editor's fixed AED-per-unit rate for a display
// currency. Unknown codes fall back to AED identity.
func PreviewRate(currency string) float64 {
	switch currency {
	case CurrencyUSD:
		return AEDPerUSD
	case CurrencyEUR:
		return AEDPerEUR
	default:
		return 1
	}
}

// ConvertFromAED converts an AED amount into the target currency at the
// given AED-per-unit rate. A zero or negative rate is treated as identity
// so a bad URL parameter cannot blow a share view up to infinity.
func ConvertFromAED(amountAED, aedPerUnit float64) float64 {
	if aedPerUnit <= 0 {
		return amountAED
	}
	return amountAED / aedPerUnit
}

// EURWithBankSurcharge returns the EUR amount plus the flat bank-conversion
// surcharge.
func EURWithBankSurcharge(amountEUR float64) float64 {
	return amountEUR * (1 + EURBankSurchargeRate)
}

// FormatMoney renders an amount as "CUR 1,234": currency code, space,
// integer value with thousands separators and no decimals. Rounding is
// half away from zero (math.Round), consistently across a render pass.
func FormatMoney(currency string, amount float64) string {
	rounded := int64(math.Round(amount))

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	grouped := groupThousands(fmt.Sprintf("%d", rounded))
	if negative {
		grouped = "-" + grouped
	}
	return currency + " " + grouped
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
