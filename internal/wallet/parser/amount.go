package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount finds the native coin in a coin list such as "5000000ulmn,3uatom"
// and converts its integer base units to a display decimal string with a fixed
// number of places, e.g. "5.000000". Amounts in other denominations are rejected.
func (p *Parser) ParseAmount(raw string) (string, bool) {
	for _, coin := range strings.Split(raw, ",") {
		coin = strings.TrimSpace(coin)
		digits := 0
		for digits < len(coin) && coin[digits] >= '0' && coin[digits] <= '9' {
			digits++
		}
		if digits == 0 || coin[digits:] != p.denom.Base {
			continue
		}
		return p.toDisplay(coin[:digits])
	}
	return "", false
}

// ParseCoin converts a protobuf Coin (separate amount and denom) to display units.
func (p *Parser) ParseCoin(amount, denom string) (string, bool) {
	if denom != p.denom.Base {
		return "", false
	}
	for _, r := range amount {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	if amount == "" {
		return "", false
	}
	return p.toDisplay(amount)
}

func (p *Parser) toDisplay(baseUnits string) (string, bool) {
	d, err := decimal.NewFromString(baseUnits)
	if err != nil {
		return "", false
	}
	return d.Shift(-p.denom.Exponent).StringFixed(p.denom.Exponent), true
}
