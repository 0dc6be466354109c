// Package parser normalizes transfer information delivered by the chain in
// heterogeneous shapes: event attributes in plain, base64 or hex encoding,
// protobuf encoded transactions and coin strings.
package parser

import (
	"errors"
	"strings"
	"unicode"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

// Config describes the chain conventions the parser relies on.
type Config struct {
	AddressPrefix string
	Denom         model.Denomination
}

// Parser decodes events and transactions for one chain.
type Parser struct {
	prefix string
	denom  model.Denomination
}

// New validates cfg and builds a Parser.
func New(cfg Config) (*Parser, error) {
	if cfg.AddressPrefix == "" {
		return nil, errors.New("address prefix is required")
	}
	if cfg.Denom.Base == "" || cfg.Denom.Display == "" {
		return nil, errors.New("base and display denominations are required")
	}
	if cfg.Denom.Exponent < 0 {
		return nil, errors.New("denomination exponent must not be negative")
	}
	return &Parser{prefix: cfg.AddressPrefix, denom: cfg.Denom}, nil
}

// Denom returns the native denomination.
func (p *Parser) Denom() model.Denomination {
	return p.denom
}

// LooksLikeAddress reports whether s is a bech32 string whose human readable
// part starts with the configured prefix. Validator operator addresses
// ("lmnvaloper1...") pass as well.
func (p *Parser) LooksLikeAddress(s string) bool {
	if !strings.HasPrefix(s, p.prefix) {
		return false
	}
	hrp, _, err := bech32.Decode(s)
	if err != nil {
		return false
	}
	return strings.HasPrefix(hrp, p.prefix)
}

// IsAccountAddress reports whether s is an account address of this chain.
func (p *Parser) IsAccountAddress(s string) bool {
	hrp, _, err := bech32.Decode(s)
	return err == nil && hrp == p.prefix
}

// LooksLikeAmount reports whether s is a coin list containing the native base denomination.
func (p *Parser) LooksLikeAmount(s string) bool {
	for _, coin := range strings.Split(s, ",") {
		coin = strings.TrimSpace(coin)
		if coin == "" || !unicode.IsDigit(rune(coin[0])) {
			continue
		}
		if strings.HasSuffix(coin, p.denom.Base) {
			return true
		}
	}
	return false
}
