package parser

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/chain"
)

// Attribute keys carrying account or validator addresses.
var addressKeys = map[string]bool{
	"recipient": true,
	"sender":    true,
	"receiver":  true,
	"spender":   true,
	"delegator": true,
	"validator": true,
}

// DecodeValue returns raw when it already satisfies plain. Otherwise it tries,
// in order, standard base64 and hex decoding and returns the first decoded form
// that satisfies plain. When nothing does, raw is returned unchanged.
func DecodeValue(raw string, plain func(string) bool) string {
	if plain(raw) {
		return raw
	}
	if decoded, ok := decodeBase64(raw); ok && plain(decoded) {
		return decoded
	}
	if decoded, ok := decodeHex(raw); ok && plain(decoded) {
		return decoded
	}
	return raw
}

// DecodeAttribute normalizes one event attribute. The key is decoded first; the
// value is then checked against what the key implies: an address for
// sender/recipient style keys, a native coin list for "amount".
func (p *Parser) DecodeAttribute(a chain.Attribute) chain.Attribute {
	key := DecodeValue(a.Key, looksLikeKey)
	keyEncoded := key != a.Key

	var value string
	switch {
	case addressKeys[key]:
		value = DecodeValue(a.Value, p.LooksLikeAddress)
	case key == "amount":
		value = DecodeValue(a.Value, p.LooksLikeAmount)
	case keyEncoded:
		// the node encoded the whole attribute
		if decoded, ok := decodeBase64(a.Value); ok && printable(decoded) {
			value = decoded
		} else {
			value = a.Value
		}
	default:
		value = a.Value
	}
	return chain.Attribute{Key: key, Value: value}
}

func looksLikeKey(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func decodeBase64(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

func decodeHex(s string) (string, bool) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" || len(s)%2 != 0 {
		return "", false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

func printable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
