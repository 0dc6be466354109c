package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const syntheticPrefix = "detected"

// TxHash returns the canonical transaction hash: SHA-256 over the raw
// transaction bytes, uppercase hex encoded.
func TxHash(tx []byte) string {
	sum := sha256.Sum256(tx)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// SyntheticHash builds an identifier for a transfer that has no transaction
// bytes, such as a protocol-level transfer in finalize block events. The
// suffix is derived from the event content, so scanning the same height twice
// yields the same identifier.
func SyntheticHash(height uint64, source string, t Transfer) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%s|%d|%s|%s|%s",
		height, source, t.EventIndex, t.Sender, t.Recipient, t.Amount)))
	return fmt.Sprintf("%s-%d-%s%d-%s", syntheticPrefix, height, source, t.EventIndex, hex.EncodeToString(sum[:8]))
}

// IsSynthetic reports whether hash was produced by SyntheticHash.
func IsSynthetic(hash string) bool {
	return strings.HasPrefix(hash, syntheticPrefix+"-")
}
