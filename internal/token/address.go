package token

import (
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

const addressLen = 32

// NormalizeAddress decodes a base58 contract address, checks it is exactly
// 32 bytes, and re-encodes it in canonical form.
func NormalizeAddress(addr string) (string, error) {
	decoded, err := base58.Decode(addr)
	if err != nil {
		return "", fmt.Errorf("decode address: %w", err)
	}
	if len(decoded) != addressLen {
		return "", fmt.Errorf("address is %d bytes, expected %d", len(decoded), addressLen)
	}
	return base58.Encode(decoded), nil
}

// ValidAddress reports whether addr is a well-formed 32-byte base58 address.
func ValidAddress(addr string) bool {
	_, err := NormalizeAddress(addr)
	return err == nil
}

// LooksLikeWallet reports whether addr decodes to a point on the ed25519
// curve. Wallet keys are always on-curve, so an on-curve address that no
// lookup recognizes as a token is likely a pasted wallet address.
func LooksLikeWallet(addr string) bool {
	decoded, err := base58.Decode(addr)
	if err != nil || len(decoded) != addressLen {
		return false
	}
	_, err = new(edwards25519.Point).SetBytes(decoded)
	return err == nil
}
