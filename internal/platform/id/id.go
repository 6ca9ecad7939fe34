package id

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID generates a URL-safe unique identifier.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(value[:])), nil
}

// NewWalletAddress generates a wallet address with a recognizable prefix.
//
// Addresses share the uniqueness properties of NewID; the prefix only exists
// so addresses and record ids are not confused in logs and payloads.
func NewWalletAddress() (string, error) {
	value, err := NewID()
	if err != nil {
		return "", err
	}
	return "spark1" + value, nil
}
