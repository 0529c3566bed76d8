package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NewTokenSecret returns a fresh random token secret.
func NewTokenSecret() string {
	return uuid.NewString()
}

// HashToken returns the hex SHA-256 digest stored for a token secret.
func HashToken(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// FormatToken builds the plain text bearer token handed to clients: the
// token row id joined with the secret, so lookup does not require scanning
// hashes.
func FormatToken(id uint, secret string) string {
	return strconv.FormatUint(uint64(id), 10) + "|" + secret
}

// ParseToken splits a plain text bearer token into row id and secret.
func ParseToken(token string) (uint, string, error) {
	idPart, secret, found := strings.Cut(token, "|")
	if !found || secret == "" {
		return 0, "", errors.New("malformed token")
	}
	id, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil {
		return 0, "", errors.New("malformed token")
	}
	return uint(id), secret, nil
}

// HashEquals compares two hash strings in constant time.
func HashEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
