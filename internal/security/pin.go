package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const pinDigits = "0123456789"

var errInvalidPINLength = errors.New("pin length must be between 4 and 6")

// TemporaryPIN returns a cryptographically secure, unbiased numeric PIN of
// the requested length (4 to 6 digits, matching the login constraint).
func TemporaryPIN(length int) (string, error) {
	if length < 4 || length > 6 {
		return "", errInvalidPINLength
	}

	limit := big.NewInt(int64(len(pinDigits)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = pinDigits[position.Int64()]
	}

	return string(value), nil
}
