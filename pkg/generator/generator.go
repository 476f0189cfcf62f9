// Package generator mints random identifiers for stored records.
package generator

import (
	"crypto/rand"
	"math/big"
)

const (
	alphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	userIDLen = 24
)

// UserID returns a fresh identifier for a user row.
func UserID() (string, error) {
	return GenerateRandomID(userIDLen)
}

func GenerateRandomID(length int) (string, error) {
	result := make([]byte, length)

	for i := 0; i < length; i++ {
		randomIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		result[i] = alphabet[randomIndex.Int64()]
	}

	return string(result), nil
}
