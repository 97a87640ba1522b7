package utils

import (
	"crypto/rand"
	"math/big"
)

const inviteAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateInviteCode returns a random lowercase alphanumeric code of length n.
func GenerateInviteCode(n int) (string, error) {
	max := big.NewInt(int64(len(inviteAlphabet)))
	code := make([]byte, n)
	for i := range code {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = inviteAlphabet[idx.Int64()]
	}
	return string(code), nil
}
