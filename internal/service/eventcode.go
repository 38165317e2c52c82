package service

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// codeAlphabet avoids visually ambiguous characters (0/O, 1/I/L) so codes
// survive being read aloud or copied from a whiteboard.
const (
	codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	codeLength   = 6

	maxCodeAttempts = 10
)

// ErrCodeExhausted means code generation kept colliding with existing
// events. The creation fails loudly; callers may retry.
var ErrCodeExhausted = errors.New("could not generate a unique event code")

func generateEventCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("rand.Read -> %w", err)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return string(buf), nil
}
