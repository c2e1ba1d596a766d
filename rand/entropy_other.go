//go:build !linux

package rand

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
)

// fillEntropy fills b with entropy from the platform crypto/rand source
// (arc4random, CryptGenRandom, or /dev/urandom depending on the OS).
func fillEntropy(b []byte) error {
	if _, err := io.ReadFull(cryptorand.Reader, b); err != nil {
		str := fmt.Sprintf("system entropy read failed: %v", err)
		return makeError(ErrEntropyUnavailable, str)
	}
	return nil
}
