//go:build linux

package rand

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// fillEntropy fills b with entropy from the kernel via getrandom(2),
// retrying interrupted and partial reads.
func fillEntropy(b []byte) error {
	for len(b) > 0 {
		n, err := unix.Getrandom(b, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			str := fmt.Sprintf("getrandom failed: %v", err)
			return makeError(ErrEntropyUnavailable, str)
		}
		if n <= 0 {
			return makeError(ErrShortRead, "getrandom returned no data")
		}
		b = b[n:]
	}
	return nil
}
