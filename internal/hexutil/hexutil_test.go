package hexutil

import (
	"errors"
	"strings"
	"testing"
)

// TestDecode ensures valid hex strings round-trip and malformed ones fail
// with ErrInvalidDigestEncoding.
func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		size int
		err  bool
	}{
		{name: "valid lowercase", in: "00ff10ab", size: 4},
		{name: "valid uppercase", in: "00FF10AB", size: 4},
		{name: "wrong length", in: "00ff10", size: 4, err: true},
		{name: "odd length", in: "00ff1", size: 4, err: true},
		{name: "non-hex", in: "00ff10zz", size: 4, err: true},
		{name: "empty for nonzero size", in: "", size: 4, err: true},
	}
	for _, test := range tests {
		dst := make([]byte, test.size)
		err := Decode(dst, test.in)
		if test.err {
			if err == nil {
				t.Errorf("%q: expected error", test.name)
				continue
			}
			if !errors.Is(err, ErrInvalidDigestEncoding) {
				t.Errorf("%q: wrong error kind: %v", test.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if got := Encode(dst); got != strings.ToLower(test.in) {
			t.Errorf("%q: round trip got %q want %q", test.name, got,
				strings.ToLower(test.in))
		}
	}
}
