package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// TestSumFileHex ensures each checksum target produces the expected digest
// for a known file.
func TestSumFileHex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "abc.txt")
	if err := os.WriteFile(path, []byte("abc"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		hash string
		want string
	}{{
		hash: "sha256",
		want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	}, {
		hash: "sha512",
		want: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
			"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
	}, {
		hash: "blake2b",
		want: "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d1" +
			"7d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
	}, {
		hash: "blake2s",
		want: "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982",
	}}
	for _, test := range tests {
		got, err := sumFileHex(test.hash, path)
		if err != nil {
			t.Errorf("%s: %v", test.hash, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %q, want %q", test.hash, got, test.want)
		}
	}

	if _, err := sumFileHex("md5", path); err == nil {
		t.Error("expected an error for an unsupported hash")
	}
	if _, err := sumFileHex("sha256", filepath.Join(dir, "missing")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

// TestVerifyChecksumList exercises the sha256sum-style verification path
// with good, corrupted, and missing entries.
func TestVerifyChecksumList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	if err := os.WriteFile(good, []byte("abc"), 0o600); err != nil {
		t.Fatal(err)
	}
	goodSum, err := sumFileHex("sha256", good)
	if err != nil {
		t.Fatal(err)
	}

	listOK := filepath.Join(dir, "ok.sums")
	if err := os.WriteFile(listOK,
		[]byte(fmt.Sprintf("%s  %s\n", goodSum, good)), 0o600); err != nil {
		t.Fatal(err)
	}
	if !verifyChecksumList("sha256", listOK) {
		t.Error("valid checksum list failed to verify")
	}

	badSum := "00" + goodSum[2:]
	listBad := filepath.Join(dir, "bad.sums")
	entries := fmt.Sprintf("%s  %s\n%s  %s\n", badSum, good, goodSum,
		filepath.Join(dir, "missing"))
	if err := os.WriteFile(listBad, []byte(entries), 0o600); err != nil {
		t.Fatal(err)
	}
	if verifyChecksumList("sha256", listBad) {
		t.Error("corrupted checksum list verified")
	}
}
