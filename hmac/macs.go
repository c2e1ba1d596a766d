package hmac

import (
	"crypto/subtle"
	"hash"

	"github.com/SooryaN/raaz/blake2b"
	"github.com/SooryaN/raaz/blake2s"
	"github.com/SooryaN/raaz/internal/hexutil"
	"github.com/SooryaN/raaz/sha1"
	"github.com/SooryaN/raaz/sha256"
	"github.com/SooryaN/raaz/sha512"
)

// SHA1MAC is an HMAC-SHA1 output.
type SHA1MAC [sha1.Size]byte

// String returns the MAC as a lowercase hexadecimal string.
func (m SHA1MAC) String() string { return hexutil.Encode(m[:]) }

// IsEqual reports whether two MACs are equal in constant time.
func (m *SHA1MAC) IsEqual(other *SHA1MAC) bool {
	return subtle.ConstantTimeCompare(m[:], other[:]) == 1
}

// NewSHA1MACFromStr parses a hexadecimal string into a SHA1MAC.
func NewSHA1MACFromStr(s string) (SHA1MAC, error) {
	var m SHA1MAC
	err := hexutil.Decode(m[:], s)
	return m, err
}

// SumSHA1 computes HMAC-SHA1 of msg under key.
func SumSHA1(key, msg []byte) SHA1MAC {
	var m SHA1MAC
	sum(func() hash.Hash { return sha1.New() }, key, msg, m[:])
	return m
}

// SHA256MAC is an HMAC-SHA256 output.
type SHA256MAC [sha256.Size]byte

// String returns the MAC as a lowercase hexadecimal string.
func (m SHA256MAC) String() string { return hexutil.Encode(m[:]) }

// IsEqual reports whether two MACs are equal in constant time.
func (m *SHA256MAC) IsEqual(other *SHA256MAC) bool {
	return subtle.ConstantTimeCompare(m[:], other[:]) == 1
}

// NewSHA256MACFromStr parses a hexadecimal string into a SHA256MAC.
func NewSHA256MACFromStr(s string) (SHA256MAC, error) {
	var m SHA256MAC
	err := hexutil.Decode(m[:], s)
	return m, err
}

// SumSHA256 computes HMAC-SHA256 of msg under key.
func SumSHA256(key, msg []byte) SHA256MAC {
	var m SHA256MAC
	sum(func() hash.Hash { return sha256.New() }, key, msg, m[:])
	return m
}

// SHA512MAC is an HMAC-SHA512 output.
type SHA512MAC [sha512.Size]byte

// String returns the MAC as a lowercase hexadecimal string.
func (m SHA512MAC) String() string { return hexutil.Encode(m[:]) }

// IsEqual reports whether two MACs are equal in constant time.
func (m *SHA512MAC) IsEqual(other *SHA512MAC) bool {
	return subtle.ConstantTimeCompare(m[:], other[:]) == 1
}

// NewSHA512MACFromStr parses a hexadecimal string into a SHA512MAC.
func NewSHA512MACFromStr(s string) (SHA512MAC, error) {
	var m SHA512MAC
	err := hexutil.Decode(m[:], s)
	return m, err
}

// SumSHA512 computes HMAC-SHA512 of msg under key.
func SumSHA512(key, msg []byte) SHA512MAC {
	var m SHA512MAC
	sum(func() hash.Hash { return sha512.New() }, key, msg, m[:])
	return m
}

// Blake2bMAC is an HMAC-BLAKE2b output.
//
// BLAKE2b has a native keyed mode that is normally preferable; the HMAC
// construction is provided for protocols that mandate HMAC.
type Blake2bMAC [blake2b.Size]byte

// String returns the MAC as a lowercase hexadecimal string.
func (m Blake2bMAC) String() string { return hexutil.Encode(m[:]) }

// IsEqual reports whether two MACs are equal in constant time.
func (m *Blake2bMAC) IsEqual(other *Blake2bMAC) bool {
	return subtle.ConstantTimeCompare(m[:], other[:]) == 1
}

// NewBlake2bMACFromStr parses a hexadecimal string into a Blake2bMAC.
func NewBlake2bMACFromStr(s string) (Blake2bMAC, error) {
	var m Blake2bMAC
	err := hexutil.Decode(m[:], s)
	return m, err
}

// SumBlake2b computes HMAC-BLAKE2b of msg under key.
func SumBlake2b(key, msg []byte) Blake2bMAC {
	var m Blake2bMAC
	sum(func() hash.Hash { return blake2b.New() }, key, msg, m[:])
	return m
}

// Blake2sMAC is an HMAC-BLAKE2s output.
type Blake2sMAC [blake2s.Size]byte

// String returns the MAC as a lowercase hexadecimal string.
func (m Blake2sMAC) String() string { return hexutil.Encode(m[:]) }

// IsEqual reports whether two MACs are equal in constant time.
func (m *Blake2sMAC) IsEqual(other *Blake2sMAC) bool {
	return subtle.ConstantTimeCompare(m[:], other[:]) == 1
}

// NewBlake2sMACFromStr parses a hexadecimal string into a Blake2sMAC.
func NewBlake2sMACFromStr(s string) (Blake2sMAC, error) {
	var m Blake2sMAC
	err := hexutil.Decode(m[:], s)
	return m, err
}

// SumBlake2s computes HMAC-BLAKE2s of msg under key.
func SumBlake2s(key, msg []byte) Blake2sMAC {
	var m Blake2sMAC
	sum(func() hash.Hash { return blake2s.New() }, key, msg, m[:])
	return m
}
