// Package sha3 implements the fixed-output SHA-3 hash functions
// (SHA3-224, SHA3-256, SHA3-384 and SHA3-512) defined in FIPS 202.
//
// It is a plain, portable implementation of the Keccak sponge over the
// Keccak-p[1600,24] permutation. Each call hashes one complete message with
// its own state, so the functions are safe for concurrent use.
//
// There is no streaming interface, no SHAKE and no assembly; use
// golang.org/x/crypto/sha3 or crypto/sha3 for those.
package sha3

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Supported digest sizes, in bits.
const (
	Size224 = 224
	Size256 = 256
	Size384 = 384
	Size512 = 512
)

// ErrUnsupportedSize is returned for digest sizes other than 224, 256, 384
// and 512 bits.
var ErrUnsupportedSize = errors.New("sha3: unsupported digest size")

// rateFor returns the sponge rate in bits for a digest size:
// 1600 - 2*size.
func rateFor(size int) (int, bool) {
	switch size {
	case Size224:
		return 1152, true
	case Size256:
		return 1088, true
	case Size384:
		return 832, true
	case Size512:
		return 576, true
	}
	return 0, false
}

// Supported reports whether size is a digest size this package computes.
func Supported(size int) bool {
	_, ok := rateFor(size)
	return ok
}

// sum pads data, absorbs it block by block and squeezes size bits.
func sum(data []byte, size, rate int) []byte {
	var a state

	padded := pad(data, rate)
	blockSize := rate / 8
	for len(padded) > 0 {
		a.absorbBlock(padded[:blockSize])
		padded = padded[blockSize:]
	}

	return a.squeeze(rate, size)
}

// Sum returns the SHA3 digest of data for the given size in bits.
func Sum(data []byte, size int) ([]byte, error) {
	rate, ok := rateFor(size)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
	return sum(data, size, rate), nil
}

// Hash returns the lowercase hex encoding of the SHA3 digest of data.
// The result is size/4 characters long.
func Hash(data []byte, size int) (string, error) {
	digest, err := Sum(data, size)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest), nil
}

// HashString is Hash over the UTF-8 bytes of s.
func HashString(s string, size int) (string, error) {
	return Hash([]byte(s), size)
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) [28]byte {
	return [28]byte(sum(data, Size224, 1152))
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) [32]byte {
	return [32]byte(sum(data, Size256, 1088))
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) [48]byte {
	return [48]byte(sum(data, Size384, 832))
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) [64]byte {
	return [64]byte(sum(data, Size512, 576))
}
