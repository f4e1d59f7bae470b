// Package seed turns a hexadecimal hash into a numeric seed and a
// deterministic stream of values.
//
// # Stream Draws
//
// A draw is keyed by an integer index. Index i reads the two hex characters
// starting at (i*2) mod len(hash) and maps the byte linearly onto [min, max]:
//
//	v := seed.Value("46192e59", 3, 0, 360) // reads "59" -> 89/255*360
//
// The mapping is pure: the same (hash, index, min, max) always yields the
// same float. It is reproducible, not random in any cryptographic sense.
//
// # Short Hashes
//
// A draw whose two-character window would run past the end of the hash
// reads the single remaining character instead ("f" parses as 15). Hashes
// are validated up front by [Validate], so every window parses and no draw
// can produce NaN.
package seed

import (
	"math"
	"strconv"

	"github.com/matzehuels/hashart/pkg/errors"
)

// seedChars is the number of leading hash characters folded into the seed.
const seedChars = 8

// Validate reports whether hash is usable for generation: non-empty and
// made only of hexadecimal characters.
func Validate(hash string) error {
	if hash == "" {
		return errors.New(errors.ErrCodeMalformedHash, "hash cannot be empty")
	}
	for i := 0; i < len(hash); i++ {
		if !isHex(hash[i]) {
			return errors.New(errors.ErrCodeMalformedHash, "hash contains non-hex character %q at offset %d", hash[i], i)
		}
	}
	return nil
}

// FromHash parses the first eight characters of hash as base-16.
// Like a prefix parse, it stops at the first non-hex character and only
// fails when no hex character leads the hash.
func FromHash(hash string) (uint32, error) {
	end := min(len(hash), seedChars)
	n := 0
	for n < end && isHex(hash[n]) {
		n++
	}
	if n == 0 {
		return 0, errors.New(errors.ErrCodeMalformedHash, "hash %q has no hex prefix", hash)
	}
	v, err := strconv.ParseUint(hash[:n], 16, 32)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeMalformedHash, err, "parse seed")
	}
	return uint32(v), nil
}

// Hue maps a seed onto the colour wheel.
func Hue(s uint32) int {
	return int(s % 360)
}

// Value returns the draw at index mapped onto [min, max].
// It returns NaN when the selected window is not hexadecimal; callers that
// pass hashes through [Validate] never see that case.
func Value(hash string, index int, min, max float64) float64 {
	d, ok := window(hash, index)
	if !ok {
		return math.NaN()
	}
	return min + (float64(d)/255)*(max-min)
}

// window parses the hex window for index.
func window(hash string, index int) (uint64, bool) {
	if hash == "" {
		return 0, false
	}
	pos := (index * 2) % len(hash)
	if pos < 0 {
		pos += len(hash)
	}
	end := min(pos+2, len(hash))
	d, err := strconv.ParseUint(hash[pos:end], 16, 8)
	if err != nil {
		return 0, false
	}
	return d, true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
