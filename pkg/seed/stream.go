package seed

// Stream binds draws to one validated hash.
type Stream struct {
	hash string
}

// NewStream validates hash and returns a stream over it.
func NewStream(hash string) (Stream, error) {
	if err := Validate(hash); err != nil {
		return Stream{}, err
	}
	return Stream{hash: hash}, nil
}

// Hash returns the hash the stream draws from.
func (s Stream) Hash() string { return s.hash }

// Value returns the draw at index mapped onto [min, max].
func (s Stream) Value(index int, min, max float64) float64 {
	return Value(s.hash, index, min, max)
}

// Int returns floor(Value(index, 0, n)) limited to [0, n).
// A full-scale byte (0xff) maps exactly onto n, which would index one past
// the end of a slice, so it is folded into n-1.
func (s Stream) Int(index, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Value(index, 0, float64(n)))
	return max(0, min(v, n-1))
}
