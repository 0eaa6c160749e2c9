// Package memblock provides block copy, compare, and fill over byte slices
// at word (2-byte) granularity. The loops advance one word at a time and
// handle an odd trailing byte separately, matching the transfer width the
// paint canvas was designed around.
package memblock

const wordSize = 2

func word(b []byte, i int) uint16 {
	return uint16(b[i]) | uint16(b[i+1])<<8
}

// Copy transfers n bytes from src to dst word by word, then moves the final
// byte on its own when n is odd. Overlapping src and dst regions are the
// caller's responsibility; Copy does not guard against them.
func Copy(dst, src []byte, n int) {
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		w := word(src, i)
		dst[i] = byte(w)
		dst[i+1] = byte(w >> 8)
	}
	if i < n {
		dst[i] = src[i]
	}
}

// Equal reports whether the first n bytes of a and b match. It compares word
// by word and returns false at the first mismatching word; when n is odd the
// trailing byte is compared after the word loop.
func Equal(a, b []byte, n int) bool {
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		if word(a, i) != word(b, i) {
			return false
		}
	}
	if i < n && a[i] != b[i] {
		return false
	}
	return true
}

// Fill writes v into the first n bytes of dst. The fill value is widened to
// a word with v in both halves and stored word by word; an odd n gets the
// final byte written separately.
func Fill(dst []byte, n int, v byte) {
	w := uint16(v) | uint16(v)<<8
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		dst[i] = byte(w)
		dst[i+1] = byte(w >> 8)
	}
	if i < n {
		dst[i] = v
	}
}
