// Package compress_ref is a direct transcription of RFC 7693 section 3. It is
// slow and only exists to check the other implementations against.
package compress_ref

import "github.com/zeebo/blake2f/internal/consts"

const (
	wordBits = 64
	maskBits = ^uint64(0)
)

// RotateXOR rotates x right by n bits, combining the halves with xor.
func RotateXOR(x uint64, n uint) uint64 {
	return (x >> n) ^ (x << (wordBits - n))
}

// RotateOR rotates x right by n bits, combining the halves with or and
// masking the result to the word size.
func RotateOR(x uint64, n uint) uint64 {
	return ((x >> n) | (x << (wordBits - n))) & maskBits
}

func mix(v *[16]uint64, a, b, c, d int, x, y uint64) {
	v[a] = v[a] + v[b] + x
	v[d] = RotateOR(v[d]^v[a], consts.R1)
	v[c] = v[c] + v[d]
	v[b] = RotateOR(v[b]^v[c], consts.R2)
	v[a] = v[a] + v[b] + y
	v[d] = RotateOR(v[d]^v[a], consts.R3)
	v[c] = v[c] + v[d]
	v[b] = RotateOR(v[b]^v[c], consts.R4)
}

func Compress(
	rounds uint64,
	h *[8]uint64,
	m *[16]uint64,
	t0, t1 uint64,
	final bool,
	out *[8]uint64,
) {
	var v [16]uint64
	copy(v[0:8], h[:])
	copy(v[8:16], consts.IV[:])

	v[12] ^= t0
	v[13] ^= t1
	if final {
		v[14] = maskBits ^ v[14]
	}

	for r := uint64(0); r < rounds; r++ {
		s := &consts.Sigma[r%consts.SigmaRows]

		mix(&v, 0, 4, 8, 12, m[s[0]], m[s[1]])
		mix(&v, 1, 5, 9, 13, m[s[2]], m[s[3]])
		mix(&v, 2, 6, 10, 14, m[s[4]], m[s[5]])
		mix(&v, 3, 7, 11, 15, m[s[6]], m[s[7]])

		mix(&v, 0, 5, 10, 15, m[s[8]], m[s[9]])
		mix(&v, 1, 6, 11, 12, m[s[10]], m[s[11]])
		mix(&v, 2, 7, 8, 13, m[s[12]], m[s[13]])
		mix(&v, 3, 4, 9, 14, m[s[14]], m[s[15]])
	}

	for i := 0; i < 8; i++ {
		out[i] = h[i] ^ v[i] ^ v[i+8]
	}
}
