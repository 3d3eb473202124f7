package compress_pure

import (
	"math/bits"

	"github.com/zeebo/blake2f/internal/consts"
)

// Compress runs the BLAKE2b compression function F over the chain value h and
// message words m, writing the new chain value into out. h and m are only
// read, so out may alias h.
func Compress(
	rounds uint64,
	h *[8]uint64,
	m *[16]uint64,
	t0, t1 uint64,
	final bool,
	out *[8]uint64,
) {
	var v [16]uint64
	Init(h, t0, t1, final, &v)
	Rounds(&v, m, 0, rounds)
	Finalize(h, &v, out)
}

// Init loads the working vector from the chain value, the offset counter and
// the final block flag.
func Init(h *[8]uint64, t0, t1 uint64, final bool, v *[16]uint64) {
	var f uint64
	if final {
		f = ^uint64(0)
	}

	*v = [16]uint64{
		h[0], h[1], h[2], h[3],
		h[4], h[5], h[6], h[7],
		consts.IV0, consts.IV1, consts.IV2, consts.IV3,
		consts.IV4 ^ t0, consts.IV5 ^ t1, consts.IV6 ^ f, consts.IV7,
	}
}

// Rounds applies n rounds to the working vector. from is the index of the
// first round and selects where in the message schedule to start, so that a
// computation can be split into several calls.
func Rounds(v *[16]uint64, m *[16]uint64, from, n uint64) {
	v0, v1, v2, v3 := v[0], v[1], v[2], v[3]
	v4, v5, v6, v7 := v[4], v[5], v[6], v[7]
	v8, v9, va, vb := v[8], v[9], v[10], v[11]
	vc, vd, ve, vf := v[12], v[13], v[14], v[15]

	row := from % consts.SigmaRows

	for ; n > 0; n-- {
		s := &consts.Sigma[row]

		v0, v4, v8, vc = g(v0, v4, v8, vc, m[s[0]&15], m[s[1]&15])
		v1, v5, v9, vd = g(v1, v5, v9, vd, m[s[2]&15], m[s[3]&15])
		v2, v6, va, ve = g(v2, v6, va, ve, m[s[4]&15], m[s[5]&15])
		v3, v7, vb, vf = g(v3, v7, vb, vf, m[s[6]&15], m[s[7]&15])
		v0, v5, va, vf = g(v0, v5, va, vf, m[s[8]&15], m[s[9]&15])
		v1, v6, vb, vc = g(v1, v6, vb, vc, m[s[10]&15], m[s[11]&15])
		v2, v7, v8, vd = g(v2, v7, v8, vd, m[s[12]&15], m[s[13]&15])
		v3, v4, v9, ve = g(v3, v4, v9, ve, m[s[14]&15], m[s[15]&15])

		row++
		if row == consts.SigmaRows {
			row = 0
		}
	}

	*v = [16]uint64{
		v0, v1, v2, v3,
		v4, v5, v6, v7,
		v8, v9, va, vb,
		vc, vd, ve, vf,
	}
}

// Finalize folds the working vector back into the chain value.
func Finalize(h *[8]uint64, v *[16]uint64, out *[8]uint64) {
	*out = [8]uint64{
		h[0] ^ v[0] ^ v[8],
		h[1] ^ v[1] ^ v[9],
		h[2] ^ v[2] ^ v[10],
		h[3] ^ v[3] ^ v[11],
		h[4] ^ v[4] ^ v[12],
		h[5] ^ v[5] ^ v[13],
		h[6] ^ v[6] ^ v[14],
		h[7] ^ v[7] ^ v[15],
	}
}

func g(a, b, c, d, x, y uint64) (uint64, uint64, uint64, uint64) {
	a += b + x
	d = bits.RotateLeft64(d^a, -consts.R1)
	c += d
	b = bits.RotateLeft64(b^c, -consts.R2)
	a += b + y
	d = bits.RotateLeft64(d^a, -consts.R3)
	c += d
	b = bits.RotateLeft64(b^c, -consts.R4)
	return a, b, c, d
}
