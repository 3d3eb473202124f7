package blake2f

import (
	"testing"

	"github.com/zeebo/blake2f/internal/alg/compress/compress_ref"
	"github.com/zeebo/blake2f/internal/utils"
)

func FuzzDecodeAndCompress(f *testing.F) {
	for _, tv := range vectors.Fast {
		f.Add(tv.input())
	}
	for _, tv := range vectors.Errors {
		f.Add(tv.input())
	}

	f.Fuzz(func(t *testing.T, input []byte) {
		p, err := Decode(input)
		if err != nil {
			if _, err2 := DecodeAndCompress(input); err2 == nil || err2.Error() != err.Error() {
				t.Fatalf("decode error %v but compress error %v", err, err2)
			}
			return
		}

		if enc := p.Encode(); string(enc[:]) != string(input) {
			t.Fatalf("encoding mismatch: %x != %x", enc, input)
		}

		// keep the fuzzer fast
		p.Rounds %= 1024
		enc := p.Encode()

		v1, err := DecodeAndCompress(enc[:])
		if err != nil {
			t.Fatal(err)
		}
		v2 := p.Compress()

		m := p.Words()
		var chain [8]uint64
		var v3 [Size]byte
		compress_ref.Compress(uint64(p.Rounds), &p.State, &m, p.Offsets[0], p.Offsets[1], p.Final, &chain)
		utils.StateToBytes(&chain, &v3)

		if v1 != v2 || v2 != v3 {
			t.Fatalf("v1: %x, v2: %x, v3: %x", v1, v2, v3)
		}
	})
}
