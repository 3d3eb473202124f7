package blake2f

import (
	"context"

	"github.com/zeebo/blake2f/internal/alg/compress/compress_pure"
	"github.com/zeebo/blake2f/internal/consts"
	"github.com/zeebo/blake2f/internal/utils"
)

// ContextCheckRounds is how many rounds CompressContext runs between checks
// of its context.
const ContextCheckRounds = 1 << 16

// Compress runs F for the given number of rounds over the chain value state,
// the 128 byte message block, and the offset counters, returning the new
// chain value serialized as 64 little-endian bytes. The arguments are never
// modified.
//
// It returns a *DimensionError if state does not have 8 words, block is not
// 128 bytes, or offsets does not have 2 words.
func Compress(rounds uint64, state []uint64, block []byte, offsets []uint64, final bool) (out [Size]byte, err error) {
	if err := checkArgs(state, len(block), "bytes", consts.BlockLen, offsets); err != nil {
		return out, err
	}

	return compress(rounds,
		(*[consts.StateWords]uint64)(state),
		(*[consts.BlockLen]byte)(block),
		(*[consts.OffsetWords]uint64)(offsets),
		final), nil
}

// CompressWords is like Compress but takes the message block as 16
// little-endian words.
func CompressWords(rounds uint64, state, block, offsets []uint64, final bool) (out [Size]byte, err error) {
	if err := checkArgs(state, len(block), "words", consts.BlockWords, offsets); err != nil {
		return out, err
	}

	var chain [consts.StateWords]uint64
	compress_pure.Compress(rounds,
		(*[consts.StateWords]uint64)(state),
		(*[consts.BlockWords]uint64)(block),
		offsets[0], offsets[1], final, &chain)

	utils.StateToBytes(&chain, &out)
	return out, nil
}

// CompressContext is like Compress but stops early with the context's error
// if ctx is done. The context is checked before starting and then every
// ContextCheckRounds rounds.
func CompressContext(ctx context.Context, rounds uint64, state []uint64, block []byte, offsets []uint64, final bool) (out [Size]byte, err error) {
	if err := checkArgs(state, len(block), "bytes", consts.BlockLen, offsets); err != nil {
		return out, err
	}

	h := (*[consts.StateWords]uint64)(state)

	var m [consts.BlockWords]uint64
	utils.BytesToWords((*[consts.BlockLen]byte)(block), &m)

	var v [16]uint64
	compress_pure.Init(h, offsets[0], offsets[1], final, &v)

	for done := uint64(0); done < rounds; {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		n := rounds - done
		if n > ContextCheckRounds {
			n = ContextCheckRounds
		}

		compress_pure.Rounds(&v, &m, done, n)
		done += n
	}

	if err := ctx.Err(); err != nil {
		return out, err
	}

	var chain [consts.StateWords]uint64
	compress_pure.Finalize(h, &v, &chain)
	utils.StateToBytes(&chain, &out)
	return out, nil
}

// DecodeAndCompress decodes input with Decode and runs F on the result.
func DecodeAndCompress(input []byte) (out [Size]byte, err error) {
	p, err := Decode(input)
	if err != nil {
		return out, err
	}
	return p.Compress(), nil
}

func checkArgs(state []uint64, blockLen int, blockUnit string, expBlockLen int, offsets []uint64) error {
	if err := checkDimension("state", "words", consts.StateWords, len(state)); err != nil {
		return err
	}
	if err := checkDimension("block", blockUnit, expBlockLen, blockLen); err != nil {
		return err
	}
	return checkDimension("offsets", "words", consts.OffsetWords, len(offsets))
}

func compress(
	rounds uint64,
	state *[consts.StateWords]uint64,
	block *[consts.BlockLen]byte,
	offsets *[consts.OffsetWords]uint64,
	final bool,
) (out [Size]byte) {

	var m [consts.BlockWords]uint64
	var chain [consts.StateWords]uint64

	utils.BytesToWords(block, &m)
	compress_pure.Compress(rounds, state, &m, offsets[0], offsets[1], final, &chain)
	utils.StateToBytes(&chain, &out)

	return out
}
