package blake2f

import (
	"encoding/binary"

	"github.com/zeebo/blake2f/internal/consts"
	"github.com/zeebo/blake2f/internal/utils"
	"lukechampine.com/uint128"
)

const (
	// InputSize is the length of an encoded input.
	InputSize = consts.InputLen

	// BlockSize is the length of a message block.
	BlockSize = consts.BlockLen

	// Size is the length of the output of F.
	Size = consts.DigestLen
)

// Params are the arguments to F as carried by the EIP-152 encoding.
type Params struct {
	Rounds  uint32
	State   [consts.StateWords]uint64
	Block   [consts.BlockLen]byte
	Offsets [consts.OffsetWords]uint64
	Final   bool
}

// Decode parses the 213 byte encoding of the arguments to F:
//
//	[0:4]     rounds, big-endian
//	[4:68]    state, 8 little-endian words
//	[68:196]  message block
//	[196:212] offset counters, 2 little-endian words
//	[212]     final block flag, 0 or 1
func Decode(input []byte) (p Params, err error) {
	if len(input) != consts.InputLen {
		return p, &InputLengthError{Expected: consts.InputLen, Actual: len(input)}
	}

	switch flag := input[consts.FlagOffset]; flag {
	case 0:
	case 1:
		p.Final = true
	default:
		return p, &InvalidFinalFlagError{Flag: flag}
	}

	p.Rounds = binary.BigEndian.Uint32(input[consts.RoundsOffset:])
	utils.BytesToState(input[consts.StateOffset:consts.BlockOffset], &p.State)
	copy(p.Block[:], input[consts.BlockOffset:consts.OffsetsOffset])
	p.Offsets[0] = binary.LittleEndian.Uint64(input[consts.OffsetsOffset:])
	p.Offsets[1] = binary.LittleEndian.Uint64(input[consts.OffsetsOffset+8:])

	return p, nil
}

// Encode returns the 213 byte encoding of p. It is the inverse of Decode.
func (p *Params) Encode() (out [consts.InputLen]byte) {
	p.encode(&out)
	return out
}

// AppendEncode appends the encoding of p to dst and returns the result.
func (p *Params) AppendEncode(dst []byte) []byte {
	var buf [consts.InputLen]byte
	p.encode(&buf)
	return append(dst, buf[:]...)
}

func (p *Params) encode(buf *[consts.InputLen]byte) {
	binary.BigEndian.PutUint32(buf[consts.RoundsOffset:], p.Rounds)
	for i, w := range p.State {
		binary.LittleEndian.PutUint64(buf[consts.StateOffset+8*i:], w)
	}
	copy(buf[consts.BlockOffset:], p.Block[:])
	binary.LittleEndian.PutUint64(buf[consts.OffsetsOffset:], p.Offsets[0])
	binary.LittleEndian.PutUint64(buf[consts.OffsetsOffset+8:], p.Offsets[1])

	buf[consts.FlagOffset] = 0
	if p.Final {
		buf[consts.FlagOffset] = 1
	}
}

// Offset returns the offset counters as a single 128 bit byte offset.
func (p *Params) Offset() uint128.Uint128 {
	return uint128.New(p.Offsets[0], p.Offsets[1])
}

// SetOffset stores a 128 bit byte offset into the offset counters.
func (p *Params) SetOffset(offset uint128.Uint128) {
	p.Offsets = [consts.OffsetWords]uint64{offset.Lo, offset.Hi}
}

// Words returns the message block as little-endian words.
func (p *Params) Words() (m [consts.BlockWords]uint64) {
	utils.BytesToWords(&p.Block, &m)
	return m
}

// Compress runs F with the arguments in p.
func (p *Params) Compress() [Size]byte {
	return compress(uint64(p.Rounds), &p.State, &p.Block, &p.Offsets, p.Final)
}
