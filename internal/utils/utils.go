package utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/zeebo/blake2f/internal/consts"
)

// BytesToWords loads a message block as 16 little-endian words.
func BytesToWords(bytes *[consts.BlockLen]byte, words *[consts.BlockWords]uint64) {
	if consts.IsLittleEndian && uintptr(unsafe.Pointer(bytes))%8 == 0 {
		*words = *(*[consts.BlockWords]uint64)(unsafe.Pointer(bytes))
		return
	}

	for i := range words {
		words[i] = binary.LittleEndian.Uint64(bytes[i*8:])
	}
}

// StateToBytes serializes a chain value word-major, little-endian.
func StateToBytes(state *[consts.StateWords]uint64, bytes *[consts.DigestLen]byte) {
	if consts.IsLittleEndian {
		*bytes = *(*[consts.DigestLen]byte)(unsafe.Pointer(state))
		return
	}

	binary.LittleEndian.PutUint64(bytes[0*8:], state[0])
	binary.LittleEndian.PutUint64(bytes[1*8:], state[1])
	binary.LittleEndian.PutUint64(bytes[2*8:], state[2])
	binary.LittleEndian.PutUint64(bytes[3*8:], state[3])
	binary.LittleEndian.PutUint64(bytes[4*8:], state[4])
	binary.LittleEndian.PutUint64(bytes[5*8:], state[5])
	binary.LittleEndian.PutUint64(bytes[6*8:], state[6])
	binary.LittleEndian.PutUint64(bytes[7*8:], state[7])
}

// BytesToState is the inverse of StateToBytes.
func BytesToState(bytes []byte, state *[consts.StateWords]uint64) {
	_ = bytes[consts.DigestLen-1]

	state[0] = binary.LittleEndian.Uint64(bytes[0*8:])
	state[1] = binary.LittleEndian.Uint64(bytes[1*8:])
	state[2] = binary.LittleEndian.Uint64(bytes[2*8:])
	state[3] = binary.LittleEndian.Uint64(bytes[3*8:])
	state[4] = binary.LittleEndian.Uint64(bytes[4*8:])
	state[5] = binary.LittleEndian.Uint64(bytes[5*8:])
	state[6] = binary.LittleEndian.Uint64(bytes[6*8:])
	state[7] = binary.LittleEndian.Uint64(bytes[7*8:])
}
