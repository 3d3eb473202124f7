package consts

// IV is the BLAKE2b initialization vector (RFC 7693 section 2.6).
var IV = [...]uint64{IV0, IV1, IV2, IV3, IV4, IV5, IV6, IV7}

const (
	IV0 = 0x6a09e667f3bcc908
	IV1 = 0xbb67ae8584caa73b
	IV2 = 0x3c6ef372fe94f82b
	IV3 = 0xa54ff53a5f1d36f1
	IV4 = 0x510e527fade682d1
	IV5 = 0x9b05688c2b3e6c1f
	IV6 = 0x1f83d9abfb41bd6b
	IV7 = 0x5be0cd19137e2179
)

// Sigma is the message schedule. Round r uses row r % SigmaRows.
var Sigma = [SigmaRows][16]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

const SigmaRows = 10

// rotation distances of the mixing function G
const (
	R1 = 32
	R2 = 24
	R3 = 16
	R4 = 63
)

const (
	StateWords  = 8
	BlockWords  = 16
	BlockLen    = 128
	OffsetWords = 2
	DigestLen   = 64
)

// wire layout of the EIP-152 input
const (
	InputLen      = 213
	RoundsOffset  = 0
	StateOffset   = 4
	BlockOffset   = 68
	OffsetsOffset = 196
	FlagOffset    = 212
)
