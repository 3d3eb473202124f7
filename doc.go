// Package blake2f implements the BLAKE2b compression function F described in
// RFC 7693 section 3.2, along with the 213 byte input encoding used by the
// EIP-152 precompile.
//
// F is a single compression step, not a hash: callers supply the chain value,
// one 128 byte message block, the byte offset counter, the final block flag
// and the number of rounds to run. The number of rounds is not bounded, so
// callers exposing F to untrusted input should cap it before calling, or use
// CompressContext.
package blake2f
