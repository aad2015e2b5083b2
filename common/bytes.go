package common

import "encoding/binary"

// Uint64ToBytes encodes val as 8 big-endian bytes. Sizes and leaf indices
// take this form wherever they enter a hash preimage, so the encoding is
// part of the contract with proof consumers.
func Uint64ToBytes(val uint64) []byte {
	bytes := make([]byte, 8)
	binary.BigEndian.PutUint64(bytes, val)
	return bytes
}

// BytesToUint64 decodes 8 big-endian bytes.
func BytesToUint64(data []byte) uint64 {
	if len(data) < 8 {
		panic("BytesToUint64: byte slice too short")
	}
	return binary.BigEndian.Uint64(data)
}
