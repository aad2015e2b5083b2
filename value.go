package imt

import "github.com/zkindex/imt/common"

// Value constrains leaf payload types. The zero value must be meaningful: it
// is the payload the sentinel node carries from construction. Like keys,
// payload bytes enter hash preimages, so their layout is part of the
// contract with proof consumers.
type Value interface {
	// Bytes returns the payload's byte form.
	Bytes() []byte
}

// Uint64Value carries unsigned 64-bit payloads.
type Uint64Value uint64

// Bytes returns the 8-byte big-endian form of the value.
func (v Uint64Value) Bytes() []byte { return common.Uint64ToBytes(uint64(v)) }

// HashValue carries 32-byte digest payloads.
type HashValue common.Hash

// Bytes returns the 32-byte form of the value.
func (v HashValue) Bytes() []byte { return v[:] }

// Hex returns the hexadecimal form of the value.
func (v HashValue) Hex() string { return common.Hash(v).Hex() }

// MarshalJSON renders the value as a 0x-prefixed hex string.
func (v HashValue) MarshalJSON() ([]byte, error) {
	return common.Hash(v).MarshalJSON()
}

// UnmarshalJSON parses a 0x-prefixed hex string.
func (v *HashValue) UnmarshalJSON(data []byte) error {
	var h common.Hash
	if err := h.UnmarshalJSON(data); err != nil {
		return err
	}
	*v = HashValue(h)
	return nil
}

// RawValue carries arbitrary bytes. The zero value encodes to nothing.
// Deployments whose circuits expect a fixed leaf layout must keep payloads
// at one width.
type RawValue []byte

// Bytes returns the payload bytes.
func (v RawValue) Bytes() []byte { return v }
