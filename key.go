package imt

import (
	"bytes"

	"github.com/holiman/uint256"

	"github.com/zkindex/imt/common"
)

// Key constrains the key types a tree can index. Keys are totally ordered
// through Less and encode to a fixed-width big-endian byte form that enters
// hash preimages; the width is part of the contract with proof consumers and
// must not vary between keys of one tree. The zero value is reserved: it is
// the sentinel's key and the "no successor" marker at the end of the chain.
type Key[K any] interface {
	comparable
	// Less reports whether the key orders strictly before other.
	Less(other K) bool
	// Bytes returns the key's fixed-width big-endian byte form.
	Bytes() []byte
}

// Uint64Key indexes a tree by unsigned 64-bit integers.
type Uint64Key uint64

func (k Uint64Key) Less(other Uint64Key) bool { return k < other }

// IsZero reports whether k is the zero key reserved by the sentinel.
func (k Uint64Key) IsZero() bool { return k == 0 }

// Bytes returns the 8-byte big-endian form of the key.
func (k Uint64Key) Bytes() []byte { return common.Uint64ToBytes(uint64(k)) }

// U256Key indexes a tree by 256-bit unsigned integers, the natural form for
// field-element nullifiers.
type U256Key uint256.Int

// NewU256Key copies v into a key.
func NewU256Key(v *uint256.Int) U256Key {
	return U256Key(*v)
}

// U256KeyFromUint64 builds a key from a small integer.
func U256KeyFromUint64(v uint64) U256Key {
	return U256Key(*uint256.NewInt(v))
}

func (k U256Key) Less(other U256Key) bool {
	a := uint256.Int(k)
	b := uint256.Int(other)
	return a.Lt(&b)
}

// IsZero reports whether k is the zero key reserved by the sentinel.
func (k U256Key) IsZero() bool {
	v := uint256.Int(k)
	return v.IsZero()
}

// Bytes returns the 32-byte big-endian form of the key.
func (k U256Key) Bytes() []byte {
	v := uint256.Int(k)
	b := v.Bytes32()
	return b[:]
}

// String renders the key as a decimal integer.
func (k U256Key) String() string {
	v := uint256.Int(k)
	return v.Dec()
}

// MarshalJSON renders the key as a 0x-prefixed hex quantity.
func (k U256Key) MarshalJSON() ([]byte, error) {
	v := uint256.Int(k)
	return v.MarshalJSON()
}

// UnmarshalJSON accepts hex and decimal quantities.
func (k *U256Key) UnmarshalJSON(data []byte) error {
	var v uint256.Int
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	*k = U256Key(v)
	return nil
}

// HashKey indexes a tree by 32-byte digests, ordered as big-endian integers.
type HashKey common.Hash

// HashKeyFromHex parses a 0x-prefixed hex string into a key.
func HashKeyFromHex(s string) HashKey {
	return HashKey(common.HexToHash(s))
}

func (k HashKey) Less(other HashKey) bool {
	return bytes.Compare(k[:], other[:]) < 0
}

// IsZero reports whether k is the zero key reserved by the sentinel.
func (k HashKey) IsZero() bool { return k == HashKey{} }

// Bytes returns the 32-byte form of the key.
func (k HashKey) Bytes() []byte { return k[:] }

// String returns the hexadecimal form of the key.
func (k HashKey) String() string { return common.Hash(k).Hex() }

// MarshalJSON renders the key as a 0x-prefixed hex string.
func (k HashKey) MarshalJSON() ([]byte, error) {
	return common.Hash(k).MarshalJSON()
}

// UnmarshalJSON parses a 0x-prefixed hex string.
func (k *HashKey) UnmarshalJSON(data []byte) error {
	var h common.Hash
	if err := h.UnmarshalJSON(data); err != nil {
		return err
	}
	*k = HashKey(h)
	return nil
}
