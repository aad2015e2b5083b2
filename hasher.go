package imt

import (
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/zkindex/imt/common"
)

// Hasher provides the digest function the tree is built from.
// Implementations MUST be pure: the same input always yields the same
// digest, with no state carried between calls. The digest algorithm is part
// of the contract with proof consumers and cannot change over a tree's life.
type Hasher interface {
	// Sum hashes arbitrary input to a 32-byte digest.
	Sum(input []byte) common.Hash
}

// KeccakHasher implements Hasher with legacy Keccak-256, the variant used by
// Ethereum. It is the default when Config.Hasher is nil.
type KeccakHasher struct{}

func (KeccakHasher) Sum(input []byte) common.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(input)
	return common.BytesToHash(h.Sum(nil))
}

// Blake2bHasher implements Hasher with BLAKE2b-256.
type Blake2bHasher struct{}

func (Blake2bHasher) Sum(input []byte) common.Hash {
	return common.Hash(blake2b.Sum256(input))
}

// Blake3Hasher implements Hasher with BLAKE3.
type Blake3Hasher struct{}

func (Blake3Hasher) Sum(input []byte) common.Hash {
	return common.Hash(blake3.Sum256(input))
}
