package imt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHasherKnownVectors pins each hasher to the published digest of the
// empty input, guarding the algorithm selection behind the interface.
func TestHasherKnownVectors(t *testing.T) {
	cases := []struct {
		name   string
		hasher Hasher
		want   string
	}{
		{"keccak", KeccakHasher{}, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"blake2b", Blake2bHasher{}, "0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
		{"blake3", Blake3Hasher{}, "0xaf1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.hasher.Sum(nil).Hex())
			assert.Equal(t, tc.want, tc.hasher.Sum([]byte{}).Hex(), "nil and empty input must agree")
		})
	}
}

// TestHasherDeterminism validates that every hasher is a pure function of
// its input.
func TestHasherDeterminism(t *testing.T) {
	input := []byte("indexed merkle tree")
	for _, h := range []Hasher{KeccakHasher{}, Blake2bHasher{}, Blake3Hasher{}} {
		assert.Equal(t, h.Sum(input), h.Sum(input))
	}
}

// TestHashersDisagree validates that the three algorithms actually differ.
func TestHashersDisagree(t *testing.T) {
	input := []byte("indexed merkle tree")
	keccak := KeccakHasher{}.Sum(input)
	blake2 := Blake2bHasher{}.Sum(input)
	blake3 := Blake3Hasher{}.Sum(input)

	assert.NotEqual(t, keccak, blake2)
	assert.NotEqual(t, keccak, blake3)
	assert.NotEqual(t, blake2, blake3)
}

// TestDefaultHasherIsKeccak validates that a nil Config.Hasher selects
// Keccak-256.
func TestDefaultHasherIsKeccak(t *testing.T) {
	byDefault, err := New[Uint64Key, Uint64Value](Config{Depth: 4})
	require.NoError(t, err)
	explicit, err := New[Uint64Key, Uint64Value](Config{Depth: 4, Hasher: KeccakHasher{}})
	require.NoError(t, err)

	for _, k := range []Uint64Key{3, 8, 5} {
		_, err = byDefault.Insert(k, Uint64Value(uint64(k)*10))
		require.NoError(t, err)
		_, err = explicit.Insert(k, Uint64Value(uint64(k)*10))
		require.NoError(t, err)
	}
	assert.Equal(t, explicit.Root(), byDefault.Root())
}

// TestRootsDifferByHasher validates that the hash algorithm flows into every
// root.
func TestRootsDifferByHasher(t *testing.T) {
	hashers := []Hasher{KeccakHasher{}, Blake2bHasher{}, Blake3Hasher{}}
	roots := make([]string, len(hashers))
	for i, h := range hashers {
		tree, err := New[Uint64Key, Uint64Value](Config{Depth: 4, Hasher: h})
		require.NoError(t, err)
		_, err = tree.Insert(5, 50)
		require.NoError(t, err)
		roots[i] = tree.Root().Hex()
	}
	assert.NotEqual(t, roots[0], roots[1])
	assert.NotEqual(t, roots[0], roots[2])
	assert.NotEqual(t, roots[1], roots[2])
}
