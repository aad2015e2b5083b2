package imt

import "github.com/zkindex/imt/common"

// Node is one entry of the tree: a leaf of the Merkle tree and a link of the
// key-ordered chain overlaid on it. NextKey names the smallest live key
// greater than Key, or the zero key when no greater key exists. Index is the
// leaf position, assigned in insertion order and never reused; index 0
// belongs to the sentinel.
type Node[K Key[K], V Value] struct {
	Index   uint64 `json:"index"`
	Key     K      `json:"key"`
	Value   V      `json:"value"`
	NextKey K      `json:"nextKey"`
}

// IsLowNullifierOf reports whether n is the chain predecessor of key: the
// node whose span (Key, NextKey) covers it, the upper end open when n
// terminates the chain. A node is not its own predecessor.
func (n Node[K, V]) IsLowNullifierOf(key K) bool {
	var sentinel K
	if !n.Key.Less(key) {
		return false
	}
	return key.Less(n.NextKey) || n.NextKey == sentinel
}

// preimage returns the canonical byte layout hashed into the leaf digest:
// the index as 8 big-endian bytes, then the key, value, and next-key forms.
func (n Node[K, V]) preimage() []byte {
	key := n.Key.Bytes()
	value := n.Value.Bytes()
	next := n.NextKey.Bytes()
	buf := make([]byte, 0, 8+len(key)+len(value)+len(next))
	buf = append(buf, common.Uint64ToBytes(n.Index)...)
	buf = append(buf, key...)
	buf = append(buf, value...)
	buf = append(buf, next...)
	return buf
}
