// Package imt implements an indexed Merkle tree: an in-memory authenticated
// key/value map whose mutations each yield a compact proof bundle suitable
// for replay inside a succinct-proof circuit.
//
// Every live entry is both a leaf of a fixed-depth binary Merkle tree and a
// link of a chain sorted by key: each node records the smallest live key
// greater than its own, and a sentinel node under the zero key anchors the
// chain. The chain is what makes non-membership provable with a single leaf:
// a key is absent exactly when some node's span (Key, NextKey) covers it.
//
// Leaves occupy positions in insertion order, so the tree grows densely from
// position zero. Digests live in a sparse per-level cache. A position that
// was never written is distinct from one holding a zero digest, and a parent
// over a single populated child is the hash of that child alone. The root
// additionally binds the current node count, so two trees whose occupied
// leaves agree still produce different roots when their insertion histories
// differ in length.
//
// Insert and Update return mutation bundles carrying the prior root and size
// plus the sibling paths a verifier needs to replay the transition. Inserts
// carry three paths: the chain predecessor before and after its NextKey
// splice, and the appended node's own path.
//
// A Tree is not safe for concurrent use; callers serialize access.
package imt
