package imt

import (
	"fmt"

	"github.com/zkindex/imt/common"
)

// MaxDepth bounds Config.Depth so capacity arithmetic stays inside uint64.
const MaxDepth = 63

// Config controls tree construction.
type Config struct {
	// Depth fixes the number of levels below the top digest. Capacity is
	// 2^Depth - 1 insertable nodes beside the sentinel. Valid range 1..63.
	Depth uint8
	// Hasher supplies the digest function. Nil selects KeccakHasher.
	Hasher Hasher
	// Logger receives construction and mutation logs. Nil discards them.
	Logger Logger
}

// Tree is an in-memory indexed Merkle tree keyed by K with V payloads. See
// the package documentation for the structure. Not safe for concurrent use.
type Tree[K Key[K], V Value] struct {
	depth  uint8
	hasher Hasher
	logger Logger

	root common.Hash
	size uint64

	nodes map[K]*Node[K, V]
	order []K // index -> key, append-only

	// hashes is the sparse digest cache: level -> position -> digest. Level
	// depth holds leaves, level 0 the single top digest. A missing entry
	// means the position was never written, which the combiner treats
	// differently from a zero digest.
	hashes map[uint8]map[uint64]common.Hash

	metrics *Metrics
}

// New builds an empty tree. The sentinel node is registered at index 0 under
// the zero key and the initial root is computed over it at size 0, so even
// an empty tree has a nonzero root.
func New[K Key[K], V Value](cfg Config) (*Tree[K, V], error) {
	if cfg.Depth < 1 || cfg.Depth > MaxDepth {
		return nil, fmt.Errorf("depth %d: %w", cfg.Depth, ErrInvalidDepth)
	}
	if cfg.Hasher == nil {
		cfg.Hasher = KeccakHasher{}
	}
	if cfg.Logger == nil {
		cfg.Logger = NewNopLogger()
	}

	t := &Tree[K, V]{
		depth:   cfg.Depth,
		hasher:  cfg.Hasher,
		logger:  cfg.Logger,
		nodes:   make(map[K]*Node[K, V]),
		hashes:  make(map[uint8]map[uint64]common.Hash),
		metrics: NewMetrics(),
	}

	var sentinel Node[K, V]
	t.nodes[sentinel.Key] = &sentinel
	t.order = append(t.order, sentinel.Key)
	t.refreshPath(sentinel.Key)

	t.logger.Info("tree initialized",
		"depth", t.depth, "capacity", t.Capacity(), "root", t.root.ShortString())
	return t, nil
}

// Depth returns the number of levels below the top digest.
func (t *Tree[K, V]) Depth() uint8 { return t.depth }

// Size returns the number of inserted nodes, excluding the sentinel.
func (t *Tree[K, V]) Size() uint64 { return t.size }

// Capacity returns the number of insertable slots, 2^depth - 1.
func (t *Tree[K, V]) Capacity() uint64 { return (uint64(1) << t.depth) - 1 }

// Root returns the current root: the top digest bound to the current size.
func (t *Tree[K, V]) Root() common.Hash { return t.root }

// Metrics returns the tree's operation counters.
func (t *Tree[K, V]) Metrics() *Metrics { return t.metrics }

// Contains reports whether key is registered, the sentinel's zero key included.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.nodes[key]
	return ok
}

// Get returns a snapshot of the node registered under key.
func (t *Tree[K, V]) Get(key K) (Node[K, V], bool) {
	n, ok := t.nodes[key]
	if !ok {
		return Node[K, V]{}, false
	}
	return *n, true
}

// GetByIndex returns a snapshot of the node at the given leaf index. Index 0
// is the sentinel; indices run densely up to Size.
func (t *Tree[K, V]) GetByIndex(index uint64) (Node[K, V], bool) {
	if index >= uint64(len(t.order)) {
		return Node[K, V]{}, false
	}
	return *t.mustNode(t.order[index]), true
}

// LowNullifier returns a snapshot of the chain predecessor of key, the node
// a non-membership proof for key rests on. Keys already registered have no
// predecessor and report ErrKeyExists.
func (t *Tree[K, V]) LowNullifier(key K) (Node[K, V], error) {
	if _, ok := t.nodes[key]; ok {
		return Node[K, V]{}, fmt.Errorf("low nullifier of registered key: %w", ErrKeyExists)
	}
	return *t.lowNullifier(key), nil
}

// Path returns the current sibling path of the node registered under key,
// ordered leaf-adjacent first, without modifying the tree.
func (t *Tree[K, V]) Path(key K) (SiblingPath, error) {
	n, ok := t.nodes[key]
	if !ok {
		return nil, fmt.Errorf("path: %w", ErrKeyNotFound)
	}
	return t.siblingPath(n.Index), nil
}

// Insert registers value under key, splices the key into the chain, and
// returns the bundle proving the transition. The zero key is reserved by the
// sentinel and reports ErrKeyExists like any other occupied key. On error
// the tree is unchanged.
//
// The bundle is assembled in replay order: the predecessor's path is
// captured before its NextKey splice, the new node's path comes from the
// refresh that appends it, and the predecessor's path is captured once more
// afterwards. Both refreshes bind the incremented size, so the emitted paths
// prove membership under the post-state root.
func (t *Tree[K, V]) Insert(key K, value V) (*InsertMutation[K, V], error) {
	if t.size == t.Capacity() {
		return nil, fmt.Errorf("insert: size %d: %w", t.size, ErrTreeFull)
	}
	if _, ok := t.nodes[key]; ok {
		return nil, fmt.Errorf("insert: %w", ErrKeyExists)
	}

	oldRoot := t.root
	oldSize := t.size
	t.size++

	ln := t.lowNullifier(key)
	lnBefore := *ln
	lnPath := t.siblingPath(ln.Index)

	ln.NextKey = key
	t.refreshPath(ln.Key)

	node := Node[K, V]{
		Index:   t.size,
		Key:     key,
		Value:   value,
		NextKey: lnBefore.NextKey,
	}
	t.nodes[key] = &node
	t.order = append(t.order, key)
	nodePath := t.refreshPath(key)

	lnPathUpdated := t.siblingPath(ln.Index)

	t.metrics.RecordInsert()
	t.logger.Debug("insert",
		"key", node.Key, "index", node.Index, "size", t.size, "root", t.root.ShortString())

	return &InsertMutation[K, V]{
		OldRoot:                 oldRoot,
		OldSize:                 oldSize,
		LowNullifier:            lnBefore,
		LowNullifierPath:        lnPath,
		Node:                    node,
		NodePath:                nodePath,
		UpdatedLowNullifierPath: lnPathUpdated,
	}, nil
}

// Update replaces the value registered under key and returns the bundle
// proving the change. The chain and size are untouched; only the leaf digest
// and its ancestors move. On error the tree is unchanged.
func (t *Tree[K, V]) Update(key K, value V) (*UpdateMutation[K, V], error) {
	n, ok := t.nodes[key]
	if !ok {
		return nil, fmt.Errorf("update: %w", ErrKeyNotFound)
	}

	oldRoot := t.root

	n.Value = value
	path := t.refreshPath(key)

	t.metrics.RecordUpdate()
	t.logger.Debug("update",
		"key", n.Key, "index", n.Index, "size", t.size, "root", t.root.ShortString())

	return &UpdateMutation[K, V]{
		OldRoot:  oldRoot,
		Size:     t.size,
		Node:     *n,
		NodePath: path,
		NewValue: value,
	}, nil
}

// lowNullifier scans the registry for the chain predecessor of key. The
// sentinel guarantees one exists for every unregistered nonzero key; a miss
// means the chain is corrupt.
func (t *Tree[K, V]) lowNullifier(key K) *Node[K, V] {
	for _, n := range t.nodes {
		if n.IsLowNullifierOf(key) {
			return n
		}
	}
	panic("imt: no low nullifier, chain is corrupt")
}

// mustNode returns the live entry for key, panicking if the registry and the
// structures referring to it have diverged.
func (t *Tree[K, V]) mustNode(key K) *Node[K, V] {
	n, ok := t.nodes[key]
	if !ok {
		panic(fmt.Sprintf("imt: registry misses key %v", key))
	}
	return n
}

// refreshPath recomputes the leaf digest of key's node and every ancestor up
// to the top, then rebinds the root to the current size. It returns the
// sibling path observed during the climb, leaf-adjacent first.
func (t *Tree[K, V]) refreshPath(key K) SiblingPath {
	n := t.mustNode(key)

	index := n.Index
	t.metrics.RecordHash()
	digest := t.hasher.Sum(n.preimage())
	t.setHash(t.depth, index, digest)

	path := make(SiblingPath, 0, t.depth)
	for level := t.depth; level > 0; level-- {
		siblingIndex := index + 1
		if index%2 == 1 {
			siblingIndex = index - 1
		}

		var sibling *common.Hash
		if s, ok := t.getHash(level, siblingIndex); ok {
			sibling = &s
		}
		t.metrics.RecordSibling(sibling != nil)
		path = append(path, sibling)

		if index%2 == 0 {
			digest = t.combine(&digest, sibling)
		} else {
			digest = t.combine(sibling, &digest)
		}

		index /= 2
		t.setHash(level-1, index, digest)
	}

	t.rebindRoot()
	return path
}

// siblingPath reads the current sibling path of the leaf at index without
// touching the cache.
func (t *Tree[K, V]) siblingPath(index uint64) SiblingPath {
	path := make(SiblingPath, 0, t.depth)
	for level := t.depth; level > 0; level-- {
		siblingIndex := index + 1
		if index%2 == 1 {
			siblingIndex = index - 1
		}
		if s, ok := t.getHash(level, siblingIndex); ok {
			path = append(path, &s)
		} else {
			path = append(path, nil)
		}
		index /= 2
	}
	t.metrics.RecordPathRead()
	return path
}

// combine hashes two child digests into their parent. A child position that
// was never populated contributes nothing: the present child is hashed
// alone, keeping never-written regions distinct from zero-valued digests.
func (t *Tree[K, V]) combine(left, right *common.Hash) common.Hash {
	buf := make([]byte, 0, 2*common.HashLength)
	if left != nil {
		buf = append(buf, left.Bytes()...)
	}
	if right != nil {
		buf = append(buf, right.Bytes()...)
	}
	if len(buf) == 0 {
		panic("imt: combining two empty children")
	}
	t.metrics.RecordHash()
	return t.hasher.Sum(buf)
}

// rebindRoot recomputes the root from the top digest and the current size.
// Binding the size keeps trees with identical occupied leaves but different
// insertion counts from colliding.
func (t *Tree[K, V]) rebindRoot() {
	top, ok := t.getHash(0, 0)
	if !ok {
		panic("imt: top digest missing")
	}
	buf := make([]byte, 0, common.HashLength+8)
	buf = append(buf, top.Bytes()...)
	buf = append(buf, common.Uint64ToBytes(t.size)...)
	t.metrics.RecordHash()
	t.root = t.hasher.Sum(buf)
}

func (t *Tree[K, V]) getHash(level uint8, index uint64) (common.Hash, bool) {
	h, ok := t.hashes[level][index]
	return h, ok
}

func (t *Tree[K, V]) setHash(level uint8, index uint64, digest common.Hash) {
	m, ok := t.hashes[level]
	if !ok {
		m = make(map[uint64]common.Hash)
		t.hashes[level] = m
	}
	m[index] = digest
}
