package imt

import "github.com/zkindex/imt/common"

// SiblingPath is a node's authentication path: one entry per tree level,
// ordered leaf-adjacent first. A nil entry marks a sibling position whose
// subtree was never populated; the digest combiner skips such positions
// instead of substituting a zero constant, and replaying verifiers must
// mirror that rule. Paths render to JSON with null for absent entries.
type SiblingPath []*common.Hash

// MutationKind discriminates the proof bundle variants.
type MutationKind uint8

const (
	// MutationInsert tags bundles produced by Insert.
	MutationInsert MutationKind = iota
	// MutationUpdate tags bundles produced by Update.
	MutationUpdate
)

// String returns the string representation of MutationKind.
func (k MutationKind) String() string {
	switch k {
	case MutationInsert:
		return "Insert"
	case MutationUpdate:
		return "Update"
	default:
		return "Unknown"
	}
}

// Mutation is the common face of the proof bundles emitted by Insert and
// Update. Bundles are plain data, fully detached from the tree that produced
// them; they carry everything a verifier needs to replay the transition from
// the pre-state root.
type Mutation interface {
	Kind() MutationKind
}

// InsertMutation proves one insertion. Replay runs in field order: starting
// from OldRoot and OldSize, check LowNullifier against LowNullifierPath,
// apply the chain splice, check the appended Node against NodePath, and
// reach the post-state root through UpdatedLowNullifierPath.
type InsertMutation[K Key[K], V Value] struct {
	OldRoot common.Hash `json:"oldRoot"`
	OldSize uint64      `json:"oldSize"`

	// LowNullifier is the chain predecessor as it stood before its NextKey
	// splice, proven under OldRoot by LowNullifierPath.
	LowNullifier     Node[K, V]  `json:"lowNullifier"`
	LowNullifierPath SiblingPath `json:"lowNullifierPath"`

	// Node is the appended entry; NodePath authenticates it in the
	// post-state tree.
	Node     Node[K, V]  `json:"node"`
	NodePath SiblingPath `json:"nodePath"`

	// UpdatedLowNullifierPath re-proves the predecessor after both leaf
	// writes. It differs from LowNullifierPath wherever the new leaf sits in
	// the predecessor's sibling positions.
	UpdatedLowNullifierPath SiblingPath `json:"updatedLowNullifierPath"`
}

// Kind returns MutationInsert.
func (*InsertMutation[K, V]) Kind() MutationKind { return MutationInsert }

// UpdateMutation proves one value change. Node is the entry after the write;
// NewValue repeats the payload so verifiers need not decode it out of Node.
type UpdateMutation[K Key[K], V Value] struct {
	OldRoot  common.Hash `json:"oldRoot"`
	Size     uint64      `json:"size"`
	Node     Node[K, V]  `json:"node"`
	NodePath SiblingPath `json:"nodePath"`
	NewValue V           `json:"newValue"`
}

// Kind returns MutationUpdate.
func (*UpdateMutation[K, V]) Kind() MutationKind { return MutationUpdate }
