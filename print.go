package imt

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// ToTree renders the occupied leaves and the key-ordered chain for debugging.
func (t *Tree[K, V]) ToTree() treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("root %s size %d/%d depth %d",
		t.root.ShortString(), t.size, t.Capacity(), t.depth))

	leaves := tree.AddBranch("leaves")
	for index := uint64(0); index < uint64(len(t.order)); index++ {
		n := t.mustNode(t.order[index])
		leaves.AddNode(fmt.Sprintf("%d: key=%v next=%v", n.Index, n.Key, n.NextKey))
	}

	chain := tree.AddBranch("chain")
	var zero K
	key := zero
	for {
		n := t.mustNode(key)
		chain.AddNode(fmt.Sprintf("%v -> %v", n.Key, n.NextKey))
		if n.NextKey == zero {
			break
		}
		key = n.NextKey
	}
	return tree
}

// String returns a one-line summary of the tree.
func (t *Tree[K, V]) String() string {
	return fmt.Sprintf("imt(depth=%d size=%d/%d root=%s)",
		t.depth, t.size, t.Capacity(), t.root.ShortString())
}

// Print writes the rendered tree to stdout.
func (t *Tree[K, V]) Print() {
	fmt.Println(t.ToTree().String())
}
