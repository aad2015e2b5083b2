package imt_test

import (
	"fmt"

	"github.com/zkindex/imt"
)

func ExampleTree() {
	tree, err := imt.New[imt.Uint64Key, imt.Uint64Value](imt.Config{Depth: 8})
	if err != nil {
		panic(err)
	}

	for _, key := range []imt.Uint64Key{5, 10} {
		if _, err := tree.Insert(key, imt.Uint64Value(key)*100); err != nil {
			panic(err)
		}
	}

	// Inserting 7 splices it between 5 and 10.
	mutation, err := tree.Insert(7, 700)
	if err != nil {
		panic(err)
	}

	fmt.Printf("size: %d\n", tree.Size())
	fmt.Printf("spliced: %v -> %v -> %v\n",
		mutation.LowNullifier.Key, mutation.Node.Key, mutation.Node.NextKey)

	successor, _ := tree.Get(5)
	fmt.Printf("successor of 5: %v\n", successor.NextKey)

	// Output:
	// size: 3
	// spliced: 5 -> 7 -> 10
	// successor of 5: 7
}
