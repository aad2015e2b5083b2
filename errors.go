package imt

import "errors"

// Expected failure modes callers branch on with errors.Is. The tree never
// mutates state on the way to one of these.
var (
	// ErrTreeFull rejects inserts once all 2^depth - 1 insertable slots are taken.
	ErrTreeFull = errors.New("tree full")
	// ErrKeyExists rejects inserts of a registered key. The zero key is
	// registered to the sentinel from construction.
	ErrKeyExists = errors.New("key exists")
	// ErrKeyNotFound rejects updates and path reads of unregistered keys.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidDepth rejects depths outside the supported 1..63 range.
	ErrInvalidDepth = errors.New("invalid depth")
)
