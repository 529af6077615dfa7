package scope

import "sync/atomic"

var globalIDCounter uint64

// nextID returns the next unique ID for an owner or effect.
func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
