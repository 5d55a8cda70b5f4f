// Package identifier generates the opaque ids used as primary keys for every
// entity.
package identifier

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new process-unique identifier.
type Generator func() string

// New returns a UUIDv7: a millisecond timestamp followed by random bits, so
// ids sort by creation time and collisions are negligible.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Sequence returns a deterministic Generator producing prefix-1, prefix-2, ...
func Sequence(prefix string) Generator {
	var n atomic.Int64
	return func() string {
		return prefix + "-" + strconv.FormatInt(n.Add(1), 10)
	}
}
