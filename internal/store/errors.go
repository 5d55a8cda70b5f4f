package store

import (
	"errors"
	"fmt"
)

var ErrPersistence = errors.New("persistence failure")

// PersistenceError reports a failed load, save or delete of the durable
// record. In-memory state is unaffected. It matches ErrPersistence.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
