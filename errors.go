package wae

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is matched by the error Register returns for an id
	// which is already registered.
	ErrDuplicateID = errors.New("wae: window id already registered")

	// ErrAlreadySet is returned by Signal.Set when the slot holds a value
	// which was not consumed yet.
	ErrAlreadySet = errors.New("wae: signal already set")

	// ErrWaitInProgress is returned by Signal.Wait when another Wait on the
	// same Signal is suspended.
	ErrWaitInProgress = errors.New("wae: signal already has a waiter")

	// ErrNotRoot is returned by Signal.Wait when it would suspend outside the
	// root computation, typically from a window handler.
	ErrNotRoot = errors.New("wae: only the root computation can suspend")

	// ErrNoExecutor is returned when a context which does not come from a
	// running Executor is used to suspend or reach the executor.
	ErrNoExecutor = errors.New("wae: context is not bound to a running executor")

	// ErrRunning is returned by Run when the executor is already running.
	ErrRunning = errors.New("wae: executor is already running")

	// ErrSizeWriterGone is returned when using a nil InnerSizeWriter.
	ErrSizeWriterGone = errors.New("wae: inner size writer is no longer valid")
)

// DuplicateIDError is returned by Register. The binding which caused the
// conflict is left in place.
type DuplicateIDError struct {
	ID WindowID
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("wae: window %d already registered", e.ID)
}

func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}
