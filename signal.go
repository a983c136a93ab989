package wae

import "context"

// Signal hands one value from a synchronous event handler to the root
// computation suspended on it. The zero Signal is empty and ready for use.
//
// Usage, with close being a Signal[struct{}] field of a window handler:
//
//	func (w *myWindow) OnCloseRequested() error {
//		_ = w.close.Set(struct{}{})
//		return nil
//	}
//
//	// inside the root computation
//	if _, err := w.close.Wait(ctx); err != nil {
//		return err
//	}
//
// A Signal must only be used from handlers and from the root computation of
// the executor running them. Once Wait has consumed the value the Signal is
// empty again and can be reused.
type Signal[T any] struct {
	v      T
	filled bool
	waiter *task
}

// Set stores v. If the root computation is suspended in Wait it is woken and
// resumes on the executor's next poll. Fails with ErrAlreadySet, keeping the
// previous value, if a value is already held.
func (s *Signal[T]) Set(v T) error {
	if s.filled {
		return ErrAlreadySet
	}
	s.v = v
	s.filled = true
	if s.waiter != nil {
		s.waiter.wake()
	}
	return nil
}

// Wait returns the value stored by Set, consuming it. If no value is held it
// suspends the root computation until one is.
//
// ctx must be the context passed to the root computation, or derived from
// it. Wait fails with ErrWaitInProgress if another Wait is suspended on s,
// with ErrNotRoot if it would suspend from a window handler, and with the
// context's error if the executor stops while waiting.
func (s *Signal[T]) Wait(ctx context.Context) (T, error) {
	var zero T
	if s.waiter != nil {
		return zero, ErrWaitInProgress
	}
	if s.filled {
		return s.take(), nil
	}

	t := taskFromContext(ctx)
	if t == nil {
		return zero, ErrNoExecutor
	}
	s.waiter = t
	defer func() { s.waiter = nil }()

	for !s.filled {
		if err := t.park(); err != nil {
			return zero, err
		}
	}
	return s.take(), nil
}

// IsSet reports whether s holds a value not yet consumed by Wait.
func (s *Signal[T]) IsSet() bool {
	return s.filled
}

func (s *Signal[T]) take() T {
	v := s.v
	var zero T
	s.v = zero
	s.filled = false
	return v
}
