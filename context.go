package wae

import "context"

// FromContext returns the executor running the root computation ctx was
// passed to.
func FromContext(ctx context.Context) (*Executor, bool) {
	t := taskFromContext(ctx)
	if t == nil {
		return nil, false
	}
	return t.exec, true
}

// CreateWindow opens a window on the executor bound to ctx.
func CreateWindow(ctx context.Context, attrs WindowAttributes) (NativeWindow, error) {
	e, ok := FromContext(ctx)
	if !ok {
		return nil, ErrNoExecutor
	}
	return e.CreateWindow(attrs)
}

// RegisterWindow registers h on the executor bound to ctx.
func RegisterWindow(ctx context.Context, h WindowHandler) error {
	e, ok := FromContext(ctx)
	if !ok {
		return ErrNoExecutor
	}
	return e.Register(h)
}

// UnregisterWindow unregisters id on the executor bound to ctx.
func UnregisterWindow(ctx context.Context, id WindowID) error {
	e, ok := FromContext(ctx)
	if !ok {
		return ErrNoExecutor
	}
	e.Unregister(id)
	return nil
}
