package store

import "context"

var contextKey = &struct{ string }{"store"}

// FromContext returns the store from a context.
func FromContext(ctx context.Context) Store {
	if s, ok := ctx.Value(contextKey).(Store); ok {
		return s
	}

	return nil
}

// WithContext returns a new context with the store attached.
func WithContext(ctx context.Context, s Store) context.Context {
	return context.WithValue(ctx, contextKey, s)
}
