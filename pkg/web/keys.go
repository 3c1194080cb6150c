package web

import "context"

// requestIDKey is the private context key under which RequestIDInjector
// stores the request correlation ID.
type requestIDKey struct{}

// WithRequestID returns a child context carrying the request correlation ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID reports the request correlation ID stored in ctx, if any.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
