package audit

import "context"

type contextKey string

const requestIDKey contextKey = "requestID"

// ContextWithRequestID returns a copy of ctx carrying the request id that
// recorded events are tagged with.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom retrieves the request id from ctx, or "" when unset.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
