package contextutil

import "context"

// HeaderRequestID is the header used to propagate request ids between client and server.
const HeaderRequestID = "X-Request-ID"

// WithRequestID injects a request id into the context
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID reads the request id from the context, "" when absent
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
