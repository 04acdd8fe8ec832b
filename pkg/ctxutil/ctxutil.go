package ctxutil

import (
	"context"
)

type ctxKey string

const (
	editorKey    ctxKey = "editor"
	requestIDKey ctxKey = "request_id"
	sessionIDKey ctxKey = "session_id"
)

// WithEditor stores the authenticated editor name in the context.
func WithEditor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, editorKey, name)
}

// EditorFromCtx extracts the editor name from the context.
// Returns "" and false if the value is missing, blank, or of the wrong type.
func EditorFromCtx(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(editorKey).(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithSessionID stores the curation session ID in the context.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromCtx extracts the curation session ID from the context.
func SessionIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}
