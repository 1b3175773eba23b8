package auth

import (
	"context"
)

type contextKey string

const viewerContextKey contextKey = "auth_viewer"

// NewContextWithViewer returns a child context carrying the viewer.
func NewContextWithViewer(ctx context.Context, viewer *Viewer) context.Context {
	return context.WithValue(ctx, viewerContextKey, viewer)
}

// ViewerFromContext extracts the viewer set by the auth middleware.
// The second return value is false for anonymous requests.
func ViewerFromContext(ctx context.Context) (*Viewer, bool) {
	viewer, ok := ctx.Value(viewerContextKey).(*Viewer)
	return viewer, ok
}
