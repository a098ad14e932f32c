package port

import (
	"context"
	"io"
)

// VisualStore is the storage backend for campaign visuals. The engine
// only needs to confirm a visual exists before allocating; upload
// handling stores through Save and retrieval is served elsewhere.
type VisualStore interface {
	// Exists reports whether a stored visual with the given name is
	// present on the backend.
	Exists(ctx context.Context, name string) (bool, error)

	// Save stores the content under a fresh name with the given
	// extension and returns that name.
	Save(ctx context.Context, r io.Reader, ext string) (string, error)
}
