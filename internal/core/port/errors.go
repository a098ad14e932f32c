package port

import "errors"

// Sentinel errors returned by usecases and repositories. Handlers map
// them to HTTP statuses with errors.Is; repositories and usecases wrap
// them with fmt.Errorf("...: %w", ...) to add detail.
var (
	// ErrValidation marks malformed or missing input. Reported before
	// any mutation.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound marks a referenced campaign, distribution or profile
	// that is absent or not in the expected state.
	ErrNotFound = errors.New("not found")

	// ErrNotOwner marks a resource that exists but does not belong to
	// the calling principal.
	ErrNotOwner = errors.New("not owner")

	// ErrNoSupport marks a campaign with no support allocation row.
	ErrNoSupport = errors.New("no support associated with campaign")

	// ErrStockExceeded marks a distribution report that would push the
	// distributed quantity past the allocated quantity. Detected inside
	// the transaction; nothing is committed.
	ErrStockExceeded = errors.New("exceeds allocated stock")

	// ErrAlreadyDecided marks a second accept for a (campaign,
	// distributor) pair that already holds an active or completed
	// distribution.
	ErrAlreadyDecided = errors.New("campaign already answered")
)
