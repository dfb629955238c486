package tracker

import "errors"

var (
	// ErrNetwork marks transport or RPC failures of a collaborator.
	// The tracker fails the session on it without retrying.
	ErrNetwork = errors.New("network error")

	// ErrMessageNotFound means the bridge message is not available yet.
	// The tracker keeps polling.
	ErrMessageNotFound = errors.New("bridge message not found")

	// ErrMissingCollaborator is returned by Start when a required lookup is nil.
	ErrMissingCollaborator = errors.New("missing tracker collaborator")

	// errStaleSession marks a result that arrived after its session was
	// superseded. It is never surfaced.
	errStaleSession = errors.New("session superseded")
)
