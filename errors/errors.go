package errors

import "fmt"

var (
	ErrNotFound             = fmt.Errorf("circular not found")
	ErrNotOwner             = fmt.Errorf("only the sender can archive this circular")
	ErrAlreadyArchived      = fmt.Errorf("circular is already archived")
	ErrNotRecipient         = fmt.Errorf("user is not a recipient of this circular")
	ErrNoRecipients         = fmt.Errorf("no recipients after resolution")
	ErrAccessDenied         = fmt.Errorf("circular not accessible by this user")
	ErrDirectoryUnavailable = fmt.Errorf("user directory unavailable")
	ErrWorkerPanic          = fmt.Errorf("worker panic")
)

// ValidationError carries the offending field so the API layer can report
// which input was rejected. Never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PermissionError is returned when a sender role targets a group outside its
// permission matrix row. Role and Group stay plain strings so this package
// has no dependency on the domain package.
type PermissionError struct {
	Role  string
	Group string
}

func (e PermissionError) Error() string {
	if e.Group == "" {
		return fmt.Sprintf("role %s cannot issue circulars", e.Role)
	}
	return fmt.Sprintf("role %s cannot send circulars to %s", e.Role, e.Group)
}
