//go:generate go run go.uber.org/mock/mockgen -source=directory.go -destination=../mocks/mock_directory.go -package=mocks
package directory

import (
	"context"

	"circular-lab/domain"
)

// User is the directory-side view of an account. The circular core only
// needs identity, display name and role.
type User struct {
	ID   string
	Name string
	Role domain.Role
}

// IDirectory is the external user-directory collaborator. Lookups may fail
// transiently; callers own the retry policy.
type IDirectory interface {
	LookupUsersByRole(ctx context.Context, role domain.Role) ([]string, error)
	LookupUserName(ctx context.Context, userID string) (string, error)
}
