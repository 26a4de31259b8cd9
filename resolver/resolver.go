//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=../mocks/mock_resolver.go -package=mocks
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"circular-lab/directory"
	"circular-lab/domain"
	"circular-lab/errors"

	"github.com/cenkalti/backoff/v5"
	"github.com/samber/lo"
)

type IResolver interface {
	Resolve(ctx context.Context, groups []domain.GroupTag, senderID string) ([]string, error)
}

// Resolver expands group tags into a concrete, deduplicated recipient set.
// Directory failures are treated as transient: each role lookup is retried
// with exponential backoff up to maxTries before the whole resolution is
// surfaced as ErrDirectoryUnavailable. Resolution is all-or-nothing.
type Resolver struct {
	log           *slog.Logger
	dir           directory.IDirectory
	maxTries      uint
	lookupTimeout time.Duration
}

func NewResolver(log *slog.Logger, dir directory.IDirectory, maxTries uint, lookupTimeout time.Duration) *Resolver {
	return &Resolver{log: log, dir: dir, maxTries: maxTries, lookupTimeout: lookupTimeout}
}

// Resolve normalizes the selection, unions the per-group lookups and
// excludes the sender. ALL dominates: if present, the result is exactly
// STUDENTS ∪ PROFESSORS no matter what else was selected, so a raw request
// cannot bypass the UI's mutual-exclusivity rule.
func (r *Resolver) Resolve(ctx context.Context, groups []domain.GroupTag, senderID string) ([]string, error) {
	roles := rolesFor(normalize(groups))

	seen := make(map[string]struct{})
	var recipients []string
	for _, role := range roles {
		ids, err := r.lookupWithRetry(ctx, role)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if id == senderID {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			recipients = append(recipients, id)
		}
	}

	if len(recipients) == 0 {
		return nil, errors.ErrNoRecipients
	}
	return recipients, nil
}

func (r *Resolver) lookupWithRetry(ctx context.Context, role domain.Role) ([]string, error) {
	operation := func() ([]string, error) {
		lookupCtx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
		defer cancel()
		ids, err := r.dir.LookupUsersByRole(lookupCtx, role)
		if err != nil {
			r.log.Warn("Directory lookup failed, will retry", "role", role, "err", err)
			return nil, err
		}
		return ids, nil
	}

	ids, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(r.maxTries),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDirectoryUnavailable, err)
	}
	return ids, nil
}

// normalize collapses the selection: ALL swallows every other tag.
func normalize(groups []domain.GroupTag) []domain.GroupTag {
	if lo.Contains(groups, domain.GroupAll) {
		return []domain.GroupTag{domain.GroupAll}
	}
	return lo.Uniq(groups)
}

// rolesFor maps the normalized selection to the directory roles to fetch.
func rolesFor(groups []domain.GroupTag) []domain.Role {
	var roles []domain.Role
	for _, g := range groups {
		if g == domain.GroupAll {
			roles = append(roles, domain.RoleStudent, domain.RoleProfessor)
			continue
		}
		if role, ok := g.MemberRole(); ok {
			roles = append(roles, role)
		}
	}
	return lo.Uniq(roles)
}
