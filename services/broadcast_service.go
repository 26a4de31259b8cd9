//go:generate go run go.uber.org/mock/mockgen -source=broadcast_service.go -destination=../mocks/mock_broadcast_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"circular-lab/directory"
	"circular-lab/domain"
	"circular-lab/domain/event"
	ourerrors "circular-lab/errors"
	"circular-lab/moderation"
	"circular-lab/observability"
	"circular-lab/projection"
	"circular-lab/repositories"
	"circular-lab/resolver"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// searchLimit caps how many hits a single search surfaces before access
// filtering.
const searchLimit = 50

type IBroadcastService interface {
	Create(ctx context.Context, req CreateCircularRequest) (domain.Circular, error)
	Archive(ctx context.Context, circularID uuid.UUID, requesterID string) error
	MarkRead(ctx context.Context, circularID uuid.UUID, userID string) error
	IsRead(ctx context.Context, circularID uuid.UUID, userID string) (bool, error)
	Get(ctx context.Context, circularID uuid.UUID, viewerID string) (domain.Circular, error)
	ListSentBy(ctx context.Context, userID string) ([]domain.Circular, error)
	ListReceivedBy(ctx context.Context, userID string) ([]domain.Circular, error)
	ListActive(ctx context.Context) ([]domain.Circular, error)
	ReadStats(ctx context.Context, circularID uuid.UUID) (projection.ReadStats, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	UserStats(ctx context.Context, userID string) (projection.UserStats, error)
	Search(ctx context.Context, query, viewerID string) ([]domain.Circular, error)
	AllowedGroups(role domain.Role) []domain.GroupTag
}

// ISearchIndex is the slice of the search index the service needs.
type ISearchIndex interface {
	Index(c domain.Circular) error
	Search(ctx context.Context, query string, limit int) ([]uuid.UUID, error)
}

// CreateCircularRequest carries everything needed to issue a circular.
// Identity is explicit: the caller (HTTP middleware, test, tool) passes the
// sender in, the service never reads ambient state.
type CreateCircularRequest struct {
	Title      string            `validate:"required,min=1,max=200"`
	Body       string            `validate:"required,min=1,max=5000"`
	SenderID   string            `validate:"required"`
	SenderRole domain.Role       `validate:"required"`
	Groups     []domain.GroupTag `validate:"required,min=1"`
}

// BroadcastService orchestrates permission checks, recipient resolution,
// persistence and the read/sent query surface.
type BroadcastService struct {
	log        *slog.Logger
	repository repositories.ICircularRepository
	resolver   resolver.IResolver
	dir        directory.IDirectory
	moderator  *moderation.Moderator
	index      ISearchIndex
	monitoring *observability.MonitoringManager
	events     chan<- event.DomainEvent
}

func NewBroadcastService(
	log *slog.Logger,
	repository repositories.ICircularRepository,
	res resolver.IResolver,
	dir directory.IDirectory,
	moderator *moderation.Moderator,
	index ISearchIndex,
	monitoring *observability.MonitoringManager,
	events chan<- event.DomainEvent,
) *BroadcastService {
	return &BroadcastService{
		log:        log,
		repository: repository,
		resolver:   res,
		dir:        dir,
		moderator:  moderator,
		index:      index,
		monitoring: monitoring,
		events:     events,
	}
}

// Create validates, authorizes, resolves and persists a circular in that
// order. Any failure before persistence leaves no record behind; the only
// write is the single atomic Save.
func (s *BroadcastService) Create(ctx context.Context, req CreateCircularRequest) (domain.Circular, error) {
	// 1. Validate shape before touching any collaborator.
	if err := validateCreate(req); err != nil {
		return domain.Circular{}, err
	}

	// 2. Permission matrix: the role must be allowed to target every tag.
	if err := domain.ValidateSelection(req.SenderRole, req.Groups); err != nil {
		return domain.Circular{}, err
	}

	// 3. Resolve groups into the frozen recipient snapshot.
	recipients, err := s.resolver.Resolve(ctx, req.Groups, req.SenderID)
	if err != nil {
		return domain.Circular{}, err
	}

	// 4. Mask banned words. Masking never rejects.
	title := req.Title
	body := req.Body
	if s.moderator != nil {
		title = s.moderator.Mask(title)
		body = s.moderator.Mask(body)
	}

	// 5. Sender display name, best effort: the field is display-only, so a
	// directory hiccup here must not void an otherwise valid circular.
	senderName, err := s.dir.LookupUserName(ctx, req.SenderID)
	if err != nil {
		s.log.Warn("Sender name lookup failed", "sender", req.SenderID, "err", err)
		senderName = ""
	}

	// 6. Persist atomically.
	circular := domain.NewCircular(title, body, req.SenderID, senderName, req.SenderRole, req.Groups, recipients)
	if err := s.repository.Save(circular); err != nil {
		return domain.Circular{}, err
	}
	s.monitoring.IncrIssued()

	// 7. Index for search; the store stays the source of truth.
	if s.index != nil {
		if err := s.index.Index(circular); err != nil {
			s.log.Warn("Search indexing failed", "circular", circular.ID, "err", err)
		}
	}

	// 8. Notify recipients off the hot path.
	s.publish(event.CircularIssued{
		ID:         circular.ID,
		Title:      circular.Title,
		SenderName: circular.SenderName,
		SenderRole: string(circular.SenderRole),
		Recipients: circular.Recipients(),
		At:         circular.CreatedAt,
	})

	return circular, nil
}

// Archive transitions a circular to ARCHIVED. Only the sender may archive;
// a second archive surfaces ErrAlreadyArchived without touching the record.
func (s *BroadcastService) Archive(ctx context.Context, circularID uuid.UUID, requesterID string) error {
	now := time.Now().UTC()
	_, err := s.repository.Update(circularID, func(c *domain.Circular) error {
		return c.Archive(requesterID, now)
	})
	if err != nil {
		return err
	}
	s.monitoring.IncrArchived()
	s.publish(event.CircularArchived{ID: circularID, SenderID: requesterID, At: now})
	return nil
}

// MarkRead records a read receipt. Idempotent: repeats are accepted and
// change nothing. Archived circulars stay markable.
func (s *BroadcastService) MarkRead(ctx context.Context, circularID uuid.UUID, userID string) error {
	now := time.Now().UTC()
	changed := false
	_, err := s.repository.Update(circularID, func(c *domain.Circular) error {
		already := c.IsReadBy(userID)
		if err := c.MarkRead(userID, now); err != nil {
			return err
		}
		changed = !already
		return nil
	})
	if err != nil {
		return err
	}
	if changed {
		s.monitoring.IncrReads()
		s.publish(event.CircularRead{ID: circularID, UserID: userID, At: now})
	}
	return nil
}

func (s *BroadcastService) IsRead(ctx context.Context, circularID uuid.UUID, userID string) (bool, error) {
	c, err := s.repository.Get(circularID)
	if err != nil {
		return false, err
	}
	return c.IsReadBy(userID), nil
}

// Get returns a circular to its sender or one of its recipients; everyone
// else gets ErrAccessDenied.
func (s *BroadcastService) Get(ctx context.Context, circularID uuid.UUID, viewerID string) (domain.Circular, error) {
	c, err := s.repository.Get(circularID)
	if err != nil {
		return domain.Circular{}, err
	}
	if c.SenderID != viewerID && !c.IsRecipient(viewerID) {
		return domain.Circular{}, ourerrors.ErrAccessDenied
	}
	return c, nil
}

func (s *BroadcastService) ListSentBy(ctx context.Context, userID string) ([]domain.Circular, error) {
	return s.repository.ListSentBy(userID)
}

func (s *BroadcastService) ListReceivedBy(ctx context.Context, userID string) ([]domain.Circular, error) {
	return s.repository.ListReceivedBy(userID)
}

func (s *BroadcastService) ListActive(ctx context.Context) ([]domain.Circular, error) {
	return s.repository.ListByStatus(domain.StatusActive)
}

func (s *BroadcastService) ReadStats(ctx context.Context, circularID uuid.UUID) (projection.ReadStats, error) {
	c, err := s.repository.Get(circularID)
	if err != nil {
		return projection.ReadStats{}, err
	}
	return projection.NewReadStats(c), nil
}

// UnreadCount spans ACTIVE and ARCHIVED circulars: archiving removes a
// circular from default views, not from unread accounting.
func (s *BroadcastService) UnreadCount(ctx context.Context, userID string) (int, error) {
	received, err := s.repository.ListReceivedBy(userID)
	if err != nil {
		return 0, err
	}
	return projection.UnreadCount(received, userID), nil
}

func (s *BroadcastService) UserStats(ctx context.Context, userID string) (projection.UserStats, error) {
	sent, err := s.repository.ListSentBy(userID)
	if err != nil {
		return projection.UserStats{}, err
	}
	received, err := s.repository.ListReceivedBy(userID)
	if err != nil {
		return projection.UserStats{}, err
	}
	return projection.NewUserStats(sent, received, userID), nil
}

// Search runs a full-text query and keeps only the hits the viewer could
// open anyway (sender or recipient).
func (s *BroadcastService) Search(ctx context.Context, query, viewerID string) ([]domain.Circular, error) {
	if s.index == nil {
		return nil, nil
	}
	ids, err := s.index.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	var out []domain.Circular
	for _, id := range ids {
		c, err := s.repository.Get(id)
		if err == ourerrors.ErrNotFound {
			// Index entry outlived the record; skip.
			continue
		}
		if err != nil {
			return nil, err
		}
		if c.SenderID == viewerID || c.IsRecipient(viewerID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *BroadcastService) AllowedGroups(role domain.Role) []domain.GroupTag {
	return domain.AllowedGroups(role)
}

// publish pushes an event without blocking the request path. Fan-out is
// best effort; a full channel drops the event with a warning.
func (s *BroadcastService) publish(e event.DomainEvent) {
	if s.events == nil {
		return
	}
	select {
	case s.events <- e:
	default:
		s.log.Warn("Event channel full, dropping event", "circular", e.CircularID())
	}
}

func validateCreate(req CreateCircularRequest) error {
	if err := validate.Struct(req); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			return ourerrors.ValidationError{Field: fieldName(fe.Field()), Reason: reasonFor(fe)}
		}
		return err
	}
	return nil
}

func fieldName(structField string) string {
	switch structField {
	case "Title":
		return "title"
	case "Body":
		return "body"
	case "SenderID":
		return "senderId"
	case "SenderRole":
		return "senderRole"
	case "Groups":
		return "recipientGroups"
	}
	return structField
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return "too short"
	case "max":
		return "exceeds maximum length"
	}
	return fe.Tag()
}
