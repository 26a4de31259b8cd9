package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"circular-lab/auth"
	"circular-lab/domain"
	"circular-lab/errors"
	"circular-lab/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type createRequest struct {
	Title           string   `json:"title"`
	Body            string   `json:"body"`
	RecipientGroups []string `json:"recipientGroups"`
}

type circularResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Body            string   `json:"body"`
	SenderID        string   `json:"senderId"`
	SenderName      string   `json:"senderName"`
	SenderRole      string   `json:"senderRole"`
	RecipientGroups []string `json:"recipientGroups"`
	RecipientCount  int      `json:"recipientCount"`
	Status          string   `json:"status"`
	ReadCount       int      `json:"readCount"`
	Read            bool     `json:"read"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	groups := make([]domain.GroupTag, 0, len(req.RecipientGroups))
	for _, raw := range req.RecipientGroups {
		tag, err := domain.ParseGroupTag(raw)
		if err != nil {
			s.writeError(w, errors.ValidationError{Field: "recipientGroups", Reason: err.Error()})
			return
		}
		groups = append(groups, tag)
	}

	circular, err := s.service.Create(r.Context(), services.CreateCircularRequest{
		Title:      req.Title,
		Body:       req.Body,
		SenderID:   principal.UserID,
		SenderRole: principal.Role,
		Groups:     groups,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResponse(circular, principal.UserID))
}

func (s *Server) handleMyReceived(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}
	circulars, err := s.service.ListReceivedBy(r.Context(), principal.UserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponses(circulars, principal.UserID))
}

func (s *Server) handleMySent(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}
	circulars, err := s.service.ListSentBy(r.Context(), principal.UserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponses(circulars, principal.UserID))
}

func (s *Server) handleAll(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}
	if principal.Role != domain.RoleManagement {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "management only"})
		return
	}
	circulars, err := s.service.ListActive(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponses(circulars, principal.UserID))
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}
	count, err := s.service.UnreadCount(r.Context(), principal.UserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}
	stats, err := s.service.UserStats(r.Context(), principal.UserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleAllowedGroups(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}
	groups := s.service.AllowedGroups(principal.Role)
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = string(g)
	}
	writeJSON(w, http.StatusOK, map[string][]string{"groups": out})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query parameter q is required"})
		return
	}
	circulars, err := s.service.Search(r.Context(), query, principal.UserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponses(circulars, principal.UserID))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	principal, circularID, ok := s.identifyRequest(w, r)
	if !ok {
		return
	}
	circular, err := s.service.Get(r.Context(), circularID, principal.UserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(circular, principal.UserID))
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	principal, circularID, ok := s.identifyRequest(w, r)
	if !ok {
		return
	}
	if err := s.service.MarkRead(r.Context(), circularID, principal.UserID); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Circular marked as read"})
}

func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	principal, circularID, ok := s.identifyRequest(w, r)
	if !ok {
		return
	}
	if err := s.service.Archive(r.Context(), circularID, principal.UserID); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Circular archived successfully"})
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}
	items, err := s.notifications.ListForUser(principal.UserID, 100)
	if err != nil {
		s.writeError(w, err)
		return
	}
	type notificationResponse struct {
		ID         string `json:"id"`
		CircularID string `json:"circularId"`
		Title      string `json:"title"`
		Message    string `json:"message"`
		CreatedAt  string `json:"createdAt"`
	}
	out := make([]notificationResponse, len(items))
	for i, n := range items {
		out[i] = notificationResponse{
			ID:         n.ID.String(),
			CircularID: n.CircularID.String(),
			Title:      n.Title,
			Message:    n.Message,
			CreatedAt:  n.CreatedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// handleReadStats serves the sent-view summary for one circular. Restricted
// to the sender: recipients see their own read flag, not the cohort's.
func (s *Server) handleReadStats(w http.ResponseWriter, r *http.Request) {
	principal, circularID, ok := s.identifyRequest(w, r)
	if !ok {
		return
	}
	circular, err := s.service.Get(r.Context(), circularID, principal.UserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if circular.SenderID != principal.UserID {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "sender only"})
		return
	}
	stats, err := s.service.ReadStats(r.Context(), circularID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// identifyRequest extracts the caller identity and the {circularId} path
// variable, writing the error response itself when either is missing.
func (s *Server) identifyRequest(w http.ResponseWriter, r *http.Request) (auth.Principal, uuid.UUID, bool) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return auth.Principal{}, uuid.Nil, false
	}
	vars := mux.Vars(r)
	circularID, err := uuid.Parse(vars["circularId"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid circular id"})
		return auth.Principal{}, uuid.Nil, false
	}
	return principal, circularID, true
}

// writeError translates the domain error taxonomy into HTTP statuses.
// Every condition keeps its own status so clients can distinguish them.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var validationErr errors.ValidationError
	var permissionErr errors.PermissionError

	status := http.StatusInternalServerError
	switch {
	case stderrors.As(err, &validationErr):
		status = http.StatusBadRequest
	case stderrors.As(err, &permissionErr):
		status = http.StatusForbidden
	case stderrors.Is(err, errors.ErrNotFound):
		status = http.StatusNotFound
	case stderrors.Is(err, errors.ErrNotOwner),
		stderrors.Is(err, errors.ErrNotRecipient),
		stderrors.Is(err, errors.ErrAccessDenied):
		status = http.StatusForbidden
	case stderrors.Is(err, errors.ErrAlreadyArchived):
		status = http.StatusConflict
	case stderrors.Is(err, errors.ErrNoRecipients):
		status = http.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrDirectoryUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", "err", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func toResponse(c domain.Circular, viewerID string) circularResponse {
	groups := make([]string, len(c.RecipientGroups))
	for i, g := range c.RecipientGroups {
		groups[i] = string(g)
	}
	return circularResponse{
		ID:              c.ID.String(),
		Title:           c.Title,
		Body:            c.Body,
		SenderID:        c.SenderID,
		SenderName:      c.SenderName,
		SenderRole:      string(c.SenderRole),
		RecipientGroups: groups,
		RecipientCount:  c.RecipientCount(),
		Status:          string(c.Status),
		ReadCount:       c.ReadCount(),
		Read:            c.IsReadBy(viewerID),
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.Format(time.RFC3339),
	}
}

func toResponses(circulars []domain.Circular, viewerID string) []circularResponse {
	out := make([]circularResponse, len(circulars))
	for i, c := range circulars {
		out[i] = toResponse(c, viewerID)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
