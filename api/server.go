// Package api exposes the circular service over HTTP.
// Routes mirror the resource layout the web client consumes:
// a circulars collection with read/archive actions and per-user views.
package api

import (
	"log/slog"
	"net/http"

	"circular-lab/auth"
	"circular-lab/notifications"
	"circular-lab/services"

	"github.com/gorilla/mux"
)

type Server struct {
	log           *slog.Logger
	service       services.IBroadcastService
	notifications notifications.INotificationRepository
	jwtSecret     []byte
}

func NewServer(log *slog.Logger, service services.IBroadcastService,
	notificationRepo notifications.INotificationRepository, jwtSecret []byte) *Server {
	return &Server{
		log:           log,
		service:       service,
		notifications: notificationRepo,
		jwtSecret:     jwtSecret,
	}
}

// Router wires every endpoint behind the identity middleware. Static paths
// are registered before the {circularId} route so "my-sent" never parses as
// an ID.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(auth.Middleware(s.jwtSecret))

	r.HandleFunc("/circulars", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/circulars/my-received", s.handleMyReceived).Methods(http.MethodGet)
	r.HandleFunc("/circulars/my-sent", s.handleMySent).Methods(http.MethodGet)
	r.HandleFunc("/circulars/all", s.handleAll).Methods(http.MethodGet)
	r.HandleFunc("/circulars/unread-count", s.handleUnreadCount).Methods(http.MethodGet)
	r.HandleFunc("/circulars/stats", s.handleUserStats).Methods(http.MethodGet)
	r.HandleFunc("/circulars/allowed-groups", s.handleAllowedGroups).Methods(http.MethodGet)
	r.HandleFunc("/circulars/search", s.handleSearch).Methods(http.MethodGet)
	r.HandleFunc("/circulars/{circularId}", s.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/circulars/{circularId}/stats", s.handleReadStats).Methods(http.MethodGet)
	r.HandleFunc("/circulars/{circularId}/read", s.handleMarkRead).Methods(http.MethodPost)
	r.HandleFunc("/circulars/{circularId}/archive", s.handleArchive).Methods(http.MethodPost)
	r.HandleFunc("/notifications", s.handleNotifications).Methods(http.MethodGet)

	return r
}
