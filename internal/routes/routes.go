package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/openmesh/meshnet-backend/internal/handlers"
	"github.com/openmesh/meshnet-backend/internal/middleware"
	"github.com/openmesh/meshnet-backend/internal/store"
)

// SetupRoutes mounts the API surface. Everything except /ping requires an
// x-api-key header.
func SetupRoutes(r chi.Router, h *handlers.Handler, st store.Store) {
	r.Get("/ping", h.Ping)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(st))

		// User routes
		r.Get("/user", h.GetUser)
		r.Get("/user/search", h.SearchUser)
		r.Get("/user/settings", h.GetUserSettings)
		r.Patch("/user/settings", h.PatchUserSettings)
		r.Get("/users", h.GetUsers)

		// Friend routes
		r.Get("/friend", h.GetFriends)
		r.Get("/friend/request", h.GetFriendRequests)
		r.Post("/friend/request", h.SendFriendRequest)
		r.Post("/friend/request/accept", h.AcceptFriendRequest)
	})
}
