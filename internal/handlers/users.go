package handlers

import (
	"net/http"

	"github.com/budgetbrew/budgetbrew-server/internal/catalog"
	"github.com/budgetbrew/budgetbrew-server/internal/logging"
	"github.com/go-chi/chi/v5"
)

// UsersHandler serves the user scoreboard endpoints.
type UsersHandler struct {
	responder
	store *catalog.Store
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(store *catalog.Store, logger logging.Logger) *UsersHandler {
	return &UsersHandler{responder: responder{logger: logger}, store: store}
}

// Routes registers user routes on the given chi router. It expects to be
// mounted at /api.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/user/{id}", h.GetUser)
	r.Get("/users", h.ListUsers)
}

// GetUser returns a single user. Unknown ids get user 1, never a 404.
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.respond(w, r, http.StatusOK, h.store.User(id))
}

// ListUsers returns all users in ascending id order.
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, h.store.Users())
}
