package handlers

import (
	"net/http"
	"time"

	"github.com/budgetbrew/budgetbrew-server/internal/catalog"
	"github.com/budgetbrew/budgetbrew-server/internal/logging"
	"github.com/go-chi/chi/v5"
)

// SystemHandler provides operational endpoints such as health checks.
type SystemHandler struct {
	responder
	store   *catalog.Store
	started time.Time
}

// NewSystemHandler creates a new SystemHandler. Uptime is measured from the
// moment it is constructed.
func NewSystemHandler(store *catalog.Store, logger logging.Logger) *SystemHandler {
	return &SystemHandler{
		responder: responder{logger: logger},
		store:     store,
		started:   time.Now(),
	}
}

// Routes registers all system routes on the given chi router.
func (h *SystemHandler) Routes(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports liveness along with the size of the loaded catalogs.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"users":     len(h.store.Users()),
		"questions": len(h.store.QuizQuestions()),
		"uptime":    time.Since(h.started).Round(time.Second).String(),
	})
}
