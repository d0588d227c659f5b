package handlers

import (
	"net/http"

	"github.com/budgetbrew/budgetbrew-server/internal/catalog"
	"github.com/budgetbrew/budgetbrew-server/internal/logging"
	"github.com/go-chi/chi/v5"
)

// QuizHandler serves quiz content.
type QuizHandler struct {
	responder
	store *catalog.Store
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(store *catalog.Store, logger logging.Logger) *QuizHandler {
	return &QuizHandler{responder: responder{logger: logger}, store: store}
}

// Routes registers quiz routes on the given chi router.
func (h *QuizHandler) Routes(r chi.Router) {
	r.Get("/questions", h.ListQuestions)
}

// ListQuestions returns every question including its correct answer index.
func (h *QuizHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, h.store.QuizQuestions())
}
