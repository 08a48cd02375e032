package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dbellanger/lexico/internal/common"
	"github.com/dbellanger/lexico/internal/logging"
	"github.com/dbellanger/lexico/internal/server/words"
)

// WordHandler handles dictionary CRUD. All routes sit behind the
// authentication middleware.
type WordHandler struct {
	words  *words.Service
	logger logging.Logger
}

func NewWordHandler(words *words.Service, logger logging.Logger) *WordHandler {
	return &WordHandler{words: words, logger: logger.With("module", "word_handler")}
}

func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.words.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	word, err := h.words.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, word)
}

func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var word words.Word
	if err := json.NewDecoder(r.Body).Decode(&word); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	created, err := h.words.Create(r.Context(), &word)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info(r.Context(), "word created", "id", created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	var word words.Word
	if err := json.NewDecoder(r.Body).Decode(&word); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	if err := h.words.Update(r.Context(), chi.URLParam(r, "id"), &word); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.words.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
