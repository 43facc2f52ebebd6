package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Balraaj27/lawcrusade/internal/db"
	"github.com/Balraaj27/lawcrusade/internal/model"
	"github.com/Balraaj27/lawcrusade/internal/validate"
)

type pageContentRequest struct {
	Title   string `json:"title" validate:"required,max=500"`
	Content string `json:"content" validate:"required"`
}

func (s *Server) handleGetPageContent(w http.ResponseWriter, r *http.Request) {
	pc, err := s.store.GetPageContent(r.Context(), chi.URLParam(r, "page"))
	if err != nil {
		if db.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Page content not found")
			return
		}
		s.writeServerError(w, "Failed to fetch page content", err)
		return
	}
	writeData(w, http.StatusOK, "", pc)
}

func (s *Server) handleUpdatePageContent(w http.ResponseWriter, r *http.Request) {
	var req pageContentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.First(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := s.store.UpsertPageContent(r.Context(), model.PageContent{
		ID:      uuid.NewString(),
		Page:    chi.URLParam(r, "page"),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		s.writeServerError(w, "Failed to update page content", err)
		return
	}
	writeData(w, http.StatusOK, "Page content updated successfully", saved)
}
