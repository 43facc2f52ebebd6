package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Balraaj27/lawcrusade/internal/db"
	"github.com/Balraaj27/lawcrusade/internal/model"
	"github.com/Balraaj27/lawcrusade/internal/repository"
	"github.com/Balraaj27/lawcrusade/internal/validate"
)

type inquiryRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Message string `json:"message" validate:"required,min=1,max=2000"`
	Service string `json:"service" validate:"omitempty,max=100"`
}

type inquiryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleCreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req inquiryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.First(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.CreateInquiry(r.Context(), model.Inquiry{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Service: req.Service,
	})
	if err != nil {
		s.writeServerError(w, "Failed to submit inquiry", err)
		return
	}
	writeData(w, http.StatusCreated, "Inquiry submitted successfully", created)
}

func (s *Server) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !model.ValidInquiryStatus(status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	pg := pageParams(r)
	inquiries, total, err := s.store.ListInquiries(r.Context(), status, pg)
	if err != nil {
		s.writeServerError(w, "Failed to fetch inquiries", err)
		return
	}

	writeData(w, http.StatusOK, "", map[string]any{
		"inquiries": inquiries,
		"pagination": pagination{
			Page:       pg.Page,
			Limit:      pg.Limit,
			Total:      total,
			TotalPages: repository.TotalPages(total, pg.Limit),
		},
	})
}

func (s *Server) handleUpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req inquiryStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// Status validation happens before the lookup, so an unknown status on a
	// missing inquiry still reads as a 400.
	if !model.ValidInquiryStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	updated, err := s.store.UpdateInquiryStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		if db.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Inquiry not found")
			return
		}
		s.writeServerError(w, "Failed to update inquiry", err)
		return
	}
	writeData(w, http.StatusOK, "Inquiry status updated successfully", updated)
}

func (s *Server) handleDeleteInquiry(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeleteInquiry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if db.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Inquiry not found")
			return
		}
		s.writeServerError(w, "Failed to delete inquiry", err)
		return
	}
	writeData(w, http.StatusOK, "Inquiry deleted successfully", nil)
}
