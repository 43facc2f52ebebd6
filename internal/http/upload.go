package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Balraaj27/lawcrusade/internal/storage"
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func allowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxFileSize)
	if err := r.ParseMultipartForm(s.cfg.MaxFileSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if !allowedImageExts[ext] || !allowedImageType(contentType) {
		writeError(w, http.StatusBadRequest, "Only image files are allowed (jpeg, jpg, png, gif, webp)")
		return
	}

	filename := uuid.NewString() + ext
	if err := s.files.Save(r.Context(), filename, file, header.Size, contentType); err != nil {
		s.writeServerError(w, "Failed to upload file", err)
		return
	}

	writeData(w, http.StatusOK, "File uploaded successfully", map[string]any{
		"filename":     filename,
		"originalName": header.Filename,
		"size":         header.Size,
		"url":          s.files.URL(filename),
	})
}

func (s *Server) handleDeleteImage(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if err := s.files.Delete(r.Context(), filename); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "File not found")
			return
		}
		s.writeServerError(w, "Failed to delete file", err)
		return
	}
	writeData(w, http.StatusOK, "File deleted successfully", nil)
}
