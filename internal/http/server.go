// Package http wires the REST API: routing, middleware, and handlers over
// the repository and storage layers.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Balraaj27/lawcrusade/internal/config"
	"github.com/Balraaj27/lawcrusade/internal/repository"
	"github.com/Balraaj27/lawcrusade/internal/storage"
)

type Server struct {
	cfg   config.Config
	store *repository.Store
	files storage.Storage
	redis *redis.Client
}

// NewServer assembles the API surface. redisClient may be nil, in which case
// rate limiting falls back to per-process counters.
func NewServer(cfg config.Config, store *repository.Store, files storage.Storage, redisClient *redis.Client) *Server {
	return &Server{cfg: cfg, store: store, files: files, redis: redisClient}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(s.recoverer)
	r.Use(chimw.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	// Uploaded images are served straight off disk; the s3 backend returns
	// absolute URLs instead.
	if disk, ok := s.files.(*storage.Disk); ok {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(disk.Dir()))))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(s.rateLimit())

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Method(http.MethodGet, "/verify", s.authenticate(http.HandlerFunc(s.handleVerify)))
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", s.handleListPosts)
			r.Get("/categories/list", s.handleListCategories)
			r.Method(http.MethodGet, "/admin/all", s.authenticate(http.HandlerFunc(s.handleAdminListPosts)))
			r.Get("/{slug}", s.handleGetPost)
			r.Method(http.MethodPost, "/", s.guarded(s.cfg.PublicBlogCreate, s.handleCreatePost))
			r.Method(http.MethodPut, "/{id}", s.authenticate(http.HandlerFunc(s.handleUpdatePost)))
			r.Method(http.MethodDelete, "/{id}", s.authenticate(http.HandlerFunc(s.handleDeletePost)))
		})

		r.Route("/inquiry", func(r chi.Router) {
			r.Post("/", s.handleCreateInquiry)
			r.Method(http.MethodGet, "/", s.authenticate(http.HandlerFunc(s.handleListInquiries)))
			r.Method(http.MethodPatch, "/{id}/status", s.authenticate(http.HandlerFunc(s.handleUpdateInquiryStatus)))
			r.Method(http.MethodDelete, "/{id}", s.authenticate(http.HandlerFunc(s.handleDeleteInquiry)))
		})

		r.Route("/upload", func(r chi.Router) {
			r.Post("/image", s.handleUploadImage)
			r.Method(http.MethodDelete, "/image/{filename}", s.guarded(s.cfg.PublicUploadDelete, s.handleDeleteImage))
		})

		r.Route("/content", func(r chi.Router) {
			r.Get("/{page}", s.handleGetPageContent)
			r.Method(http.MethodPut, "/{page}", s.authenticate(http.HandlerFunc(s.handleUpdatePageContent)))
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"message":   "Backend API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
