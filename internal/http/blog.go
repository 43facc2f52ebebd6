package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Balraaj27/lawcrusade/internal/db"
	"github.com/Balraaj27/lawcrusade/internal/model"
	"github.com/Balraaj27/lawcrusade/internal/repository"
	"github.com/Balraaj27/lawcrusade/internal/validate"
)

type blogPostRequest struct {
	Title     string   `json:"title" validate:"required,min=1,max=200"`
	Slug      string   `json:"slug" validate:"required,min=1,max=200"`
	Excerpt   string   `json:"excerpt" validate:"omitempty,max=500"`
	Content   string   `json:"content" validate:"required,min=1"`
	Category  string   `json:"category" validate:"required,min=1,max=100"`
	Tags      []string `json:"tags" validate:"omitempty,dive,required,max=100"`
	Published bool     `json:"published"`
	Featured  bool     `json:"featured"`
	ImageURL  string   `json:"imageUrl" validate:"omitempty,uri"`
}

func (req blogPostRequest) post() model.BlogPost {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.BlogPost{
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      tags,
		Published: req.Published,
		Featured:  req.Featured,
		ImageURL:  req.ImageURL,
	}
}

// pagination is the page metadata attached to every list response.
type pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// pageParams reads ?page and ?limit, falling back to 1 and 10. Malformed or
// non-positive values get the defaults rather than an error.
func pageParams(r *http.Request) repository.Page {
	pg := repository.Page{Page: 1, Limit: 10}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		pg.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		pg.Limit = v
	}
	return pg
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request, publishedOnly bool) {
	pg := pageParams(r)
	filter := repository.PostFilter{
		PublishedOnly: publishedOnly,
		Category:      r.URL.Query().Get("category"),
		Search:        r.URL.Query().Get("search"),
	}

	posts, total, err := s.store.ListPosts(r.Context(), filter, pg)
	if err != nil {
		s.writeServerError(w, "Failed to fetch blog posts", err)
		return
	}

	writeData(w, http.StatusOK, "", map[string]any{
		"posts": posts,
		"pagination": pagination{
			Page:       pg.Page,
			Limit:      pg.Limit,
			Total:      total,
			TotalPages: repository.TotalPages(total, pg.Limit),
		},
	})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	s.listPosts(w, r, true)
}

// handleAdminListPosts includes drafts; the route sits behind authentication.
func (s *Server) handleAdminListPosts(w http.ResponseWriter, r *http.Request) {
	s.listPosts(w, r, false)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, err := s.store.GetPostBySlug(r.Context(), slug, true)
	if err != nil {
		if db.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Blog post not found")
			return
		}
		s.writeServerError(w, "Failed to fetch blog post", err)
		return
	}
	writeData(w, http.StatusOK, "", post)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req blogPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.First(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	post := req.post()
	post.ID = uuid.NewString()
	created, err := s.store.CreatePost(r.Context(), post)
	if err != nil {
		if db.IsDuplicate(err) {
			writeError(w, http.StatusBadRequest, "Slug already exists")
			return
		}
		s.writeServerError(w, "Failed to create blog post", err)
		return
	}
	writeData(w, http.StatusCreated, "Blog post created successfully", created)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var req blogPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.First(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	post := req.post()
	post.ID = chi.URLParam(r, "id")
	updated, err := s.store.UpdatePost(r.Context(), post)
	if err != nil {
		switch {
		case db.IsNotFound(err):
			writeError(w, http.StatusNotFound, "Blog post not found")
		case db.IsDuplicate(err):
			writeError(w, http.StatusBadRequest, "Slug already exists")
		default:
			s.writeServerError(w, "Failed to update blog post", err)
		}
		return
	}
	writeData(w, http.StatusOK, "Blog post updated successfully", updated)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeletePost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if db.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Blog post not found")
			return
		}
		s.writeServerError(w, "Failed to delete blog post", err)
		return
	}
	writeData(w, http.StatusOK, "Blog post deleted successfully", nil)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.ListCategories(r.Context())
	if err != nil {
		s.writeServerError(w, "Failed to fetch categories", err)
		return
	}
	if categories == nil {
		categories = []model.CategoryCount{}
	}
	writeData(w, http.StatusOK, "", categories)
}
