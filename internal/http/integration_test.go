package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Balraaj27/lawcrusade/internal/config"
	"github.com/Balraaj27/lawcrusade/internal/db"
	internalhttp "github.com/Balraaj27/lawcrusade/internal/http"
	"github.com/Balraaj27/lawcrusade/internal/repository"
	"github.com/Balraaj27/lawcrusade/internal/storage"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func openTestApp(t *testing.T) *httptest.Server {
	t.Helper()
	url := os.Getenv("LAWCRUSADE_TEST_DB")
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}
	if url == "" {
		t.Skip("LAWCRUSADE_TEST_DB or DATABASE_URL not set")
		return nil
	}
	database, err := db.New(context.Background(), url)
	if err != nil {
		t.Skipf("db unavailable: %v", err)
		return nil
	}
	t.Cleanup(database.Close)
	if err := database.InitSchema(context.Background()); err != nil {
		t.Fatalf("schema init: %v", err)
	}

	disk, err := storage.NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("storage init: %v", err)
	}

	cfg := config.Config{
		JWTSecret:       "integration-secret",
		JWTExpiresIn:    time.Hour,
		FrontendURL:     "http://localhost:3000",
		MaxFileSize:     1 << 20,
		RateLimitMax:    10000,
		RateLimitWindow: time.Minute,
	}
	server := internalhttp.NewServer(cfg, repository.NewStore(database), disk, nil)
	app := httptest.NewServer(server.Router())
	t.Cleanup(app.Close)
	return app
}

func doReq(t *testing.T, method, url, token string, body any) (*http.Response, apiEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode error: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("http error: %v", err)
	}
	defer resp.Body.Close()

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return resp, env
}

func registerAdmin(t *testing.T, baseURL string) (email, token string) {
	t.Helper()
	email = fmt.Sprintf("admin.%d@example.local", time.Now().UnixNano())
	resp, env := doReq(t, http.MethodPost, baseURL+"/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "secret-pass",
		"name":     "Test Admin",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", resp.StatusCode, env.Message)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("register data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("register returned no token")
	}
	return email, data.Token
}

func TestAuthFlow(t *testing.T) {
	app := openTestApp(t)
	email, token := registerAdmin(t, app.URL)

	// Registering the same email again conflicts.
	resp, env := doReq(t, http.MethodPost, app.URL+"/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "secret-pass",
		"name":     "Test Admin",
	})
	if resp.StatusCode != http.StatusBadRequest || env.Message != "Email already exists" {
		t.Fatalf("duplicate register: got %d %q", resp.StatusCode, env.Message)
	}

	// Wrong password and unknown email must be indistinguishable.
	resp, badPass := doReq(t, http.MethodPost, app.URL+"/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "wrong-pass",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: got %d", resp.StatusCode)
	}
	resp, noUser := doReq(t, http.MethodPost, app.URL+"/api/auth/login", "", map[string]any{
		"email":    "nobody@example.local",
		"password": "wrong-pass",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unknown email: got %d", resp.StatusCode)
	}
	if badPass.Message != noUser.Message {
		t.Fatalf("failure messages differ: %q vs %q", badPass.Message, noUser.Message)
	}

	resp, env = doReq(t, http.MethodPost, app.URL+"/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "secret-pass",
	})
	if resp.StatusCode != http.StatusOK || env.Message != "Login successful" {
		t.Fatalf("login: got %d %q", resp.StatusCode, env.Message)
	}

	resp, env = doReq(t, http.MethodGet, app.URL+"/api/auth/verify", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("verify: got %d %q", resp.StatusCode, env.Message)
	}
	var verify struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &verify); err != nil {
		t.Fatalf("verify data: %v", err)
	}
	if verify.User.Email != email {
		t.Fatalf("verify resolved wrong identity: %q", verify.User.Email)
	}
}

func TestBlogLifecycle(t *testing.T) {
	app := openTestApp(t)
	_, token := registerAdmin(t, app.URL)

	slug := fmt.Sprintf("test-post-%d", time.Now().UnixNano())
	post := map[string]any{
		"title":     "Draft post",
		"slug":      slug,
		"content":   "Body of the post",
		"category":  "Corporate Law",
		"tags":      []string{"law", "test"},
		"published": false,
	}

	resp, env := doReq(t, http.MethodPost, app.URL+"/api/blog", token, post)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: got %d %q", resp.StatusCode, env.Message)
	}
	var created struct {
		ID   string   `json:"id"`
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("create data: %v", err)
	}
	if len(created.Tags) != 2 {
		t.Fatalf("tags not persisted: %v", created.Tags)
	}

	// A draft is invisible on the public endpoint.
	resp, env = doReq(t, http.MethodGet, app.URL+"/api/blog/"+slug, "", nil)
	if resp.StatusCode != http.StatusNotFound || env.Message != "Blog post not found" {
		t.Fatalf("draft should be hidden: got %d %q", resp.StatusCode, env.Message)
	}

	// Duplicate slug conflicts.
	resp, env = doReq(t, http.MethodPost, app.URL+"/api/blog", token, post)
	if resp.StatusCode != http.StatusBadRequest || env.Message != "Slug already exists" {
		t.Fatalf("duplicate slug: got %d %q", resp.StatusCode, env.Message)
	}

	// Publishing makes it visible.
	post["published"] = true
	resp, env = doReq(t, http.MethodPut, app.URL+"/api/blog/"+created.ID, token, post)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: got %d %q", resp.StatusCode, env.Message)
	}
	resp, _ = doReq(t, http.MethodGet, app.URL+"/api/blog/"+slug, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("published post should be public: got %d", resp.StatusCode)
	}

	// Listing carries pagination metadata consistent with the filter.
	resp, env = doReq(t, http.MethodGet, app.URL+"/api/blog?limit=5", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: got %d", resp.StatusCode)
	}
	var listing struct {
		Posts      []json.RawMessage `json:"posts"`
		Pagination struct {
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(env.Data, &listing); err != nil {
		t.Fatalf("list data: %v", err)
	}
	if listing.Pagination.Limit != 5 || listing.Pagination.Total < 1 {
		t.Fatalf("unexpected pagination: %+v", listing.Pagination)
	}
	wantPages := (listing.Pagination.Total + 4) / 5
	if listing.Pagination.TotalPages != wantPages {
		t.Fatalf("totalPages = %d, want %d", listing.Pagination.TotalPages, wantPages)
	}

	// A page past the end is an empty result, not an error.
	resp, env = doReq(t, http.MethodGet, app.URL+"/api/blog?page=9999&limit=5", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("out-of-range page: got %d", resp.StatusCode)
	}
	var pastEnd struct {
		Posts []json.RawMessage `json:"posts"`
	}
	if err := json.Unmarshal(env.Data, &pastEnd); err != nil {
		t.Fatalf("out-of-range data: %v", err)
	}
	if len(pastEnd.Posts) != 0 {
		t.Fatalf("expected no posts past the last page, got %d", len(pastEnd.Posts))
	}

	resp, env = doReq(t, http.MethodDelete, app.URL+"/api/blog/"+created.ID, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: got %d %q", resp.StatusCode, env.Message)
	}
	resp, env = doReq(t, http.MethodDelete, app.URL+"/api/blog/"+created.ID, token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete: got %d %q", resp.StatusCode, env.Message)
	}
}

func TestInquiryLifecycle(t *testing.T) {
	app := openTestApp(t)
	_, token := registerAdmin(t, app.URL)

	resp, env := doReq(t, http.MethodPost, app.URL+"/api/inquiry", "", map[string]any{
		"name":    "A Client",
		"email":   "client@example.local",
		"subject": "Consultation",
		"message": "I need legal advice.",
	})
	if resp.StatusCode != http.StatusCreated || env.Message != "Inquiry submitted successfully" {
		t.Fatalf("submit: got %d %q", resp.StatusCode, env.Message)
	}
	var created struct {
		ID        string    `json:"id"`
		Status    string    `json:"status"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("submit data: %v", err)
	}
	if created.Status != "pending" {
		t.Fatalf("new inquiry should be pending, got %q", created.Status)
	}

	// Unknown status is rejected before any lookup.
	resp, env = doReq(t, http.MethodPatch, app.URL+"/api/inquiry/"+created.ID+"/status", token, map[string]any{
		"status": "resolved",
	})
	if resp.StatusCode != http.StatusBadRequest || env.Message != "Invalid status" {
		t.Fatalf("bad status: got %d %q", resp.StatusCode, env.Message)
	}

	resp, env = doReq(t, http.MethodPatch, app.URL+"/api/inquiry/"+created.ID+"/status", token, map[string]any{
		"status": "in-progress",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status update: got %d %q", resp.StatusCode, env.Message)
	}
	var updated struct {
		Status    string    `json:"status"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("update data: %v", err)
	}
	if updated.Status != "in-progress" {
		t.Fatalf("status = %q, want in-progress", updated.Status)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at did not advance: %s -> %s", created.UpdatedAt, updated.UpdatedAt)
	}

	resp, env = doReq(t, http.MethodGet, app.URL+"/api/inquiry?status=in-progress", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: got %d %q", resp.StatusCode, env.Message)
	}

	resp, env = doReq(t, http.MethodDelete, app.URL+"/api/inquiry/"+created.ID, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: got %d %q", resp.StatusCode, env.Message)
	}
	resp, env = doReq(t, http.MethodDelete, app.URL+"/api/inquiry/"+created.ID, token, nil)
	if resp.StatusCode != http.StatusNotFound || env.Message != "Inquiry not found" {
		t.Fatalf("second delete: got %d %q", resp.StatusCode, env.Message)
	}
}

func TestPageContentUpsert(t *testing.T) {
	app := openTestApp(t)
	_, token := registerAdmin(t, app.URL)

	page := fmt.Sprintf("about-%d", time.Now().UnixNano())

	resp, env := doReq(t, http.MethodGet, app.URL+"/api/content/"+page, "", nil)
	if resp.StatusCode != http.StatusNotFound || env.Message != "Page content not found" {
		t.Fatalf("missing page: got %d %q", resp.StatusCode, env.Message)
	}

	resp, env = doReq(t, http.MethodPut, app.URL+"/api/content/"+page, token, map[string]any{
		"title":   "About Us",
		"content": "We are a law firm.",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upsert: got %d %q", resp.StatusCode, env.Message)
	}

	resp, env = doReq(t, http.MethodPut, app.URL+"/api/content/"+page, token, map[string]any{
		"title":   "About Us",
		"content": "Updated copy.",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("second upsert: got %d %q", resp.StatusCode, env.Message)
	}

	resp, env = doReq(t, http.MethodGet, app.URL+"/api/content/"+page, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("fetch: got %d %q", resp.StatusCode, env.Message)
	}
	var pc struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(env.Data, &pc); err != nil {
		t.Fatalf("fetch data: %v", err)
	}
	if pc.Content != "Updated copy." {
		t.Fatalf("content = %q, want updated copy", pc.Content)
	}
}
