package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

// PostHandler はブログ記事 CRUD の HTTP ハンドラ
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler は PostHandler を生成する
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// List は GET /api/blogs を処理する
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	posts, err := h.postService.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error fetching blog posts"})
		return
	}

	// Return [] not null for empty lists
	if posts == nil {
		posts = []*model.Post{}
	}
	_ = json.NewEncoder(w).Encode(posts)
}

// Get は GET /api/blogs/{id} を処理する
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	post, err := h.postService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Blog post not found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error fetching blog post"})
		return
	}
	_ = json.NewEncoder(w).Encode(post)
}

// GetBySlug は GET /api/blogs/slug/{slug} を処理する
func (h *PostHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	post, err := h.postService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Blog post not found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error fetching blog post"})
		return
	}
	_ = json.NewEncoder(w).Encode(post)
}

// createPostRequest is the expected JSON body for POST /api/blogs.
// Slug is deliberately absent: it is derived server-side from the title.
type createPostRequest struct {
	Title   string     `json:"title"`
	Summary string     `json:"summary"`
	Content string     `json:"content"`
	Date    *time.Time `json:"date"`
	Tags    []string   `json:"tags"`
}

func (req *createPostRequest) validate() string {
	switch {
	case req.Title == "":
		return "title is required"
	case req.Summary == "":
		return "summary is required"
	case req.Content == "":
		return "content is required"
	}
	return ""
}

// Create は POST /api/blogs を処理する（認証必須）
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON body"})
		return
	}

	if msg := req.validate(); msg != "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
		return
	}

	post := &model.Post{
		Title:   req.Title,
		Summary: req.Summary,
		Content: req.Content,
		Tags:    req.Tags,
	}
	if req.Date != nil {
		post.Date = *req.Date
	}

	if err := h.postService.Create(r.Context(), post); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "A blog post with this title already exists"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error creating blog post"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(post)
}

// Update は PUT /api/blogs/{id} を処理する（認証必須）。
// ボディに含まれるキーのみを上書きする部分更新。タイトルが変わった場合のみ
// スラッグが再導出される
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := chi.URLParam(r, "id")

	existing, err := h.postService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Blog post not found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error updating blog post"})
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON body"})
		return
	}

	prevTitle := existing.Title
	if b, ok := raw["title"]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		if v != "" {
			existing.Title = v
		}
	}
	if b, ok := raw["summary"]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		if v != "" {
			existing.Summary = v
		}
	}
	if b, ok := raw["content"]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		if v != "" {
			existing.Content = v
		}
	}
	if b, ok := raw["date"]; ok {
		var v time.Time
		if err := json.Unmarshal(b, &v); err == nil {
			existing.Date = v
		}
	}
	if b, ok := raw["tags"]; ok {
		var v []string
		_ = json.Unmarshal(b, &v)
		if v == nil {
			v = []string{}
		}
		existing.Tags = v
	}

	if err := h.postService.Update(r.Context(), existing, existing.Title != prevTitle); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Blog post not found"})
			return
		}
		if errors.Is(err, repository.ErrDuplicate) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "A blog post with this title already exists"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error updating blog post"})
		return
	}

	_ = json.NewEncoder(w).Encode(existing)
}

// Delete は DELETE /api/blogs/{id} を処理する（認証必須）
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.postService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Blog post not found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error deleting blog post"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Blog post removed successfully"})
}
