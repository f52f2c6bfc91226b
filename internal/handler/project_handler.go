package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

// ProjectHandler はプロジェクト CRUD の HTTP ハンドラ
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler は ProjectHandler を生成する
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List は GET /api/projects を処理する
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	projects, err := h.projectService.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error fetching projects"})
		return
	}

	// Return [] not null for empty lists
	if projects == nil {
		projects = []*model.Project{}
	}
	_ = json.NewEncoder(w).Encode(projects)
}

// createProjectRequest is the expected JSON body for POST /api/projects.
// Tags is a pointer so "key absent" and "empty list" stay distinguishable.
type createProjectRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tags        *[]string `json:"tags"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	LiveLink    string    `json:"liveLink"`
	GithubLink  string    `json:"githubLink"`
}

func (req *createProjectRequest) validate() string {
	switch {
	case req.Name == "":
		return "name is required"
	case req.Description == "":
		return "description is required"
	case req.Tags == nil:
		return "tags is required"
	case req.Category == "":
		return "category is required"
	}
	return ""
}

// Create は POST /api/projects を処理する（認証必須）
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createProjectRequest
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

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		Tags:        *req.Tags,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		LiveLink:    req.LiveLink,
		GithubLink:  req.GithubLink,
	}

	if err := h.projectService.Create(r.Context(), project); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error creating project"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(project)
}

// Update は PUT /api/projects/{id} を処理する（認証必須）。
// ボディに含まれるキーのみを上書きする部分更新（merge, not replace）。
// 必須フィールド（name / description / category）は空文字での上書きを無視し、
// 任意フィールド（imageUrl / liveLink / githubLink / tags）は与えられた値を
// そのまま（空でも）採用する
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := chi.URLParam(r, "id")

	existing, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Project not found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error updating project"})
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON body"})
		return
	}

	if b, ok := raw["name"]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		if v != "" {
			existing.Name = v
		}
	}
	if b, ok := raw["description"]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		if v != "" {
			existing.Description = v
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
	if b, ok := raw["category"]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		if v != "" {
			existing.Category = v
		}
	}
	if b, ok := raw["imageUrl"]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		existing.ImageURL = v
	}
	if b, ok := raw["liveLink"]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		existing.LiveLink = v
	}
	if b, ok := raw["githubLink"]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		existing.GithubLink = v
	}

	if err := h.projectService.Update(r.Context(), existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Project not found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error updating project"})
		return
	}

	_ = json.NewEncoder(w).Encode(existing)
}

// Delete は DELETE /api/projects/{id} を処理する（認証必須）。
// ID 基準で冪等: 既に存在しない ID への削除は常に 404
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := chi.URLParam(r, "id")

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Project not found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Error deleting project"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Project removed successfully"})
}
