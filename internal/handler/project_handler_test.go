package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// mockProjectService は ProjectService のモック
type mockProjectService struct {
	listFunc    func(ctx context.Context) ([]*model.Project, error)
	getByIDFunc func(ctx context.Context, id string) (*model.Project, error)
	createFunc  func(ctx context.Context, project *model.Project) error
	updateFunc  func(ctx context.Context, project *model.Project) error
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockProjectService) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) Create(ctx context.Context, project *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, project)
	}
	return nil
}

func (m *mockProjectService) Update(ctx context.Context, project *model.Project) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, project)
	}
	return nil
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func projectRouter(h *ProjectHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/projects", h.List)
	r.Post("/api/projects", h.Create)
	r.Put("/api/projects/{id}", h.Update)
	r.Delete("/api/projects/{id}", h.Delete)
	return r
}

func TestProjectHandler_List_EmptyIsArray(t *testing.T) {
	mock := &mockProjectService{
		listFunc: func(ctx context.Context) ([]*model.Project, error) {
			return nil, nil
		},
	}
	r := projectRouter(NewProjectHandler(mock))

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// An empty collection must serialize as [], never null.
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected [], got %q", got)
	}
}

func TestProjectHandler_Create_MissingField(t *testing.T) {
	called := false
	mock := &mockProjectService{
		createFunc: func(ctx context.Context, project *model.Project) error {
			called = true
			return nil
		},
	}
	r := projectRouter(NewProjectHandler(mock))

	body := `{"description": "d", "tags": [], "category": "web"}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("service must not be called when validation fails")
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !strings.Contains(resp["error"], "name") {
		t.Errorf("expected the error to name the missing field, got %q", resp["error"])
	}
}

func TestProjectHandler_Create_EmptyTagsAllowed(t *testing.T) {
	var created *model.Project
	mock := &mockProjectService{
		createFunc: func(ctx context.Context, project *model.Project) error {
			created = project
			project.ID = "p1"
			return nil
		},
	}
	r := projectRouter(NewProjectHandler(mock))

	// tags present but empty is valid; the key merely has to exist.
	body := `{"name": "Site", "description": "d", "tags": [], "category": "web"}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if created == nil || len(created.Tags) != 0 {
		t.Errorf("expected empty tags to pass through, got %+v", created)
	}
}

func TestProjectHandler_Update_MergesOnlyProvidedKeys(t *testing.T) {
	var updated *model.Project
	mock := &mockProjectService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{
				ID:          "p1",
				Name:        "Old name",
				Description: "Old description",
				Tags:        []string{"go"},
				Category:    "web",
				ImageURL:    "https://example.com/a.png",
			}, nil
		},
		updateFunc: func(ctx context.Context, project *model.Project) error {
			updated = project
			return nil
		},
	}
	r := projectRouter(NewProjectHandler(mock))

	body := `{"description": "New description"}`
	req := httptest.NewRequest(http.MethodPut, "/api/projects/p1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if updated.Description != "New description" {
		t.Errorf("expected description updated, got %q", updated.Description)
	}
	// Absent keys keep their stored values.
	if updated.Name != "Old name" || updated.Category != "web" || len(updated.Tags) != 1 {
		t.Errorf("absent keys must keep stored values, got %+v", updated)
	}
}

func TestProjectHandler_Update_EmptyStringRules(t *testing.T) {
	var updated *model.Project
	mock := &mockProjectService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{
				ID:          "p1",
				Name:        "Old name",
				Description: "Old description",
				Tags:        []string{"go"},
				Category:    "web",
				ImageURL:    "https://example.com/a.png",
				LiveLink:    "https://example.com",
			}, nil
		},
		updateFunc: func(ctx context.Context, project *model.Project) error {
			updated = project
			return nil
		},
	}
	r := projectRouter(NewProjectHandler(mock))

	// Required fields ignore empty overwrites; optional fields take them.
	body := `{"name": "", "description": "", "category": "", "imageUrl": "", "liveLink": ""}`
	req := httptest.NewRequest(http.MethodPut, "/api/projects/p1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if updated.Name != "Old name" || updated.Description != "Old description" || updated.Category != "web" {
		t.Errorf("required fields must keep stored values on empty overwrite, got %+v", updated)
	}
	if updated.ImageURL != "" || updated.LiveLink != "" {
		t.Errorf("optional fields must accept empty overwrites, got %+v", updated)
	}
}

func TestProjectHandler_Update_NotFound(t *testing.T) {
	r := projectRouter(NewProjectHandler(&mockProjectService{}))

	req := httptest.NewRequest(http.MethodPut, "/api/projects/missing", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestProjectHandler_Delete(t *testing.T) {
	mock := &mockProjectService{
		deleteFunc: func(ctx context.Context, id string) error {
			if id == "p1" {
				return nil
			}
			return repository.ErrNotFound
		},
	}
	r := projectRouter(NewProjectHandler(mock))

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/p1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["message"] != "Project removed successfully" {
		t.Errorf("unexpected message %q", resp["message"])
	}

	// The same delete again targets a gone row and answers 404.
	req = httptest.NewRequest(http.MethodDelete, "/api/projects/p2", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a missing project, got %d", rec.Code)
	}
}
