package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightpath-arts/site-backend/database"
	"github.com/brightpath-arts/site-backend/models"
	"github.com/brightpath-arts/site-backend/storage"
)

const testSecret = "test-secret"

// mockProjectStore implements ProjectStore for testing
type mockProjectStore struct {
	FindAllFunc        func(ctx context.Context) ([]*models.Project, error)
	FindByCategoryFunc func(ctx context.Context, category models.Category) ([]*models.Project, error)
	FindByIDFunc       func(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	AddFunc            func(ctx context.Context, project *models.Project) error
	ReplaceFunc        func(ctx context.Context, project *models.Project) error
	DeleteFunc         func(ctx context.Context, id primitive.ObjectID) error
	ReorderFunc        func(ctx context.Context, updates []database.OrderUpdate) error
}

func (m *mockProjectStore) FindAll(ctx context.Context) ([]*models.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectStore) FindByCategory(ctx context.Context, category models.Category) ([]*models.Project, error) {
	if m.FindByCategoryFunc != nil {
		return m.FindByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockProjectStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectStore) Add(ctx context.Context, project *models.Project) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, project)
	}
	// Mirror the real repository: id, timestamp and default order are
	// assigned on insert.
	project.ID = primitive.NewObjectID()
	project.CreatedAt = time.Now().UTC()
	project.DisplayOrder = 0
	return nil
}

func (m *mockProjectStore) Replace(ctx context.Context, project *models.Project) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, project)
	}
	return nil
}

func (m *mockProjectStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectStore) Reorder(ctx context.Context, updates []database.OrderUpdate) error {
	if m.ReorderFunc != nil {
		return m.ReorderFunc(ctx, updates)
	}
	return nil
}

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error {
	return s.err
}

// newTestRouter builds the real router with an ephemeral local store so
// image URLs take the API-served form.
func newTestRouter(t *testing.T, projects ProjectStore) (*chi.Mux, *storage.LocalStore) {
	t.Helper()
	images, err := storage.NewLocalStore(t.TempDir(), true)
	if err != nil {
		t.Fatal(err)
	}
	router := newRouter(projects, images, stubPinger{}, withConfig(map[string]string{
		"AUTH_SECRET": testSecret,
	}))
	return router, images
}

func authToken(t *testing.T, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

// multipartBody assembles a multipart form with optional text fields and
// at most one file part.
func multipartBody(t *testing.T, fields map[string]string, filename, fileContentType string, fileBytes []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, imageFormField, filename))
		header.Set("Content-Type", fileContentType)
		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(fileBytes); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func projectFields() map[string]string {
	return map[string]string{
		"title":       "Harbor Lights",
		"description": "Oil on canvas",
		"category":    "Artwork",
		"subcategory": "Painting",
		"createdDate": "March 2024",
	}
}
