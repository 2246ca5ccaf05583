package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/photodrop-app/photodrop-backend/internal/middleware"
	"github.com/photodrop-app/photodrop-backend/internal/models"
	"github.com/photodrop-app/photodrop-backend/internal/repository"
	"github.com/photodrop-app/photodrop-backend/internal/service"
	"github.com/photodrop-app/photodrop-backend/pkg/database"
	"github.com/photodrop-app/photodrop-backend/pkg/storage"
	"github.com/photodrop-app/photodrop-backend/pkg/token"
	"github.com/photodrop-app/photodrop-backend/pkg/utils"
)

// testEnv wires the real handler/service/repository chain against an
// in-memory sqlite database and a temp upload directory.
type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	tokens    *token.Manager
	uploadDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	uploadDir := t.TempDir()
	store, err := storage.NewLocalStorage(uploadDir, "/uploads")
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}

	tokens := token.NewManager("test-secret", "phototest")
	logger := zap.NewNop()

	userRepo := repository.NewUserRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	authService := service.NewAuthService(userRepo, tokens, logger)
	photoService := service.NewPhotoService(photoRepo, store, logger)
	validator := utils.NewValidator()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // matches cmd/api, above the 5 MiB photo cap
	})
	RegisterRoutes(app,
		NewAuthHandler(authService, validator),
		NewPhotoHandler(photoService),
		middleware.AuthMiddleware(tokens, userRepo),
	)

	return &testEnv{
		app:       app,
		db:        db,
		tokens:    tokens,
		uploadDir: uploadDir,
	}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}, bearer string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// uploadImage posts a multipart body with an "image" part carrying the
// given content type, plus optional extra form fields.
func (e *testEnv) uploadImage(t *testing.T, bearer, filename, contentType string, content []byte, fields map[string]string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, "/upload", &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body models.ErrorBody
	decodeJSON(t, resp, &body)
	return body.Error
}

// signup registers a user and returns a valid bearer token for it.
func (e *testEnv) signup(t *testing.T, name, email, password string) string {
	t.Helper()

	resp := e.doJSON(t, http.MethodPost, "/auth/signup", models.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup returned %d, want 201", resp.StatusCode)
	}

	var body models.AuthResponse
	decodeJSON(t, resp, &body)
	if body.Token == "" {
		t.Fatal("signup returned empty token")
	}
	return body.Token
}
