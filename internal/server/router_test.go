package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidra-al/Double-H-Portfolio/internal/config"
	"github.com/sidra-al/Double-H-Portfolio/internal/server"
	"github.com/sidra-al/Double-H-Portfolio/internal/testutil"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testutil.NewConfig(t)
	return server.New(cfg), cfg
}

func TestHealth(t *testing.T) {
	testutil.OpenDB(t)
	r, _ := newServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"status":"ok"`)
}

// Seed admin -> login -> verify, end to end through the real router.
func TestLoginVerifyEndToEnd(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.SeedAdmin(t, db)
	r, _ := newServer(t)

	body := bytes.NewBufferString(`{"username":"admin","password":"admin123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Token)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+data.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

// Create a project with two images, then fetch one back through the
// static /uploads route.
func TestCreateProjectAndServeImage(t *testing.T) {
	testutil.OpenDB(t)
	r, cfg := newServer(t)

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("name", "X"))
	require.NoError(t, mw.WriteField("description", "Y"))
	for _, name := range []string{"a.png", "b.png"} {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, name))
		h.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("content-of-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var rec struct {
		Images []string `json:"images"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &rec))
	require.Len(t, rec.Images, 2)
	for _, img := range rec.Images {
		assert.True(t, strings.HasPrefix(img, "/uploads/projects/"), img)
	}

	// The file exists under the upload root and is served read-only.
	onDisk := filepath.Join(cfg.UploadDir, strings.TrimPrefix(rec.Images[0], "/uploads/"))
	_, err := os.Stat(onDisk)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, rec.Images[0], nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "content-of-a.png", w.Body.String())
}

func TestCORSLenientOutsideProduction(t *testing.T) {
	testutil.OpenDB(t)
	r, _ := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://anywhere.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSStrictInProduction(t *testing.T) {
	testutil.OpenDB(t)
	gin.SetMode(gin.TestMode)

	cfg := testutil.NewConfig(t)
	cfg.AppEnv = "production"
	cfg.AllowedOrigins = []string{"https://admin.example.com"}
	r := server.New(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "https://evil.example.com")
}

func TestCORSPreflight(t *testing.T) {
	testutil.OpenDB(t)
	r, _ := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/projects", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestNoOriginHeaderPassesThrough(t *testing.T) {
	testutil.OpenDB(t)
	gin.SetMode(gin.TestMode)

	cfg := testutil.NewConfig(t)
	cfg.AppEnv = "production"
	cfg.AllowedOrigins = []string{"https://admin.example.com"}
	r := server.New(cfg)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorDetailHiddenInProduction(t *testing.T) {
	testutil.OpenDB(t)
	gin.SetMode(gin.TestMode)

	cfg := testutil.NewConfig(t)
	cfg.AppEnv = "production"
	r := server.New(cfg)

	// Login with a bad body: the failure envelope carries the message only.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotContains(t, resp, "error")
}
