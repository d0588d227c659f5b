package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/budgetbrew/budgetbrew-server/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
)

// StaticHandlerTest serves a throwaway public tree.
type StaticHandlerTest struct {
	suite.Suite
	dir    string
	router chi.Router
}

func TestStaticHandler(t *testing.T) {
	suite.Run(t, new(StaticHandlerTest))
}

func (s *StaticHandlerTest) SetupTest() {
	s.dir = s.T().TempDir()
	s.write("index.html", "<h1>BudgetBrew</h1>")
	s.write("css/app.css", "body{}")
	s.write("images/logo.png", "png-bytes")
	s.write("docs/index.html", "docs")
	s.Require().NoError(os.MkdirAll(filepath.Join(s.dir, "empty"), 0o755))

	h := NewStaticHandler(&config.Config{
		PublicDir: s.dir,
		ImagesDir: filepath.Join(s.dir, "images"),
	})
	r := chi.NewRouter()
	h.Routes(r)
	r.NotFound(h.ServeAsset)
	s.router = r
}

func (s *StaticHandlerTest) write(rel, content string) {
	p := filepath.Join(s.dir, rel)
	s.Require().NoError(os.MkdirAll(filepath.Dir(p), 0o755))
	s.Require().NoError(os.WriteFile(p, []byte(content), 0o644))
}

func (s *StaticHandlerTest) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// TestIndex serves the root document at "/".
func (s *StaticHandlerTest) TestIndex() {
	rec := s.do(http.MethodGet, "/")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("<h1>BudgetBrew</h1>", rec.Body.String())
	s.Contains(rec.Header().Get("Content-Type"), "text/html")
}

// TestIndexMissing answers 404 when the bundle has no root document.
func (s *StaticHandlerTest) TestIndexMissing() {
	s.Require().NoError(os.Remove(filepath.Join(s.dir, "index.html")))
	rec := s.do(http.MethodGet, "/")
	s.Equal(http.StatusNotFound, rec.Code)
}

// TestImages serves files from the images mount.
func (s *StaticHandlerTest) TestImages() {
	rec := s.do(http.MethodGet, "/images/logo.png")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("png-bytes", rec.Body.String())

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/images/missing.png").Code)
}

// TestImagesSeparateDir mounts an images directory outside the public root.
func (s *StaticHandlerTest) TestImagesSeparateDir() {
	other := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(other, "avatar.png"), []byte("avatar"), 0o644))

	h := NewStaticHandler(&config.Config{PublicDir: s.dir, ImagesDir: other})
	r := chi.NewRouter()
	h.Routes(r)
	req := httptest.NewRequest(http.MethodGet, "/images/avatar.png", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("avatar", rec.Body.String())
}

// TestAssets serves arbitrary files under the public root.
func (s *StaticHandlerTest) TestAssets() {
	rec := s.do(http.MethodGet, "/css/app.css")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("body{}", rec.Body.String())

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/js/missing.js").Code)
}

// TestNoDirectoryListing hides directories without an index document.
func (s *StaticHandlerTest) TestNoDirectoryListing() {
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/empty/").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/css/").Code)

	rec := s.do(http.MethodGet, "/docs/")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("docs", rec.Body.String())
}

// TestAssetsReadOnly refuses non-GET methods on the asset fallback.
func (s *StaticHandlerTest) TestAssetsReadOnly() {
	s.Equal(http.StatusNotFound, s.do(http.MethodPost, "/css/app.css").Code)
	s.Equal(http.StatusOK, s.do(http.MethodHead, "/css/app.css").Code)
}

// TestIndexDocumentByName serves index.html paths without redirecting.
func (s *StaticHandlerTest) TestIndexDocumentByName() {
	rec := s.do(http.MethodGet, "/index.html")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("<h1>BudgetBrew</h1>", rec.Body.String())
	s.Contains(rec.Header().Get("Content-Type"), "text/html")

	rec = s.do(http.MethodGet, "/docs/index.html")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("docs", rec.Body.String())

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/css/index.html").Code)
}
