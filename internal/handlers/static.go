package handlers

import (
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/budgetbrew/budgetbrew-server/internal/config"
	"github.com/go-chi/chi/v5"
)

const indexPage = "index.html"

// StaticHandler serves the front-end bundle from the public directory and
// images from their own mount.
type StaticHandler struct {
	public fileHandler
	images http.Handler
}

// NewStaticHandler creates a StaticHandler rooted at cfg.PublicDir, with
// cfg.ImagesDir mounted at /images.
func NewStaticHandler(cfg *config.Config) *StaticHandler {
	return &StaticHandler{
		public: newFileHandler(http.Dir(cfg.PublicDir)),
		images: http.StripPrefix("/images", newFileHandler(http.Dir(cfg.ImagesDir))),
	}
}

// Routes registers the root document and the images mount. Everything else
// reaches ServeAsset through the router's NotFound hook.
func (h *StaticHandler) Routes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/images/*", h.images.ServeHTTP)
}

// Index returns the root document.
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.public.serveFile(w, r, "/"+indexPage)
}

// ServeAsset serves any file under the public directory. Only GET and HEAD
// are answered; other methods get a 404 like a missing file.
func (h *StaticHandler) ServeAsset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	h.public.ServeHTTP(w, r)
}

// fileHandler wraps http.FileServer. Requests naming an index document are
// served as-is instead of being redirected to their directory.
type fileHandler struct {
	fs     http.FileSystem
	server http.Handler
}

func newFileHandler(root http.FileSystem) fileHandler {
	fs := noListingFS{root}
	return fileHandler{fs: fs, server: http.FileServer(fs)}
}

func (h fileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/"+indexPage) {
		h.serveFile(w, r, r.URL.Path)
		return
	}
	h.server.ServeHTTP(w, r)
}

func (h fileHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	f, err := h.fs.Open(path.Clean(name))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// noListingFS hides directories that have no index.html, so the file server
// answers 404 instead of rendering a listing.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}

	index, err := n.fs.Open(path.Join(name, indexPage))
	if err != nil {
		f.Close()
		return nil, os.ErrNotExist
	}
	index.Close()
	return f, nil
}
