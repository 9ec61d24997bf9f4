// Package site serves the design token catalog on the ops listener.
package site

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/edgegate/pkg/logger"
	"github.com/okian/edgegate/pkg/tokens"
)

// Error constants
var (
	ErrRender = errors.New("token render failed")
)

// Register attaches the token catalog routes to mux.
// Routes:
//
//	GET /tokens             -> full catalog (JSON, or YAML with ?format=yaml)
//	GET /tokens/{path...}   -> one group or leaf by dotted path
//	GET /tokens.css         -> every leaf as a CSS custom property
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	h := NewTokensHandler()
	mux.HandleFunc("GET /tokens", h.HandleCatalog)
	mux.HandleFunc("GET /tokens/{path...}", h.HandleLookup)
	mux.HandleFunc("GET /tokens.css", h.HandleCSS)
}

// TokensHandler renders the catalog in the requested format.
type TokensHandler struct {
	log logger.Logger
}

// NewTokensHandler creates a new tokens handler
func NewTokensHandler() *TokensHandler {
	return &TokensHandler{log: logger.Named("site")}
}

// HandleCatalog handles GET /tokens.
func (h *TokensHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, tokens.Default())
}

// HandleLookup handles GET /tokens/{path...}. Slashes and dots both separate
// segments, so /tokens/colors/brand and /tokens/colors.brand are equivalent.
func (h *TokensHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	path := strings.ReplaceAll(strings.Trim(r.PathValue("path"), "/"), "/", tokens.Delimiter)
	v, err := tokens.Lookup(path)
	if errors.Is(err, tokens.ErrUnknownPath) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, v)
}

// HandleCSS handles GET /tokens.css.
func (h *TokensHandler) HandleCSS(w http.ResponseWriter, r *http.Request) {
	css, err := tokens.CSS()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(css))
}

func (h *TokensHandler) render(w http.ResponseWriter, r *http.Request, v any) {
	if r.URL.Query().Get("format") != "yaml" {
		writeJSON(w, http.StatusOK, v)
		return
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	_, _ = w.Write(out)
}

func (h *TokensHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error(r.Context(), "failed to render tokens",
		logger.String("path", r.URL.Path),
		logger.Error(errors.Join(ErrRender, err)))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
