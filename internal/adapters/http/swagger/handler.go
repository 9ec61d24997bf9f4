// Package swagger documents the public router on the ops listener: the
// embedded OpenAPI document and a ReDoc page that renders it.
package swagger

import (
	"bytes"
	"context"
	_ "embed"
	"net/http"
	"time"
)

// Ops routes served by Register.
const (
	DocsPath = "/api-docs"
	SpecPath = "/openapi.yaml"
)

// RedocScriptURL is the ReDoc bundle loaded by the docs page.
const RedocScriptURL = "https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"

// OpenAPI is the OpenAPI 3 document of the public router.
//
//go:embed openapi.yaml
var OpenAPI []byte

// loadedAt stands in for the document's modification time so conditional
// requests against SpecPath can be answered with 304.
var loadedAt = time.Now().UTC().Truncate(time.Second)

// Register mounts GET DocsPath and GET SpecPath on mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("GET "+DocsPath, serveDocs)
	mux.HandleFunc("GET "+SpecPath, serveSpec)
}

func serveDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(docsPage))
}

func serveSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	http.ServeContent(w, r, "openapi.yaml", loadedAt, bytes.NewReader(OpenAPI))
}

const docsPage = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>edgegate API Docs</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="redoc-container"></redoc>
    <script src="` + RedocScriptURL + `"></script>
    <script>Redoc.init('` + SpecPath + `', { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`
