package httpapi

import (
	"net/http"
	"time"

	"studio/internal/views"
)

// Config wires the front-end router.
type Config struct {
	// APIBase is the backend base URL. Empty means same-origin.
	APIBase string
	// APITimeout bounds each backend call; 0 means only the page lifetime.
	APITimeout time.Duration
	// HTTPClient is used for backend calls; nil means http.DefaultClient.
	HTTPClient *http.Client
	// API is mounted under /api when non-nil (the demo backend).
	API http.Handler
	// Renderer defaults to the embedded templates.
	Renderer *views.Renderer
}

// maxBodyBytes caps form submissions. Default is 1 MiB.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes configures the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}
