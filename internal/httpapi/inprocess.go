package httpapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// inProcessBase is the base URL of same-origin backend calls. The host is
// never dialed: handlerTransport answers every request in-process.
const inProcessBase = "http://studio.internal"

// apiRoutes is the /api subtree this server exposes: the mounted backend,
// or a JSON 404 for every path.
func apiRoutes(api http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if api != nil {
		r.Mount("/api", api)
	} else {
		r.HandleFunc("/api/*", apiNotFound)
	}
	return r
}

func apiNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusNotFound, "API endpoint not found")
}

// handlerTransport is a RoundTripper that serves requests with h instead of
// the network.
type handlerTransport struct{ h http.Handler }

func (t handlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		defer req.Body.Close()
	}
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	in := req.Clone(req.Context())
	if in.Body == nil {
		in.Body = http.NoBody
	}
	in.RequestURI = req.URL.RequestURI()
	in.RemoteAddr = "127.0.0.1:0"

	buf := &responseBuffer{header: make(http.Header)}
	t.h.ServeHTTP(buf, in)
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	return buf.response(req), nil
}

// responseBuffer collects a handler's response in memory.
type responseBuffer struct {
	header http.Header
	code   int
	body   bytes.Buffer
}

func (b *responseBuffer) Header() http.Header { return b.header }

func (b *responseBuffer) WriteHeader(code int) {
	if b.code == 0 {
		b.code = code
	}
}

func (b *responseBuffer) Write(p []byte) (int, error) {
	if b.code == 0 {
		b.code = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *responseBuffer) response(req *http.Request) *http.Response {
	code := b.code
	if code == 0 {
		code = http.StatusOK
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", code, http.StatusText(code)),
		StatusCode:    code,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        b.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(b.body.Bytes())),
		ContentLength: int64(b.body.Len()),
		Request:       req,
	}
}
