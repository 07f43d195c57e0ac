package e2e

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"studio/internal/demoapi"
	"studio/internal/httpapi"
	"studio/pkg/types"
)

// newStudio starts the front-end with the demo backend mounted same-origin.
func newStudio(t *testing.T, models []types.Model, opts ...demoapi.Option) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(httpapi.NewMux(httpapi.Config{API: demoapi.New(models, opts...).Routes()}))
	t.Cleanup(srv.Close)
	return srv
}

// newSplit starts the demo backend and a front-end pointing at it, as two
// separate origins.
func newSplit(t *testing.T, models []types.Model) (front, back *httptest.Server) {
	t.Helper()
	r := chi.NewRouter()
	r.Mount("/api", demoapi.New(models, demoapi.WithCORS([]string{"*"})).Routes())
	back = httptest.NewServer(r)
	t.Cleanup(back.Close)
	front = httptest.NewServer(httpapi.NewMux(httpapi.Config{APIBase: back.URL}))
	t.Cleanup(front.Close)
	return front, back
}

func httpGet(t *testing.T, target string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, target, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, string(body)
}

func httpPostForm(t *testing.T, target string, v url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := http.PostForm(target, v)
	if err != nil {
		t.Fatalf("post form: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, string(body)
}

func mustContain(t *testing.T, body string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(body, p) {
			t.Fatalf("body missing %q:\n%s", p, body)
		}
	}
}
