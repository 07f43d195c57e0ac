package httpapi

import (
	"bytes"
	"context"
	"io"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"studio/internal/apiclient"
	"studio/internal/views"
)

// pages renders the front-end. local serves same-origin backend calls
// without touching the network.
type pages struct {
	cfg    Config
	render *views.Renderer
	local  *http.Client
}

// clientFor returns a backend client for one page request. With no
// configured base the calls go to this server's own /api routes. The
// request's Host and forwarding headers are never used as a target.
func (p *pages) clientFor(r *http.Request) *apiclient.Client {
	base, hc := p.cfg.APIBase, p.cfg.HTTPClient
	if base == "" {
		base, hc = inProcessBase, p.local
	}
	return apiclient.New(base,
		apiclient.WithHTTPClient(hc),
		apiclient.WithTimeout(p.cfg.APITimeout),
		apiclient.WithLogger(clientLogger()),
	)
}

// failed logs a panel error and counts it. Canceled calls are not errors.
func failed(r *http.Request, page, panel string, err error) {
	if err == nil {
		return
	}
	if apiclient.IsCanceled(err) && (r.Context().Err() != nil || serverBaseCtx.Err() != nil) {
		return
	}
	countPanelError(page, panel)
	ev := logAt(r, LevelWarn).Str("page", page).Str("panel", panel).Str("kind", errorKind(err))
	if code, ok := apiclient.IsStatus(err); ok {
		ev = ev.Int("status", code)
	}
	ev.Err(err).Msg("backend call failed")
}

// mountHome loads the three home panels concurrently.
func (p *pages) mountHome(ctx context.Context, r *http.Request, c *apiclient.Client, v *views.HomeView) {
	v.Health.Begin()
	v.System.Begin()
	v.Models.Begin()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		h, err := c.Health(ctx)
		v.Health.Resolve(h, err, views.MsgHealthFailed)
		failed(r, views.PageHome, "health", err)
	}()
	go func() {
		defer wg.Done()
		s, err := c.SystemInfo(ctx)
		v.System.Resolve(s, err, views.MsgSystemFailed)
		failed(r, views.PageHome, "system", err)
	}()
	go func() {
		defer wg.Done()
		m, err := c.Models(ctx)
		v.Models.Resolve(m.Models, err, views.MsgModelsFailed)
		failed(r, views.PageHome, "models", err)
	}()
	wg.Wait()
}

func (p *pages) home(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := pageContext(r)
	defer cancel()

	v := views.NewHomeView()
	p.mountHome(ctx, r, p.clientFor(r), v)
	p.write(ctx, w, r, http.StatusOK, func(buf io.Writer) error { return p.render.RenderHome(buf, v) })
}

// echo re-renders the home page with the result of an echo round-trip.
// Blank input sends nothing.
func (p *pages) echo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	ctx, cancel := pageContext(r)
	defer cancel()

	c := p.clientFor(r)
	v := views.NewHomeView()
	v.Echo.Text = r.PostForm.Get("text")

	var wg sync.WaitGroup
	if strings.TrimSpace(v.Echo.Text) != "" {
		v.Echo.Result.Begin()
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := c.Echo(ctx, v.Echo.Text)
			v.Echo.Result.Resolve(res, err, views.MsgEchoFailed)
			failed(r, views.PageHome, "echo", err)
		}()
	}
	p.mountHome(ctx, r, c, v)
	wg.Wait()
	p.write(ctx, w, r, http.StatusOK, func(buf io.Writer) error { return p.render.RenderHome(buf, v) })
}

// mountTraining loads the model options and the backend job status.
func (p *pages) mountTraining(ctx context.Context, r *http.Request, c *apiclient.Client, v *views.TrainingView) {
	v.Backend.Begin()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		m, err := c.Models(ctx)
		v.SetModels(m.Models, err)
		failed(r, views.PageTraining, "models", err)
	}()
	go func() {
		defer wg.Done()
		st, err := c.TrainingStatus(ctx)
		v.Backend.Resolve(st, err, views.MsgStatusFailed)
		failed(r, views.PageTraining, "status", err)
	}()
	wg.Wait()
}

// training shows the form. Query parameters (the home page's model links)
// prefill it.
func (p *pages) training(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := pageContext(r)
	defer cancel()

	cfg, form := views.ParseTrainingForm(r.URL.Query(), views.DefaultTrainingConfig())
	v := views.NewTrainingView(cfg)
	v.Form = form
	p.mountTraining(ctx, r, p.clientFor(r), v)
	p.write(ctx, w, r, http.StatusOK, func(buf io.Writer) error { return p.render.RenderTraining(buf, v) })
}

// submitTraining coerces the form and starts a job. An invalid form is
// re-rendered with field errors and nothing is sent.
func (p *pages) submitTraining(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	ctx, cancel := pageContext(r)
	defer cancel()

	c := p.clientFor(r)
	cfg, form := views.ParseTrainingForm(r.PostForm, views.DefaultTrainingConfig())
	v := views.NewTrainingView(cfg)
	v.Form = form

	status := http.StatusOK
	if !form.Valid() {
		status = http.StatusUnprocessableEntity
		logAt(r, LevelInfo).Interface("errors", form.Errors).Msg("training form rejected")
	} else {
		st, err := c.StartTraining(ctx, cfg)
		v.SetResult(st, err)
		failed(r, views.PageTraining, "start", err)
		if err == nil {
			logAt(r, LevelInfo).Str("job_id", st.JobID).Str("status", st.Status).Msg("training submitted")
		}
	}
	p.mountTraining(ctx, r, c, v)
	p.write(ctx, w, r, status, func(buf io.Writer) error { return p.render.RenderTraining(buf, v) })
}

// write renders into a buffer and sends it. Nothing is written once the
// browser has gone; a page cut short by shutdown gets a 503.
func (p *pages) write(ctx context.Context, w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	if r.Context().Err() != nil {
		logAt(r, LevelDebug).Msg("page render abandoned")
		return
	}
	if abandoned(ctx) {
		logAt(r, LevelInfo).Msg("page render interrupted by shutdown")
		w.Header().Set("Connection", "close")
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logAt(r, LevelError).Err(err).Msg("render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// ready probes the backend health endpoint.
func (p *pages) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := pageContext(r)
	defer cancel()
	h, err := p.clientFor(r).Health(ctx)
	if err != nil {
		failed(r, "readyz", "health", err)
		msg := "backend unavailable"
		var sc statusCoder
		if errors.As(err, &sc) {
			msg = fmt.Sprintf("%s: upstream status %d", msg, sc.StatusCode())
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(msg))
		return
	}
	logAt(r, LevelDebug).Str("backend_status", h.Status).Msg("ready")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
