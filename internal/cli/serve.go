package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"studio/internal/catalog"
	"studio/internal/config"
	"studio/internal/demoapi"
	"studio/internal/httpapi"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Run the web front-end",
		Example: "  studio serve --addr :8000\n  studio serve --api-base http://gpu-box:8000 --demo-api=false",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ln, err := net.Listen("tcp", o.cfg.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", o.cfg.Addr, err)
			}
			return serve(ctx, o.cfg, ln, o.log)
		},
	}
}

// newHandler wires the front-end router from cfg.
func newHandler(cfg config.Config, log zerolog.Logger) (http.Handler, error) {
	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel(cfg.LogLevel)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)

	hc := httpapi.Config{APIBase: cfg.APIBase, APITimeout: cfg.APITimeout()}
	if cfg.DemoAPIEnabled() {
		models, err := catalog.LoadOrDefault(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		opts := []demoapi.Option{demoapi.WithMaxBodyBytes(cfg.MaxBodyBytes)}
		if cfg.CORSEnabled {
			opts = append(opts, demoapi.WithCORS(cfg.CORSOrigins))
		}
		hc.API = demoapi.New(models, opts...).Routes()
		log.Info().Int("models", len(models)).Msg("demo backend mounted at /api")
	} else if cfg.APIBase == "" {
		log.Warn().Msg("no backend: set api_base or enable the demo API")
	}
	return httpapi.NewMux(hc), nil
}

// serve runs the front-end on ln until ctx is done, then cancels in-flight
// page work and shuts down gracefully.
func serve(ctx context.Context, cfg config.Config, ln net.Listener, log zerolog.Logger) error {
	h, err := newHandler(cfg, log)
	if err != nil {
		_ = ln.Close()
		return err
	}
	base, cancel := context.WithCancel(context.Background())
	defer cancel()
	httpapi.SetBaseContext(base)
	defer httpapi.SetBaseContext(nil)

	srv := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	api := cfg.APIBase
	if api == "" {
		api = "same-origin"
	}
	log.Info().Str("addr", ln.Addr().String()).Str("api_base", api).Msg("studio listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	cancel()
	shCtx, shCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shCancel()
	if err := srv.Shutdown(shCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
