package httpapi

import (
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is the structured logger of the HTTP layer. Nil disables logging.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "disabled":
		return LevelOff
	case "error":
		return LevelError
	case "warn", "warning":
		return LevelWarn
	case "info", "":
		return LevelInfo
	case "debug", "trace":
		return LevelDebug
	default:
		return LevelInfo
	}
}

var defaultLogLevel = parseLevel(os.Getenv("STUDIO_LOG_LEVEL"))

// SetDefaultLogLevel sets the level used when a request carries no override.
func SetDefaultLogLevel(s string) { defaultLogLevel = parseLevel(s) }

func requestLogLevel(r *http.Request) LogLevel {
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

// logAt returns an event tagged with the request id, or nil when the request
// level is below lvl. A nil *zerolog.Event is a no-op.
func logAt(r *http.Request, lvl LogLevel) *zerolog.Event {
	if zlog == nil || requestLogLevel(r) < lvl {
		return nil
	}
	var ev *zerolog.Event
	switch lvl {
	case LevelError:
		ev = zlog.Error()
	case LevelWarn:
		ev = zlog.Warn()
	case LevelDebug:
		ev = zlog.Debug()
	default:
		ev = zlog.Info()
	}
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		ev = ev.Str("request_id", rid)
	}
	return ev.Str("path", r.URL.Path)
}

// clientLogger is handed to the API client so its debug lines share the
// request's logger.
func clientLogger() zerolog.Logger {
	if zlog == nil {
		return zerolog.Nop()
	}
	return *zlog
}
