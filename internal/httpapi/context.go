package httpapi

import (
	"context"
	"net/http"
)

// serverBaseCtx is canceled on shutdown. Defaults to Background if not set.
var serverBaseCtx = context.Background()

// SetBaseContext sets the process-level base context used by handlers.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// joinContexts returns a child of a that is also canceled when b is done.
// Values (request id) come from a. The cancel func must be called when the
// handler ends.
func joinContexts(a, b context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(a)
	stop := context.AfterFunc(b, func() { cancel(context.Cause(b)) })
	return ctx, func() {
		stop()
		cancel(context.Canceled)
	}
}

// pageContext scopes backend calls to the lifetime of one page render: a
// disconnecting browser or server shutdown aborts them.
func pageContext(r *http.Request) (context.Context, context.CancelFunc) {
	return joinContexts(r.Context(), serverBaseCtx)
}

// abandoned reports whether the page render was canceled and nothing
// should be written.
func abandoned(ctx context.Context) bool { return ctx.Err() != nil }
