package views

// PanelState is the per-panel lifecycle: idle -> loading -> success|error.
// A retry re-enters loading.
type PanelState string

const (
	StateIdle    PanelState = "idle"
	StateLoading PanelState = "loading"
	StateSuccess PanelState = "success"
	StateError   PanelState = "error"
)

// Panel holds the result of one API call made while mounting a page.
type Panel[T any] struct {
	State PanelState
	Data  T
	// Err is the user-facing message shown in the error variant.
	Err string
}

// Begin moves the panel to loading, discarding any previous result.
func (p *Panel[T]) Begin() {
	var zero T
	p.State, p.Data, p.Err = StateLoading, zero, ""
}

// Resolve settles a loading panel. msg replaces err's text in the view so
// backend details stay in the logs.
func (p *Panel[T]) Resolve(v T, err error, msg string) {
	if err != nil {
		var zero T
		p.State, p.Data, p.Err = StateError, zero, msg
		return
	}
	p.State, p.Data, p.Err = StateSuccess, v, ""
}

// Ok reports whether the call succeeded and Data is set.
func (p Panel[T]) Ok() bool { return p.State == StateSuccess }

// Failed reports whether the panel shows its error variant.
func (p Panel[T]) Failed() bool { return p.State == StateError }

// Pending reports whether the call is still in flight.
func (p Panel[T]) Pending() bool { return p.State == StateLoading }
