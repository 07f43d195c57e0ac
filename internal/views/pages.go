package views

import (
	"studio/internal/catalog"
	"studio/pkg/types"
)

// Messages shown in error variants.
const (
	MsgSystemFailed = "Failed to load system info"
	MsgModelsFailed = "Failed to load models"
	MsgHealthFailed = "Backend unreachable"
	MsgEchoFailed   = "Echo request failed"
	MsgStatusFailed = "Failed to load training status"
)

// EchoView is the connectivity-test widget on the home page.
type EchoView struct {
	Text   string
	Result Panel[types.EchoResponse]
}

// HomeView is the home page state.
type HomeView struct {
	Nav    Nav
	Health Panel[types.HealthStatus]
	System Panel[types.SystemInfo]
	Models Panel[[]types.Model]
	Echo   EchoView
}

// NewHomeView returns an unmounted home page.
func NewHomeView() *HomeView {
	return &HomeView{Nav: NewNav(PageHome)}
}

// Connected reports whether the health check succeeded.
func (v *HomeView) Connected() bool { return v.Health.Ok() }

// TrainingView is the training-configuration page state.
type TrainingView struct {
	Nav Nav
	// Config is the coerced configuration shown in the preview and submitted.
	Config types.TrainingConfig
	Form   TrainingForm
	Models []types.Model
	// ModelsFallback is set when the catalog call failed and the built-in
	// list is offered instead.
	ModelsFallback bool
	Datasets       []Option
	Fields         []NumericField
	// Result is the outcome of the last submit; nil before any submit.
	Result  *types.TrainingStatus
	Backend Panel[types.TrainingStatus]
}

// NewTrainingView returns an unmounted training page holding cfg.
func NewTrainingView(cfg types.TrainingConfig) *TrainingView {
	v := &TrainingView{
		Nav:      NewNav(PageTraining),
		Config:   cfg,
		Form:     FormFromConfig(cfg),
		Datasets: DatasetOptions(),
		Fields:   NumericFields(),
	}
	v.setOptions(catalog.Default())
	return v
}

// SetModels installs the model options from a getModels result. On
// failure, or when the backend returns none, the built-in catalog stays.
func (v *TrainingView) SetModels(ms []types.Model, err error) {
	if err != nil || len(ms) == 0 {
		v.setOptions(catalog.Default())
		v.ModelsFallback = err != nil
		return
	}
	v.setOptions(ms)
	v.ModelsFallback = false
}

// setOptions installs the model options. A configured model that is not in
// ms is listed too, so the select shows what the preview and the next
// submit carry.
func (v *TrainingView) setOptions(ms []types.Model) {
	id := v.Config.ModelName
	if id == "" {
		v.Models = ms
		return
	}
	for _, m := range ms {
		if m.ID == id {
			v.Models = ms
			return
		}
	}
	out := make([]types.Model, 0, len(ms)+1)
	out = append(out, types.Model{ID: id, Name: id})
	v.Models = append(out, ms...)
}

// SetResult records the outcome of a startTraining call. A failed call is
// shown as an error status carrying the error message.
func (v *TrainingView) SetResult(st types.TrainingStatus, err error) {
	if err != nil {
		st = types.TrainingStatus{Status: types.TrainingError, Message: err.Error()}
	}
	v.Result = &st
}
