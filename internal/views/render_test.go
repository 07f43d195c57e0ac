package views

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio/pkg/types"
)

func renderHome(t *testing.T, v *HomeView) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, MustRenderer().RenderHome(&buf, v))
	return buf.String()
}

func renderTraining(t *testing.T, v *TrainingView) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, MustRenderer().RenderTraining(&buf, v))
	return buf.String()
}

func TestHome_ModelListRendersEntriesInOrder(t *testing.T) {
	v := NewHomeView()
	v.Models.Resolve([]types.Model{
		{ID: "org/zeta", Name: "Zeta 1B", Size: "1.1 GB"},
		{ID: "org/alpha", Name: "Alpha 3B", Size: "2.2 GB"},
	}, nil, MsgModelsFailed)

	out := renderHome(t, v)
	assert.Equal(t, 2, strings.Count(out, `class="tile model"`))
	zeta, alpha := strings.Index(out, "Zeta 1B"), strings.Index(out, "Alpha 3B")
	require.True(t, zeta > 0 && alpha > 0)
	assert.Less(t, zeta, alpha)
	assert.Contains(t, out, `<span class="model-size">1.1 GB</span>`)
	assert.Contains(t, out, `<span class="model-size">2.2 GB</span>`)
}

func TestSystemPanel_GPUNotAvailable(t *testing.T) {
	v := NewHomeView()
	v.System.Resolve(types.SystemInfo{
		Platform: "Linux",
		CPUCount: 8,
		GPU:      types.GPUInfo{Available: false, Devices: []types.GPUDevice{{Name: "Ghost GPU"}}},
	}, nil, MsgSystemFailed)

	out := renderHome(t, v)
	assert.Contains(t, out, "Not Available")
	assert.NotContains(t, out, "Ghost GPU")
	assert.NotContains(t, out, `class="gpu-name"`)
}

func TestSystemPanel_GPUAvailable(t *testing.T) {
	v := NewHomeView()
	v.System.Resolve(types.SystemInfo{
		CPUCount: 0,
		Memory:   types.MemoryInfo{TotalGB: 31.2, PercentUsed: 140},
		GPU:      types.GPUInfo{Available: true, Devices: []types.GPUDevice{{Name: "Tesla T4", MemoryTotalGB: 15.84}}},
	}, nil, MsgSystemFailed)

	out := renderHome(t, v)
	assert.Contains(t, out, `<p class="gpu-name">Tesla T4</p>`)
	assert.Contains(t, out, "15.84 GB VRAM")
	assert.Contains(t, out, `<p class="cpu-count">N/A</p>`)
	assert.Contains(t, out, "width: 100%")
	assert.NotContains(t, out, "Not Available")
}

func TestSystemPanel_ErrorOffersRetry(t *testing.T) {
	v := NewHomeView()
	v.System.Resolve(types.SystemInfo{}, errors.New("HTTP error! status: 500"), MsgSystemFailed)

	out := renderHome(t, v)
	assert.Contains(t, out, MsgSystemFailed)
	assert.Contains(t, out, `class="retry"`)
	assert.NotContains(t, out, "status: 500")
}

func TestHome_StatusBadge(t *testing.T) {
	v := NewHomeView()
	assert.Contains(t, renderHome(t, v), "Connecting...")

	v.Health.Resolve(types.HealthStatus{Status: "healthy"}, nil, MsgHealthFailed)
	out := renderHome(t, v)
	assert.Contains(t, out, "API Connected")
	assert.Contains(t, out, `data-page="home" class="active"`)
}

func TestHome_EchoResult(t *testing.T) {
	v := NewHomeView()
	v.Echo.Text = "hello"
	v.Echo.Result.Resolve(types.EchoResponse{Message: "Hello! You sent: hello", Timestamp: "T"}, nil, MsgEchoFailed)

	out := renderHome(t, v)
	assert.Contains(t, out, `<p class="echo-message">Hello! You sent: hello</p>`)
	assert.Contains(t, out, "Timestamp: T")
	assert.Contains(t, out, `value="hello"`)
}

func TestTraining_IdleAndPreview(t *testing.T) {
	v := NewTrainingView(DefaultTrainingConfig())
	v.Backend.Resolve(types.TrainingStatus{Status: types.TrainingIdle, Message: "No training in progress"}, nil, MsgStatusFailed)

	out := renderTraining(t, v)
	assert.Contains(t, out, "Ready to start training")
	assert.Contains(t, out, "No training in progress")
	assert.Contains(t, out, `&#34;num_epochs&#34;: 3`)
	assert.Contains(t, out, `<option value="unsloth/llama-3-8b-bnb-4bit" selected>`)
	assert.Contains(t, out, `name="num_epochs" value="3" min="1" max="100"`)
	assert.Contains(t, out, `data-page="training" class="active"`)
}

func TestTraining_SubmitResults(t *testing.T) {
	v := NewTrainingView(DefaultTrainingConfig())
	v.SetResult(types.TrainingStatus{Status: types.TrainingStarted, Message: "Training simulation started (this is a demo)", JobID: "job_1"}, nil)
	out := renderTraining(t, v)
	assert.Contains(t, out, "Started")
	assert.Contains(t, out, "Job ID: job_1")

	v.SetResult(types.TrainingStatus{}, errors.New("HTTP error! status: 502"))
	out = renderTraining(t, v)
	assert.Contains(t, out, `data-status="error"`)
	assert.Contains(t, out, "HTTP error! status: 502")
}

func TestTraining_FieldErrorsRendered(t *testing.T) {
	v := NewTrainingView(DefaultTrainingConfig())
	_, v.Form = ParseTrainingForm(map[string][]string{FieldNumEpochs: {"five"}}, v.Config)

	out := renderTraining(t, v)
	assert.Contains(t, out, `data-field="num_epochs"`)
	assert.Contains(t, out, `value="five"`)
	assert.Contains(t, out, "form-errors")
}

func TestTraining_ModelFallback(t *testing.T) {
	v := NewTrainingView(DefaultTrainingConfig())
	v.SetModels(nil, errors.New("down"))
	assert.True(t, v.ModelsFallback)
	assert.Len(t, v.Models, 3)
	assert.Contains(t, renderTraining(t, v), "models-fallback")

	v.SetModels([]types.Model{{ID: DefaultTrainingConfig().ModelName, Name: "Default"}, {ID: "x", Name: "X"}}, nil)
	assert.False(t, v.ModelsFallback)
	assert.Len(t, v.Models, 2)
}

func TestTraining_UnknownModelStaysSelected(t *testing.T) {
	cfg, form := ParseTrainingForm(url.Values{FieldModelName: {"acme/custom-7b"}}, DefaultTrainingConfig())
	v := NewTrainingView(cfg)
	v.Form = form
	v.SetModels([]types.Model{{ID: "x", Name: "X"}}, nil)

	require.Len(t, v.Models, 2)
	assert.Equal(t, "acme/custom-7b", v.Models[0].ID)
	out := renderTraining(t, v)
	assert.Contains(t, out, `<option value="acme/custom-7b" selected>acme/custom-7b</option>`)
	assert.Contains(t, out, `<option value="x">X</option>`)
	assert.Contains(t, out, `&#34;model_name&#34;: &#34;acme/custom-7b&#34;`)
}

func TestRender_UnknownPage(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, MustRenderer().Render(&buf, "settings", nil))
	assert.Zero(t, buf.Len())
}
