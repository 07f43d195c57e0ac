package views

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"studio/internal/catalog"
	"studio/pkg/types"
)

// Training form field names; they match the TrainingConfig JSON keys.
const (
	FieldModelName    = "model_name"
	FieldDataset      = "dataset"
	FieldMaxSeqLength = "max_seq_length"
	FieldLearningRate = "learning_rate"
	FieldNumEpochs    = "num_epochs"
	FieldBatchSize    = "batch_size"
	FieldLoraR        = "lora_r"
	FieldLoraAlpha    = "lora_alpha"
)

// NumericField describes a numeric input. Min, Max and Step are rendered as
// advisory HTML attributes only; ranges are not enforced server-side.
type NumericField struct {
	Name  string
	Label string
	Min   string
	Max   string
	Step  string
}

// NumericFields lists the numeric inputs in display order.
func NumericFields() []NumericField {
	return []NumericField{
		{Name: FieldMaxSeqLength, Label: "Max Sequence Length"},
		{Name: FieldLearningRate, Label: "Learning Rate", Step: "0.0001"},
		{Name: FieldNumEpochs, Label: "Number of Epochs", Min: "1", Max: "100"},
		{Name: FieldBatchSize, Label: "Batch Size", Min: "1", Max: "64"},
		{Name: FieldLoraR, Label: "LoRA Rank (r)", Min: "4", Max: "128"},
		{Name: FieldLoraAlpha, Label: "LoRA Alpha", Min: "4", Max: "128"},
	}
}

// Option is a select entry.
type Option struct {
	Value string
	Label string
}

// DatasetOptions lists the selectable datasets.
func DatasetOptions() []Option {
	return []Option{
		{Value: "alpaca", Label: "Alpaca (52k samples)"},
		{Value: "dolly", Label: "Dolly (15k samples)"},
		{Value: "custom", Label: "Custom Dataset"},
	}
}

// DefaultTrainingConfig is the initial form state.
func DefaultTrainingConfig() types.TrainingConfig {
	return types.TrainingConfig{
		ModelName:    catalog.Default()[0].ID,
		Dataset:      "alpaca",
		MaxSeqLength: 2048,
		LearningRate: 2e-4,
		NumEpochs:    3,
		BatchSize:    4,
		LoraR:        16,
		LoraAlpha:    16,
	}
}

// TrainingForm is the form state as the user typed it, plus per-field
// errors from the last coercion.
type TrainingForm struct {
	Values map[string]string
	Errors map[string]string
}

// Valid reports whether the last coercion produced no errors.
func (f TrainingForm) Valid() bool { return len(f.Errors) == 0 }

// Value returns the raw value of a field.
func (f TrainingForm) Value(name string) string { return f.Values[name] }

// Error returns the error message of a field, if any.
func (f TrainingForm) Error(name string) string { return f.Errors[name] }

// FormFromConfig renders cfg as form values.
func FormFromConfig(cfg types.TrainingConfig) TrainingForm {
	return TrainingForm{Values: map[string]string{
		FieldModelName:    cfg.ModelName,
		FieldDataset:      cfg.Dataset,
		FieldMaxSeqLength: strconv.Itoa(cfg.MaxSeqLength),
		FieldLearningRate: strconv.FormatFloat(cfg.LearningRate, 'g', -1, 64),
		FieldNumEpochs:    strconv.Itoa(cfg.NumEpochs),
		FieldBatchSize:    strconv.Itoa(cfg.BatchSize),
		FieldLoraR:        strconv.Itoa(cfg.LoraR),
		FieldLoraAlpha:    strconv.Itoa(cfg.LoraAlpha),
	}}
}

// ParseTrainingForm coerces submitted form values into a TrainingConfig.
// Fields missing from v keep their value from base; fields present but
// blank or not a number are reported in the returned form's Errors. The
// returned config is only meaningful when the form is Valid.
func ParseTrainingForm(v url.Values, base types.TrainingConfig) (types.TrainingConfig, TrainingForm) {
	cfg := base
	form := FormFromConfig(base)
	form.Errors = map[string]string{}

	text := func(name string, dst *string) {
		if _, ok := v[name]; !ok {
			return
		}
		raw := strings.TrimSpace(v.Get(name))
		form.Values[name] = raw
		if raw == "" {
			form.Errors[name] = "required"
			return
		}
		*dst = raw
	}
	integer := func(name string, dst *int) {
		if _, ok := v[name]; !ok {
			return
		}
		raw := strings.TrimSpace(v.Get(name))
		form.Values[name] = raw
		if raw == "" {
			form.Errors[name] = "required"
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			form.Errors[name] = "must be a whole number"
			return
		}
		*dst = n
	}
	float := func(name string, dst *float64) {
		if _, ok := v[name]; !ok {
			return
		}
		raw := strings.TrimSpace(v.Get(name))
		form.Values[name] = raw
		if raw == "" {
			form.Errors[name] = "required"
			return
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			form.Errors[name] = "must be a number"
			return
		}
		*dst = f
	}

	text(FieldModelName, &cfg.ModelName)
	text(FieldDataset, &cfg.Dataset)
	integer(FieldMaxSeqLength, &cfg.MaxSeqLength)
	float(FieldLearningRate, &cfg.LearningRate)
	integer(FieldNumEpochs, &cfg.NumEpochs)
	integer(FieldBatchSize, &cfg.BatchSize)
	integer(FieldLoraR, &cfg.LoraR)
	integer(FieldLoraAlpha, &cfg.LoraAlpha)
	return cfg, form
}
