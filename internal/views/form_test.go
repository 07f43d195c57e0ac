package views

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrainingForm_CoercesNumericStrings(t *testing.T) {
	v := url.Values{
		FieldModelName:    {"unsloth/mistral-7b-bnb-4bit"},
		FieldDataset:      {"dolly"},
		FieldMaxSeqLength: {"4096"},
		FieldLearningRate: {"0.0001"},
		FieldNumEpochs:    {"5"},
		FieldBatchSize:    {" 8 "},
		FieldLoraR:        {"32"},
		FieldLoraAlpha:    {"64"},
	}
	cfg, form := ParseTrainingForm(v, DefaultTrainingConfig())
	require.True(t, form.Valid(), "errors: %v", form.Errors)
	assert.Equal(t, "unsloth/mistral-7b-bnb-4bit", cfg.ModelName)
	assert.Equal(t, "dolly", cfg.Dataset)
	assert.Equal(t, 4096, cfg.MaxSeqLength)
	assert.Equal(t, 1e-4, cfg.LearningRate)
	assert.Equal(t, 5, cfg.NumEpochs)
	assert.Equal(t, 8, cfg.BatchSize)
	assert.Equal(t, 32, cfg.LoraR)
	assert.Equal(t, 64, cfg.LoraAlpha)
	assert.Equal(t, "8", form.Value(FieldBatchSize))
}

func TestParseTrainingForm_MissingFieldsKeepBase(t *testing.T) {
	base := DefaultTrainingConfig()
	cfg, form := ParseTrainingForm(url.Values{FieldNumEpochs: {"7"}}, base)
	require.True(t, form.Valid())
	assert.Equal(t, 7, cfg.NumEpochs)
	base.NumEpochs = 7
	assert.Equal(t, base, cfg)
}

func TestParseTrainingForm_ReportsBadValues(t *testing.T) {
	v := url.Values{
		FieldModelName:    {"  "},
		FieldNumEpochs:    {"five"},
		FieldBatchSize:    {"2.5"},
		FieldLearningRate: {"NaN"},
		FieldLoraR:        {""},
	}
	_, form := ParseTrainingForm(v, DefaultTrainingConfig())
	assert.False(t, form.Valid())
	assert.Equal(t, "required", form.Error(FieldModelName))
	assert.Equal(t, "must be a whole number", form.Error(FieldNumEpochs))
	assert.Equal(t, "must be a whole number", form.Error(FieldBatchSize))
	assert.Equal(t, "must be a number", form.Error(FieldLearningRate))
	assert.Equal(t, "required", form.Error(FieldLoraR))
	assert.Empty(t, form.Error(FieldLoraAlpha))
	// raw input is echoed back for correction
	assert.Equal(t, "five", form.Value(FieldNumEpochs))
}

func TestParseTrainingForm_RangesAreAdvisory(t *testing.T) {
	cfg, form := ParseTrainingForm(url.Values{FieldNumEpochs: {"1000"}, FieldLoraR: {"-1"}}, DefaultTrainingConfig())
	require.True(t, form.Valid())
	assert.Equal(t, 1000, cfg.NumEpochs)
	assert.Equal(t, -1, cfg.LoraR)
}

func TestFormFromConfig(t *testing.T) {
	f := FormFromConfig(DefaultTrainingConfig())
	assert.True(t, f.Valid())
	assert.Equal(t, "0.0002", f.Value(FieldLearningRate))
	assert.Equal(t, "2048", f.Value(FieldMaxSeqLength))
	assert.Equal(t, "alpaca", f.Value(FieldDataset))
}
