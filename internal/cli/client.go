package cli

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"studio/internal/apiclient"
	"studio/internal/views"
)

// client returns an API client for the configured backend. Without an
// api_base the local server is assumed.
func (o *options) client() *apiclient.Client {
	base := o.cfg.APIBase
	if base == "" {
		base = localOrigin(o.cfg.Addr)
	}
	return apiclient.New(base,
		apiclient.WithTimeout(o.cfg.APITimeout()),
		apiclient.WithLogger(o.log),
	)
}

// localOrigin turns a listen address into a URL a local client can dial.
func localOrigin(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func newHealthCmd(o *options) *cobra.Command {
	var wait time.Duration
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check backend health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := o.client()
			ctx := cmd.Context()
			if wait > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, wait)
				defer cancel()
			}
			for {
				h, err := c.Health(ctx)
				if err == nil {
					return printJSON(cmd, h)
				}
				if wait <= 0 {
					return err
				}
				o.log.Debug().Err(err).Msg("backend not ready")
				select {
				case <-time.After(500 * time.Millisecond):
				case <-ctx.Done():
					return fmt.Errorf("timed out waiting for %s: %w", c.BaseURL(), err)
				}
			}
		},
	}
	cmd.Flags().DurationVar(&wait, "wait", 0, "Poll until the backend is healthy or the duration elapses")
	return cmd
}

func newSystemCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "system",
		Short: "Show the training host snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.client().SystemInfo(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, s)
		},
	}
}

func newModelsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the model catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := o.client().Models(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, m)
		},
	}
}

func newTrainStatusCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "train-status",
		Short: "Show the backend training status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := o.client().TrainingStatus(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, st)
		},
	}
}

// trainFlags maps train flag names to training form fields.
var trainFlags = []struct{ flag, field, usage string }{
	{"model", views.FieldModelName, "Model id"},
	{"dataset", views.FieldDataset, "Dataset: alpaca|dolly|custom"},
	{"max-seq-length", views.FieldMaxSeqLength, "Max sequence length"},
	{"learning-rate", views.FieldLearningRate, "Learning rate"},
	{"num-epochs", views.FieldNumEpochs, "Number of epochs"},
	{"batch-size", views.FieldBatchSize, "Batch size"},
	{"lora-r", views.FieldLoraR, "LoRA rank"},
	{"lora-alpha", views.FieldLoraAlpha, "LoRA alpha"},
}

func newTrainCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "train",
		Short:   "Start a training job",
		Example: "  studio train --model unsloth/mistral-7b-bnb-4bit --num-epochs 5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := url.Values{}
			for _, f := range trainFlags {
				if cmd.Flags().Changed(f.flag) {
					s, _ := cmd.Flags().GetString(f.flag)
					v.Set(f.field, s)
				}
			}
			cfg, form := views.ParseTrainingForm(v, views.DefaultTrainingConfig())
			if !form.Valid() {
				return fmt.Errorf("invalid training config: %s", formErrors(form))
			}
			st, err := o.client().StartTraining(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := printJSON(cmd, st); err != nil {
				return err
			}
			if st.IsError() {
				return fmt.Errorf("training not started: %s", st.Message)
			}
			return nil
		},
	}
	defaults := views.FormFromConfig(views.DefaultTrainingConfig())
	for _, f := range trainFlags {
		cmd.Flags().String(f.flag, defaults.Value(f.field), f.usage)
	}
	return cmd
}

func formErrors(f views.TrainingForm) string {
	names := make([]string, 0, len(f.Errors))
	for name := range f.Errors {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+f.Errors[name])
	}
	return strings.Join(parts, ", ")
}

func newEchoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "echo <text>...",
		Short: "Round-trip text through the backend echo endpoint",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := o.client().Echo(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}
