package main

import (
	"context"

	"scotuspredict/internal/core/artifact"
	"scotuspredict/internal/platform/config"

	"github.com/spf13/cobra"
)

// rootFlags are shared by every subcommand
type rootFlags struct {
	model string
	entry string
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	cmd := &cobra.Command{
		Use:   "scotuspredict",
		Short: "Predict the direction of a US Supreme Court decision",
		Long: `scotuspredict loads the packed random forest and predicts whether a
Supreme Court decision will be conservative or liberal from seven case features.

The model location comes from CORE_ARTIFACT_* unless --model is given.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&rf.model, "model", "", "local model archive, overrides CORE_ARTIFACT_*")
	cmd.PersistentFlags().StringVar(&rf.entry, "entry", "", "archive member name (default model.json)")

	cmd.AddCommand(newPredictCmd(&rf))
	cmd.AddCommand(newCodebookCmd())
	cmd.AddCommand(newInspectCmd(&rf))
	return cmd
}

// handle builds a model handle from the flags, falling back to the environment
func (rf *rootFlags) handle(ctx context.Context) (*artifact.Handle, error) {
	ac := artifact.FromEnv(config.New().Prefix("CORE_ARTIFACT_"))
	if rf.model != "" {
		ac.Source, ac.Path = artifact.SourceLocal, rf.model
	}
	if rf.entry != "" {
		ac.Entry = rf.entry
	}
	src, err := artifact.NewSource(ctx, ac)
	if err != nil {
		return nil, err
	}
	return artifact.NewHandle(src, ac.Entry), nil
}
