package main

import (
	"fmt"
	"text/tabwriter"

	"scotuspredict/internal/core/codebook"
	"scotuspredict/internal/modkit"
	"scotuspredict/internal/platform/config"
	"scotuspredict/internal/platform/logger"
	"scotuspredict/internal/platform/store"
	codebookmod "scotuspredict/internal/services/codebook/module"

	"github.com/spf13/cobra"
)

func newCodebookCmd() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "codebook",
		Short: "Print the input fields and selector options",
		Long: `Prints every input with its bounds, and the position and label of each selector option.
Label overrides are read from postgres when SERVICE_PGSQL_DBURL is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			root := config.New()

			st, err := store.Open(ctx, store.FromEnv(root.Prefix("SERVICE_PGSQL_"), "scotuspredict-cli"), store.WithLogger(*logger.Get()))
			if err != nil {
				return err
			}
			defer st.Close()

			deps := modkit.Deps{Cfg: root}
			if st.Enabled() {
				deps.PG = st.PG
			}
			ports := codebookmod.New(deps).Ports().(codebookmod.Ports)
			cb := ports.Codebook.Reload(ctx)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, f := range cb.Fields() {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d..%d\n", f.Name, cb.Label(f.Name, lang), f.Min, f.Max)
				if f.Kind != codebook.KindSelect {
					continue
				}
				for _, o := range cb.Options(f.Name, lang) {
					_, _ = fmt.Fprintf(tw, "\t%d\t%s\n", o.Value, o.Label)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&lang, "lang", codebook.DefaultLang, "label language (en, es)")
	return cmd
}
