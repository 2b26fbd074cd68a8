package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInspectCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Load the model archive and print its metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := rf.handle(cmd.Context())
			if err != nil {
				return err
			}
			f, err := h.Get(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "source:    %s\n", h.Source())
			_, _ = fmt.Fprintf(out, "entry:     %s\n", h.Entry())
			_, _ = fmt.Fprintf(out, "trees:     %d\n", f.Trees())
			_, _ = fmt.Fprintf(out, "features:  %d (%s)\n", f.NFeatures(), strings.Join(f.FeatureNames(), ", "))
			_, err = fmt.Fprintf(out, "classes:   %v\n", f.Classes())
			return err
		},
	}
}
