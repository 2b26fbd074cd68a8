package main

import (
	"encoding/json"
	"fmt"

	"scotuspredict/internal/platform/net/http/bind"
	"scotuspredict/internal/services/predict/domain"
	predictsvc "scotuspredict/internal/services/predict/service"

	"github.com/spf13/cobra"
)

// featureFlags maps each flag to its vector field
var featureFlags = []struct {
	flag  string
	usage string
	field func(*domain.Features) **int
}{
	{"issue", "issue code (10010..140070)", func(f *domain.Features) **int { return &f.Issue }},
	{"case-origin", "case origin (1..302)", func(f *domain.Features) **int { return &f.CaseOrigin }},
	{"case-source", "case source (1..302)", func(f *domain.Features) **int { return &f.CaseSource }},
	{"cert-reason", "cert reason position (0..12)", func(f *domain.Features) **int { return &f.CertReason }},
	{"law-type", "law type position (0..7)", func(f *domain.Features) **int { return &f.LawType }},
	{"natural-court", "natural court (1301..1707)", func(f *domain.Features) **int { return &f.NaturalCourt }},
	{"admin-action", "admin action (0..118)", func(f *domain.Features) **int { return &f.AdminAction }},
}

func newPredictCmd(rf *rootFlags) *cobra.Command {
	var (
		vals   = make([]int, len(featureFlags))
		lang   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Run one prediction",
		Example: `  scotuspredict predict --issue 80180 --case-origin 51 --case-source 29 \
    --cert-reason 11 --law-type 6 --natural-court 1704 --admin-action 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in domain.Features
			for i, ff := range featureFlags {
				if cmd.Flags().Changed(ff.flag) {
					v := vals[i]
					*ff.field(&in) = &v
				}
			}
			if err := bind.Struct(in, lang); err != nil {
				return err
			}

			h, err := rf.handle(cmd.Context())
			if err != nil {
				return err
			}
			res, err := predictsvc.New(h, nil).Predict(cmd.Context(), in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			_, err = fmt.Fprintln(out, res.Message)
			return err
		},
	}
	for i, ff := range featureFlags {
		cmd.Flags().IntVar(&vals[i], ff.flag, 0, ff.usage)
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "language for validation messages (en, es)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as json")
	return cmd
}
