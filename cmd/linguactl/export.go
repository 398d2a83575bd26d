package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lingua-backend/internal/app"
	"github.com/heartmarshall/lingua-backend/internal/service/export"
)

func newExportCmd() *cobra.Command {
	var (
		out  string
		opts export.Options
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump entries, audio items and the bucket listing to JSON and CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			infra, err := app.OpenInfra(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer infra.Close()

			sum, err := app.NewExporter(cfg, logger, infra).Run(cmd.Context(), opts, out)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "entries: %d\naudio_items: %d\nstorage files: %d\n", sum.Entries, sum.AudioItems, sum.Files)
			for _, path := range sum.Written {
				fmt.Fprintf(w, "- %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "exports", "output directory")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "only export objects below this bucket directory")
	cmd.Flags().BoolVar(&opts.Signed, "signed", false, "use time-limited signed URLs instead of public URLs")
	return cmd
}
