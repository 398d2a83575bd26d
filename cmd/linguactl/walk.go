package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lingua-backend/internal/app"
	"github.com/heartmarshall/lingua-backend/internal/domain"
	"github.com/heartmarshall/lingua-backend/internal/service/storage"
)

func newWalkCmd() *cobra.Command {
	var (
		prefix string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "List every object in the audio bucket with its public URL",
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

			walker, resolver := infra.Walker()
			objs, err := walker.Walk(cmd.Context(), prefix)
			if err != nil {
				return err
			}

			resolved := storage.ResolveObjects(resolver, objs)
			if asJSON {
				return writeObjectsJSON(cmd.OutOrStdout(), resolved)
			}
			return printObjects(cmd.OutOrStdout(), resolved)
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only walk below this directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// writeObjectsJSON emits the same item shape as GET /api/studio/storage.
func writeObjectsJSON(w io.Writer, objs []domain.ResolvedStorageObject) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(storage.NewObjects(objs))
}

func printObjects(w io.Writer, objs []domain.ResolvedStorageObject) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tSIZE\tTYPE\tURL")
	for _, o := range objs {
		size, ctype, url := "-", "-", "-"
		if o.Size != nil {
			size = fmt.Sprint(*o.Size)
		}
		if o.ContentType != nil {
			ctype = *o.ContentType
		}
		if o.URL != nil {
			url = *o.URL
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.Path, size, ctype, url)
	}
	fmt.Fprintf(tw, "\n%d object(s)\n", len(objs))
	return tw.Flush()
}
