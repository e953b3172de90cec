package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	domainerrors "github.com/listenupapp/filmography/internal/errors"
	"github.com/listenupapp/filmography/internal/export"
)

func newExportCmd(flags *selectionFlags) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the selection as CSV (long table) or XLSX (pivot, summary and data sheets)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "csv" && format != "xlsx" {
				return domainerrors.Validationf("unknown format %q: must be csv or xlsx", format)
			}

			dash, err := loadDashboard(cmd, flags)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output) //#nosec G304 -- path chosen by the user
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if format == "xlsx" {
				return export.WriteXLSX(w, dash)
			}
			return export.WriteCSV(w, dash.Long)
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
