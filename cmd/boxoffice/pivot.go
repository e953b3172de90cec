package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPivotCmd(flags *selectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pivot",
		Short: "Print gross per year and genre, newest year first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dash, err := loadDashboard(cmd, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dash.Wide.IsEmpty() {
				_, err := fmt.Fprintln(out, "No data for the current selection.")
				return err
			}

			t := newTable(append([]string{"year"}, dash.Wide.Genres...)...)
			for i, year := range dash.Wide.Years {
				row := []string{strconv.Itoa(year)}
				for _, v := range dash.Wide.Cells[i] {
					row = append(row, formatAmount(v))
				}
				t.addRow(row...)
			}
			return t.render(out)
		},
	}
}
