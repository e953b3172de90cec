package main

import (
	"github.com/spf13/cobra"

	"github.com/listenupapp/filmography/internal/domain"
)

func newDescribeCmd(flags *selectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print summary statistics of the filtered rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dash, err := loadDashboard(cmd, flags)
			if err != nil {
				return err
			}

			headers := []string{""}
			for _, c := range dash.Summary {
				headers = append(headers, c.Column)
			}
			t := newTable(headers...)

			labels := []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
			for i, label := range labels {
				row := []string{label}
				for _, c := range dash.Summary {
					row = append(row, formatStat(statAt(c, i)))
				}
				t.addRow(row...)
			}
			return t.render(cmd.OutOrStdout())
		},
	}
}

// statAt returns the i-th statistic in describe order.
func statAt(c domain.ColumnSummary, i int) domain.Stat {
	return []domain.Stat{domain.Stat(c.Count), c.Mean, c.Std, c.Min, c.Q1, c.Median, c.Q3, c.Max}[i]
}
