package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/listenupapp/filmography/internal/dataset"
	"github.com/listenupapp/filmography/internal/domain"
	domainerrors "github.com/listenupapp/filmography/internal/errors"
	"github.com/listenupapp/filmography/internal/logger"
	"github.com/listenupapp/filmography/internal/service"
)

// selectionFlags are shared by every subcommand.
type selectionFlags struct {
	dataPath  string
	delimiter string
	genres    []string
	from      int
	to        int
	noColor   bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &selectionFlags{}

	root := &cobra.Command{
		Use:   "boxoffice",
		Short: "Filter and reshape the movie box-office dataset",
		Long: `boxoffice reads the movie genre summary file, keeps the rows matching a
genre selection and a year range, and prints the year by genre pivot table,
summary statistics, or exports the result as CSV or XLSX.

Without --genre the dashboard's default genres are used. Pass --genre ""
for an empty selection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.noColor {
				color.NoColor = true
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.dataPath, "data", filepath.Join("data", "movies_genres_summary.csv"), "path to the movies genre summary file")
	pf.StringVar(&flags.delimiter, "delimiter", ",", "field delimiter of the data file")
	pf.StringSliceVar(&flags.genres, "genre", nil, "genre to include (repeatable or comma separated)")
	pf.IntVar(&flags.from, "from", domain.DefaultFromYear, "first year, inclusive")
	pf.IntVar(&flags.to, "to", domain.DefaultToYear, "last year, inclusive")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log dataset loading")

	root.AddCommand(newPivotCmd(flags))
	root.AddCommand(newDescribeCmd(flags))
	root.AddCommand(newExportCmd(flags))

	return root
}

// staticSource serves one dataset loaded up front.
type staticSource struct {
	ds *domain.Dataset
}

func (s staticSource) Get(context.Context) (*domain.Dataset, error) {
	return s.ds, nil
}

// loadDashboard reads the data file and builds the dashboard for the flags.
func loadDashboard(cmd *cobra.Command, flags *selectionFlags) (*domain.Dashboard, error) {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	log := logger.New(logger.Config{
		Writer:      cmd.ErrOrStderr(),
		Environment: "development",
		Level:       level,
	})

	delimiter := []rune(flags.delimiter)
	if flags.delimiter == "tab" {
		delimiter = []rune{'\t'}
	}
	if len(delimiter) != 1 {
		return nil, domainerrors.Validationf("invalid delimiter %q: must be a single character", flags.delimiter)
	}

	load := dataset.FileLoader(flags.dataPath, dataset.Options{Delimiter: delimiter[0]}, log.Logger)
	ds, err := load(cmd.Context())
	if err != nil {
		return nil, err
	}

	svc := service.NewDashboardService(staticSource{ds: ds}, service.Defaults{
		Genres: domain.DefaultGenres,
		Years:  domain.DefaultYearRange(),
	}, log.Logger)

	sel, err := svc.Selection(cmd.Context(), service.DashboardQuery{
		Genres:    flags.genres,
		GenresSet: cmd.Flags().Changed("genre"),
		From:      flags.from,
		To:        flags.to,
	})
	if err != nil {
		return nil, err
	}

	return svc.Build(cmd.Context(), sel)
}
