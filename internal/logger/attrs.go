package logger

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/listenupapp/filmography/internal/domain"
)

// Dataset groups the facts worth logging about a loaded dataset.
func Dataset(ds *domain.Dataset) slog.Attr {
	if ds == nil {
		return slog.Group("dataset", slog.Bool("loaded", false))
	}
	return slog.Group("dataset",
		slog.String("source", ds.Source),
		slog.Int("rows", len(ds.Records)),
		slog.Int("genres", len(ds.Genres)),
		slog.String("years", fmt.Sprintf("%d-%d", ds.MinYear, ds.MaxYear)),
	)
}

// Selection groups a dashboard selection.
func Selection(sel domain.Selection) slog.Attr {
	return slog.Group("selection",
		slog.String("genres", strings.Join(sel.Genres, ",")),
		slog.Int("from", sel.Years.From),
		slog.Int("to", sel.Years.To),
	)
}

// Err is the error attribute. A nil error logs as an empty string.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Since is the elapsed time since start, rounded to microseconds.
func Since(start time.Time) slog.Attr {
	return slog.Duration("duration", time.Since(start).Round(time.Microsecond))
}
