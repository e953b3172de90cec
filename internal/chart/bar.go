package chart

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/listenupapp/filmography/internal/domain"
)

// pxToPt converts CSS pixels to points.
const pxToPt = 0.75

func renderBar(w io.Writer, long domain.LongTable, opts Options) error {
	genres := long.Genres()
	totals := long.TotalsByGenre()

	p := plot.New()
	p.X.Label.Text = "Total gross"
	p.X.Min = 0
	p.X.Tick.Marker = dollarTicks{}
	p.Add(plotter.NewGrid())

	width := vg.Points(float64(opts.Height) * pxToPt / float64(len(genres)+1))
	for i, genre := range genres {
		bars, err := plotter.NewBarChart(plotter.Values{totals[genre]}, width)
		if err != nil {
			return err
		}
		bars.Horizontal = true
		bars.XMin = float64(i)
		bars.Color = opts.Palette.Color(genre)
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
	}
	p.NominalY(genres...)

	wt, err := p.WriterTo(
		vg.Points(float64(opts.Width)*pxToPt),
		vg.Points(float64(opts.Height)*pxToPt),
		"svg",
	)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// dollarTicks relabels the default ticks as dollar amounts.
type dollarTicks struct{}

// Ticks implements plot.Ticker.
func (dollarTicks) Ticks(lo, hi float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = FormatDollars(ticks[i].Value)
		}
	}
	return ticks
}
