package chart

import (
	"cmp"
	"io"
	"math"
	"slices"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/listenupapp/filmography/internal/domain"
)

// Bubble radius bounds in pixels.
const (
	minBubble = 3.0
	maxBubble = 18.0
)

// genrePoints is one genre's points ordered by year.
type genrePoints struct {
	genre string
	years []float64
	gross []float64
}

func pointsByGenre(long domain.LongTable) []genrePoints {
	out := make([]genrePoints, 0)
	for _, genre := range long.Genres() {
		rows := make([]domain.LongRow, 0)
		for _, r := range long {
			if r.Genre == genre {
				rows = append(rows, r)
			}
		}
		slices.SortFunc(rows, func(a, b domain.LongRow) int { return cmp.Compare(a.Year, b.Year) })

		gp := genrePoints{genre: genre}
		for _, r := range rows {
			gp.years = append(gp.years, float64(r.Year))
			gp.gross = append(gp.gross, r.Gross)
		}
		out = append(out, gp)
	}
	return out
}

func renderLine(w io.Writer, long domain.LongTable, opts Options) error {
	series := make([]gochart.Series, 0)
	for _, gp := range pointsByGenre(long) {
		col := opts.Palette.drawing(gp.genre)
		series = append(series, gochart.ContinuousSeries{
			Name:    gp.genre,
			XValues: gp.years,
			YValues: gp.gross,
			Style: gochart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    2.5,
			},
		})
	}

	ch := newChart(long, opts, 0)
	ch.Series = series
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	return ch.Render(gochart.SVG, w)
}

func renderBubble(w io.Writer, long domain.LongTable, opts Options) error {
	peak := maxGross(long)

	series := make([]gochart.Series, 0)
	for _, gp := range pointsByGenre(long) {
		col := opts.Palette.drawing(gp.genre)
		series = append(series, gochart.ContinuousSeries{
			Name:    gp.genre,
			XValues: gp.years,
			YValues: gp.gross,
			Style: gochart.Style{
				StrokeWidth: gochart.Disabled,
				DotColor:    col.WithAlpha(170),
				DotWidthProvider: func(_, _ gochart.Range, _ int, _, y float64) float64 {
					return bubbleRadius(y, peak)
				},
			},
		})
	}

	ch := newChart(long, opts, 0.5)
	ch.Series = series
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	return ch.Render(gochart.SVG, w)
}

// bubbleRadius scales gross linearly into the bubble radius bounds.
func bubbleRadius(gross, peak float64) float64 {
	if peak <= 0 {
		return minBubble
	}
	return minBubble + (maxBubble-minBubble)*gross/peak
}

// newChart lays out the shared year x gross axes. yearPad widens the x range on both sides.
func newChart(long domain.LongTable, opts Options, yearPad float64) gochart.Chart {
	first, last := yearBounds(long)
	xMin, xMax := float64(first)-yearPad, float64(last)+yearPad
	if xMin == xMax {
		xMin, xMax = xMin-1, xMax+1
	}

	yMax := maxGross(long) * 1.1
	if yMax <= 0 {
		yMax = 1
	}

	return gochart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:  "Year",
			Range: &gochart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks: boundedTicks(yearTicks(first, last), xMin, xMax),
		},
		YAxis: gochart.YAxis{
			Name:  "Gross",
			Range: &gochart.ContinuousRange{Min: 0, Max: yMax},
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return FormatDollars(f)
				}
				return ""
			},
		},
	}
}

// yearTicks labels whole years, thinning them out so at most about ten are shown.
func yearTicks(first, last int) []gochart.Tick {
	step := int(math.Ceil(float64(last-first+1) / 10))
	step = max(step, 1)

	ticks := make([]gochart.Tick, 0)
	for y := first; y <= last; y += step {
		ticks = append(ticks, gochart.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}
	return ticks
}

// boundedTicks adds unlabeled ticks at the axis ends. go-chart derives the x range
// from the ticks when any are set, so a single year would otherwise collapse it.
func boundedTicks(ticks []gochart.Tick, lo, hi float64) []gochart.Tick {
	if len(ticks) == 0 || lo < ticks[0].Value {
		ticks = append([]gochart.Tick{{Value: lo}}, ticks...)
	}
	if hi > ticks[len(ticks)-1].Value {
		ticks = append(ticks, gochart.Tick{Value: hi})
	}
	return ticks
}

func yearBounds(long domain.LongTable) (first, last int) {
	for i, r := range long {
		if i == 0 || r.Year < first {
			first = r.Year
		}
		if i == 0 || r.Year > last {
			last = r.Year
		}
	}
	return first, last
}

func maxGross(long domain.LongTable) float64 {
	peak := 0.0
	for _, r := range long {
		peak = max(peak, r.Gross)
	}
	return peak
}
