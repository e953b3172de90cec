// Package chart renders the long-format table as SVG charts.
package chart

import (
	"fmt"
	"html"
	"io"

	"github.com/listenupapp/filmography/internal/domain"
	domainerrors "github.com/listenupapp/filmography/internal/errors"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 320
)

// ContentType is the MIME type of every rendered chart.
const ContentType = "image/svg+xml"

// Kind names one of the dashboard charts.
type Kind string

// Chart kinds.
const (
	KindLine   Kind = "line"
	KindBar    Kind = "bar"
	KindBubble Kind = "bubble"
)

// Kinds lists the charts in page order.
var Kinds = []Kind{KindLine, KindBar, KindBubble}

// ParseKind validates a chart name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLine, KindBar, KindBubble:
		return Kind(s), nil
	default:
		return "", domainerrors.NotFoundf("unknown chart %q", s)
	}
}

// Title returns the heading shown above the chart.
func (k Kind) Title() string {
	switch k {
	case KindLine:
		return "Gross Earnings by Genre Over Years"
	case KindBar:
		return "Total Gross Earnings by Genre"
	case KindBubble:
		return "Gross Earnings by Year and Genre"
	default:
		return string(k)
	}
}

// Options controls rendering.
type Options struct {
	Width   int
	Height  int
	Palette Palette
}

func (o *Options) setDefaults() {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
}

// Render draws the chart of kind for long into w as SVG.
// An empty table produces a placeholder image rather than an error.
func Render(w io.Writer, kind Kind, long domain.LongTable, opts Options) error {
	opts.setDefaults()

	if len(long) == 0 {
		return writePlaceholder(w, opts)
	}

	var err error
	switch kind {
	case KindLine:
		err = renderLine(w, long, opts)
	case KindBar:
		err = renderBar(w, long, opts)
	case KindBubble:
		err = renderBubble(w, long, opts)
	default:
		return domainerrors.NotFoundf("unknown chart %q", kind)
	}
	if err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeInternal, "render %s chart", kind)
	}
	return nil
}

// Placeholder text drawn when the selection matches nothing.
const placeholderText = "No data for the current selection"

func writePlaceholder(w io.Writer, opts Options) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#ffffff"/>`+
			`<text x="50%%" y="50%%" text-anchor="middle" dominant-baseline="middle" `+
			`font-family="sans-serif" font-size="14" fill="#777777">%s</text></svg>`,
		opts.Width, opts.Height, opts.Width, opts.Height, html.EscapeString(placeholderText))
	return err
}
