// Package geometry derives the initial window placement from the
// monitor work area.
package geometry

import "errors"

var ErrUnsupported = errors.New("geometry: work area query not supported on this platform")

// Placement rules. The window starts an eighth of the usable width in from
// the left edge, 24px below the top of the work area, three fifths of the
// usable width wide and 24px short of the work area at top and bottom.
const (
	OriginDivisor  = 8
	TopOffset      = 24
	WidthNumerator = 3
	WidthDivisor   = 5
	VerticalMargin = 48
)

// Rect is a screen rectangle in pixels. Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int32
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

type Point struct {
	X, Y int32
}

type Size struct {
	Width, Height int32
}

type Placement struct {
	Origin Point
	Size   Size
}

// Ratios parameterizes ComputeWith. DefaultRatios holds the rules above.
type Ratios struct {
	OriginDivisor  int32
	TopOffset      int32
	WidthNumerator int32
	WidthDivisor   int32
	VerticalMargin int32
}

var DefaultRatios = Ratios{
	OriginDivisor:  OriginDivisor,
	TopOffset:      TopOffset,
	WidthNumerator: WidthNumerator,
	WidthDivisor:   WidthDivisor,
	VerticalMargin: VerticalMargin,
}

func Compute(workArea Rect) Placement {
	return ComputeWith(workArea, DefaultRatios)
}

// ComputeWith applies r to workArea with integer truncation. A work area no
// taller than the vertical margin yields a non-positive height; callers get
// that value as-is.
func ComputeWith(workArea Rect, r Ratios) Placement {
	w := workArea.Width()
	h := workArea.Height()
	return Placement{
		Origin: Point{
			X: w / r.OriginDivisor,
			Y: workArea.Top + r.TopOffset,
		},
		Size: Size{
			Width:  w * r.WidthNumerator / r.WidthDivisor,
			Height: h - r.VerticalMargin,
		},
	}
}
