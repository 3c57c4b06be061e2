// Package pdf lays out paginated documents from content blocks and drawable
// primitives. It only decides what to place where; the actual page
// description bytes come from a rendering backend hidden behind Canvas.
package pdf

// Cm converts centimeters to points, the unit all geometry here uses.
const Cm = 28.3465

// Canvas is the drawing surface targeted by the layout engine and the
// drawable primitives. Coordinates are in points with the origin at the top
// left of the current page; Text draws with its baseline at y.
type Canvas interface {
	PageSize() (w, h float64)
	AddPage()

	SetFont(family, style string, size float64)
	StringWidth(s string) float64
	Text(x, y float64, s string)

	SetDrawColor(r, g, b int)
	SetTextColor(r, g, b int)
	SetLineWidth(w float64)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64)

	// Image draws the asset at x,y scaled to w×h. ImageSize reports the
	// intrinsic size; an error means the asset is unusable and the caller
	// should skip its draw.
	Image(path string, x, y, w, h float64) error
	ImageSize(path string) (w, h float64, err error)

	Bytes() ([]byte, error)
}
