package pdf

import (
	"errors"
	"math"
)

// recorder is a Canvas that records draw operations instead of producing
// bytes, so tests can assert exact geometry.
type recOp struct {
	kind       string // page, text, line, rect, image
	str        string
	weight     string // font weight active for text ops
	x, y, w, h float64
}

type recorder struct {
	ops        []recOp
	images     map[string][2]float64 // intrinsic size per registered asset
	fontSize   float64
	fontWeight string
}

func newRecorder() *recorder {
	return &recorder{images: map[string][2]float64{}}
}

func (r *recorder) PageSize() (float64, float64) { return 595.28, 841.89 }

func (r *recorder) AddPage() { r.ops = append(r.ops, recOp{kind: "page"}) }

func (r *recorder) SetFont(_, weight string, size float64) {
	r.fontWeight = weight
	r.fontSize = size
}

// Half an em per rune keeps widths deterministic without font metrics.
func (r *recorder) StringWidth(s string) float64 {
	return float64(len([]rune(s))) * r.fontSize / 2
}

func (r *recorder) Text(x, y float64, s string) {
	r.ops = append(r.ops, recOp{kind: "text", str: s, weight: r.fontWeight, x: x, y: y})
}

func (r *recorder) SetDrawColor(_, _, _ int) {}
func (r *recorder) SetTextColor(_, _, _ int) {}
func (r *recorder) SetLineWidth(_ float64)   {}

func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, recOp{kind: "line", x: x1, y: y1, w: x2, h: y2})
}

func (r *recorder) Rect(x, y, w, h float64) {
	r.ops = append(r.ops, recOp{kind: "rect", x: x, y: y, w: w, h: h})
}

func (r *recorder) Image(path string, x, y, w, h float64) error {
	if _, ok := r.images[path]; !ok {
		return errors.New("missing asset")
	}
	r.ops = append(r.ops, recOp{kind: "image", str: path, x: x, y: y, w: w, h: h})
	return nil
}

func (r *recorder) ImageSize(path string) (float64, float64, error) {
	wh, ok := r.images[path]
	if !ok {
		return 0, 0, errors.New("missing asset")
	}
	return wh[0], wh[1], nil
}

func (r *recorder) Bytes() ([]byte, error) { return []byte("%PDF-test"), nil }

func (r *recorder) find(kind string) []recOp {
	var out []recOp
	for _, op := range r.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }
