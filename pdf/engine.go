package pdf

import (
	"fmt"
	"strings"
)

// Margins are page margins in points.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// DefaultMargins is 2 cm on all sides.
var DefaultMargins = Margins{Left: 2 * Cm, Top: 2 * Cm, Right: 2 * Cm, Bottom: 2 * Cm}

// Document is one render request: an ordered block sequence on fixed page
// geometry with an optional per-page decoration. The engine borrows it for
// the duration of a single Render call and never retains it.
type Document struct {
	Margins  Margins
	Decorate func(c Canvas) // invoked once per page, first and later alike
	Blocks   []Block
}

// Engine composes Documents onto pages. The canvas factory is swappable so
// tests can record geometry instead of producing bytes.
type Engine struct {
	newCanvas func() Canvas
}

// NewEngine returns an engine backed by the fpdf canvas.
func NewEngine() *Engine {
	return &Engine{newCanvas: func() Canvas { return NewFpdfCanvas() }}
}

// NewEngineWith returns an engine producing pages on canvases from the given
// factory.
func NewEngineWith(newCanvas func() Canvas) *Engine {
	return &Engine{newCanvas: newCanvas}
}

// Render lays the document out and returns the finished artifact. On any
// backend failure it returns the error and no bytes; a partial document is
// never emitted.
func (e *Engine) Render(doc Document) ([]byte, error) {
	c := e.newCanvas()
	pageW, pageH := c.PageSize()

	m := doc.Margins
	if m == (Margins{}) {
		m = DefaultMargins
	}
	contentW := pageW - m.Left - m.Right
	if contentW <= 0 {
		return nil, fmt.Errorf("pdf: margins leave no content width")
	}

	f := flow{c: c, left: m.Left, top: m.Top, bottom: pageH - m.Bottom, width: contentW, decorate: doc.Decorate}
	f.newPage()

	for _, b := range doc.Blocks {
		switch b := b.(type) {
		case Spacer:
			f.y += b.Height
			if f.y > f.bottom {
				f.newPage()
			}
		case Paragraph:
			f.text(b.Text, b.Style, 0)
			f.y += b.Style.SpaceAfter
		case RichParagraph:
			f.rich(b.Spans, b.Style)
			f.y += b.Style.SpaceAfter
		case List:
			c.SetFont(b.Style.Family, b.Style.Weight, b.Style.Size)
			hang := c.StringWidth(b.Bullet + " ")
			for _, item := range b.Items {
				f.text(b.Bullet+" "+item, b.Style, hang)
				f.y += b.Style.SpaceAfter
			}
		case Draw:
			if h := b.Drawable.Height(); f.y+h > f.bottom && f.y > f.top {
				f.newPage()
			}
			b.Drawable.Place(c, f.left, f.y, contentW)
			f.y += b.Drawable.Height()
		}
	}

	return c.Bytes()
}

// flow tracks the cursor of one render pass.
type flow struct {
	c           Canvas
	left        float64
	top, bottom float64
	width       float64
	decorate    func(Canvas)
	y           float64
}

func (f *flow) newPage() {
	f.c.AddPage()
	if f.decorate != nil {
		f.decorate(f.c)
	}
	f.y = f.top
}

// text wraps and emits one block of text, advancing the cursor one leading
// per line and breaking pages as needed. hang indents every wrapped line
// after the first, which renders hanging bullet items.
func (f *flow) text(text string, st Style, hang float64) {
	f.c.SetFont(st.Family, st.Weight, st.Size)
	f.c.SetTextColor(st.Color[0], st.Color[1], st.Color[2])

	left := f.left + st.Indent
	width := f.width - st.Indent

	first := true
	for _, para := range strings.Split(text, "\n") {
		for _, line := range wrap(f.c, para, width-hang) {
			if f.y+st.Leading > f.bottom {
				f.newPage()
				f.c.SetFont(st.Family, st.Weight, st.Size)
				f.c.SetTextColor(st.Color[0], st.Color[1], st.Color[2])
			}
			f.y += st.Leading
			x := left
			if !first {
				x += hang
			}
			if st.Align == AlignCenter {
				x = left + (width-f.c.StringWidth(line))/2
			}
			f.c.Text(x, f.y, line)
			first = false
		}
	}
	f.c.SetTextColor(0, 0, 0)
}

// frag is a word fragment carrying its own weight; a word is adjacent frags
// drawn with no space between them.
type frag struct {
	text string
	bold bool
}

// rich wraps and emits spans of mixed weight. Words are measured fragment by
// fragment so an emphasized run keeps the line's metrics consistent.
func (f *flow) rich(spans []Span, st Style) {
	bold := st
	if !strings.Contains(bold.Weight, "B") {
		bold.Weight += "B"
	}
	font := func(b bool) Style {
		if b {
			return bold
		}
		return st
	}

	var words [][]frag
	var cur []frag
	for _, sp := range spans {
		for i, piece := range strings.Split(sp.Text, " ") {
			if piece == "" {
				if len(cur) > 0 {
					words = append(words, cur)
					cur = nil
				}
				continue
			}
			if i > 0 && len(cur) > 0 {
				words = append(words, cur)
				cur = nil
			}
			cur = append(cur, frag{piece, sp.Bold})
		}
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}

	measure := func(word []frag) float64 {
		var total float64
		for _, fr := range word {
			wf := font(fr.bold)
			f.c.SetFont(wf.Family, wf.Weight, wf.Size)
			total += f.c.StringWidth(fr.text)
		}
		return total
	}

	f.c.SetFont(st.Family, st.Weight, st.Size)
	spaceW := f.c.StringWidth(" ")

	left := f.left + st.Indent
	width := f.width - st.Indent

	var line [][]frag
	var lineW float64
	emit := func() {
		if len(line) == 0 {
			return
		}
		if f.y+st.Leading > f.bottom {
			f.newPage()
		}
		f.c.SetTextColor(st.Color[0], st.Color[1], st.Color[2])
		f.y += st.Leading
		x := left
		for _, word := range line {
			for _, fr := range word {
				wf := font(fr.bold)
				f.c.SetFont(wf.Family, wf.Weight, wf.Size)
				f.c.Text(x, f.y, fr.text)
				x += f.c.StringWidth(fr.text)
			}
			x += spaceW
		}
		line = nil
		lineW = 0
	}

	for _, word := range words {
		w := measure(word)
		if len(line) > 0 && lineW+spaceW+w > width {
			emit()
		}
		if len(line) > 0 {
			lineW += spaceW
		}
		line = append(line, word)
		lineW += w
	}
	emit()
	f.c.SetTextColor(0, 0, 0)
}

// wrap greedily fills lines to the available width measured with the current
// font.
func wrap(c Canvas, text string, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if c.StringWidth(line+" "+w) <= width {
			line += " " + w
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
