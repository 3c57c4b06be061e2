package pdf

// Drawable is a stateless layout element with an exact geometric placement
// rule. Place draws it with its local origin at (x, y) inside a box of the
// given width; Height reports the vertical space it occupies in the content
// flow. Page-anchored drawables (PageBorder, RepeatingLogo) derive their
// geometry from the page itself and report zero height.
//
// Every drawable that depends on an image asset skips its draw silently when
// the asset cannot be read; a missing logo must never abort a page.
type Drawable interface {
	Place(c Canvas, x, y, width float64)
	Height() float64
}

// signature line rule geometry
const (
	ruleGap        = 6         // gap between label and rule start
	iconRightInset = 0.5 * Cm  // corner icon distance from the rule end
	iconRaise      = 0.45 * Cm // corner icon lift above the baseline
)

// imageAspect returns the intrinsic width/height ratio of the asset, 1.0
// when the height is unavailable, and ok=false when the asset is unreadable.
func imageAspect(c Canvas, path string) (float64, bool) {
	iw, ih, err := c.ImageSize(path)
	if err != nil {
		return 0, false
	}
	if ih <= 0 {
		return 1.0, true
	}
	return iw / ih, true
}

// ScaledImage draws an image at a fixed target height with the width derived
// from the source aspect ratio, so nothing is ever distorted.
type ScaledImage struct {
	Path         string
	TargetHeight float64
}

func (s ScaledImage) Height() float64 { return s.TargetHeight }

func (s ScaledImage) Place(c Canvas, x, y, _ float64) {
	aspect, ok := imageAspect(c, s.Path)
	if !ok {
		return
	}
	_ = c.Image(s.Path, x, y, s.TargetHeight*aspect, s.TargetHeight)
}

// SignatureLine is a label at the baseline followed by a horizontal rule,
// optionally with a signature image and a small corner icon. The baseline
// sits at the vertical middle of the element's box.
//
// With Rule set, the rule runs from just after the label to the full width
// and the signature image is centered on that free segment, straddling the
// baseline. Without Rule, the image is anchored to the right end instead.
type SignatureLine struct {
	Label string
	Font  Style

	Rule bool

	SignPath              string
	SignWidth, SignHeight float64

	IconPath   string
	IconHeight float64
}

func (l SignatureLine) Height() float64 {
	h := 1.2 * l.Font.Size
	floor := l.SignHeight
	if floor == 0 {
		floor = 0.5 * Cm
	}
	if floor > h {
		h = floor
	}
	return h
}

func (l SignatureLine) Place(c Canvas, x, y, width float64) {
	baseline := y + l.Height()/2

	c.SetFont(l.Font.Family, l.Font.Weight, l.Font.Size)
	textWidth := c.StringWidth(l.Label)
	c.Text(x, baseline, l.Label)

	ruleStart := x + textWidth + ruleGap
	ruleEnd := x + width
	if l.Rule {
		c.SetDrawColor(0, 0, 0)
		c.SetLineWidth(1)
		c.Line(ruleStart, baseline, ruleEnd, baseline)
	}

	if l.SignPath == "" {
		return
	}
	if _, ok := imageAspect(c, l.SignPath); !ok {
		return
	}
	imgX := ruleEnd - l.SignWidth
	if l.Rule {
		imgX = ruleStart + ((ruleEnd-ruleStart)-l.SignWidth)/2
	}
	_ = c.Image(l.SignPath, imgX, baseline-l.SignHeight/2, l.SignWidth, l.SignHeight)

	if l.IconPath == "" || l.IconHeight <= 0 {
		return
	}
	aspect, ok := imageAspect(c, l.IconPath)
	if !ok {
		return
	}
	iconW := l.IconHeight * aspect
	iconX := ruleEnd - iconRightInset - iconW
	iconY := baseline - l.IconHeight/2 - iconRaise
	_ = c.Image(l.IconPath, iconX, iconY, iconW, l.IconHeight)
}

// PageBorder strokes a rectangle inset from every page edge. Page-anchored.
type PageBorder struct {
	Color     [3]int
	LineWidth float64
	Inset     float64
}

func (b PageBorder) Height() float64 { return 0 }

func (b PageBorder) Place(c Canvas, _, _, _ float64) {
	w, h := c.PageSize()
	c.SetDrawColor(b.Color[0], b.Color[1], b.Color[2])
	c.SetLineWidth(b.LineWidth)
	c.Rect(b.Inset, b.Inset, w-2*b.Inset, h-2*b.Inset)
}

// LogoAnchor positions a RepeatingLogo against the top page edge.
type LogoAnchor int

const (
	AnchorTopCenter LogoAnchor = iota
	AnchorTopRight
)

// RepeatingLogo draws the logo at a fixed corner offset on every page it is
// placed on, height fixed, width from the aspect ratio. Page-anchored.
type RepeatingLogo struct {
	Path         string
	TargetHeight float64
	Anchor       LogoAnchor
	InsetX       float64 // from the anchored vertical edge; unused for center
	InsetY       float64 // from the top edge
}

func (l RepeatingLogo) Height() float64 { return 0 }

func (l RepeatingLogo) Place(c Canvas, _, _, _ float64) {
	aspect, ok := imageAspect(c, l.Path)
	if !ok {
		return
	}
	w := l.TargetHeight * aspect
	pageW, _ := c.PageSize()

	var x float64
	switch l.Anchor {
	case AnchorTopRight:
		x = pageW - l.InsetX - w
	default:
		x = (pageW - w) / 2
	}
	_ = c.Image(l.Path, x, l.InsetY, w, l.TargetHeight)
}
