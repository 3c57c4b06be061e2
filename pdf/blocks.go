package pdf

// Block is one entry of a template's ordered content sequence. The engine
// consumes blocks top to bottom, breaking pages when a block (or a wrapped
// line of one) does not fit.
type Block interface {
	isBlock()
}

// Paragraph is wrapped body text in a single style. Explicit "\n" forces a
// line break.
type Paragraph struct {
	Text  string
	Style Style
}

// Span is one run of a RichParagraph, drawn bold when Bold is set.
type Span struct {
	Text string
	Bold bool
}

// RichParagraph is wrapped left-aligned body text with inline emphasis. A
// span starting without a leading space glues onto the previous word, so
// punctuation can follow an emphasized run without a break.
type RichParagraph struct {
	Spans []Span
	Style Style
}

// List renders fixed items each prefixed by the bullet glyph, with a hanging
// indent taken from the style.
type List struct {
	Items  []string
	Bullet string
	Style  Style
}

// Spacer adds fixed vertical space.
type Spacer struct {
	Height float64
}

// Draw embeds a drawable primitive into the content flow at the current
// vertical position, spanning the full content width.
type Draw struct {
	Drawable Drawable
}

func (Paragraph) isBlock()     {}
func (RichParagraph) isBlock() {}
func (List) isBlock()          {}
func (Spacer) isBlock()        {}
func (Draw) isBlock()          {}
