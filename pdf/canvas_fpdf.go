package pdf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
)

// FpdfCanvas renders a Canvas onto an A4 portrait fpdf document. The layout
// engine owns pagination, so the backend's own page breaking is disabled.
type FpdfCanvas struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

func NewFpdfCanvas() *FpdfCanvas {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	// Core fonts are cp1252; translate so Portuguese and Italian
	// diacritics survive.
	return &FpdfCanvas{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

func (c *FpdfCanvas) PageSize() (float64, float64) { return c.doc.GetPageSize() }

func (c *FpdfCanvas) AddPage() { c.doc.AddPage() }

func (c *FpdfCanvas) SetFont(family, style string, size float64) {
	c.doc.SetFont(family, style, size)
}

func (c *FpdfCanvas) StringWidth(s string) float64 { return c.doc.GetStringWidth(c.tr(s)) }

func (c *FpdfCanvas) Text(x, y float64, s string) { c.doc.Text(x, y, c.tr(s)) }

func (c *FpdfCanvas) SetDrawColor(r, g, b int) { c.doc.SetDrawColor(r, g, b) }

func (c *FpdfCanvas) SetTextColor(r, g, b int) { c.doc.SetTextColor(r, g, b) }

func (c *FpdfCanvas) SetLineWidth(w float64) { c.doc.SetLineWidth(w) }

func (c *FpdfCanvas) Line(x1, y1, x2, y2 float64) { c.doc.Line(x1, y1, x2, y2) }

func (c *FpdfCanvas) Rect(x, y, w, h float64) { c.doc.Rect(x, y, w, h, "D") }

func (c *FpdfCanvas) Image(path string, x, y, w, h float64) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	c.doc.ImageOptions(path, x, y, w, h, false, fpdf.ImageOptions{}, 0, "")
	return c.doc.Error()
}

func (c *FpdfCanvas) ImageSize(path string) (float64, float64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, 0, err
	}
	info := c.doc.RegisterImageOptions(path, fpdf.ImageOptions{})
	if err := c.doc.Error(); err != nil {
		// A broken asset must not poison the rest of the page.
		c.doc.ClearError()
		return 0, 0, err
	}
	if info == nil {
		return 0, 0, fmt.Errorf("pdf: no image info for %s", path)
	}
	return info.Width(), info.Height(), nil
}

func (c *FpdfCanvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
