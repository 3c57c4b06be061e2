// Package document holds the three fixed document templates and builds the
// final artifacts through the layout engine.
package document

import (
	"fmt"
	"time"

	"docbot/domain"
	"docbot/pdf"
)

// Assets are the image files and fixed strings resolved once at startup.
// Missing image files degrade to skipped draws, never to build failures.
type Assets struct {
	LogoPath      string
	SignaturePath string
	IconPath      string
	PlaceName     string
}

// Spec is the immutable description of one document kind: margins, number
// convention, per-page decoration and the parameterized block sequence.
type Spec struct {
	Kind     domain.DocumentKind
	Margins  pdf.Margins
	Numbers  NumberFormat
	Decorate func(c pdf.Canvas)
	Blocks   func(s *domain.Session, now time.Time) []pdf.Block
}

// BuildError reports a failed document production, carrying the kind and the
// underlying cause.
type BuildError struct {
	Kind domain.DocumentKind
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build %s document: %v", e.Kind, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Builder renders sessions into finished documents through the spec
// registry. It is read-only after construction and safe to share.
type Builder struct {
	engine *pdf.Engine
	specs  map[domain.DocumentKind]Spec
	now    func() time.Time
}

// NewBuilder registers the three template specs against the given engine and
// assets.
func NewBuilder(engine *pdf.Engine, assets Assets) *Builder {
	if assets.PlaceName == "" {
		assets.PlaceName = DefaultPlace
	}
	return &Builder{
		engine: engine,
		specs: map[domain.DocumentKind]Spec{
			domain.KindContract:        contractSpec(assets),
			domain.KindGuaranteeLetter: guaranteeSpec(assets),
			domain.KindCardLetter:      cardSpec(assets),
		},
		now: time.Now,
	}
}

// Filename is "{Kind}_{clientName}.pdf".
func (b *Builder) Filename(kind domain.DocumentKind, name string) string {
	return fmt.Sprintf("%s_%s.pdf", kind, name)
}

// Build renders the session's document. The session is borrowed read-only
// for the duration of the call. No partial artifact is ever returned.
func (b *Builder) Build(s *domain.Session) (string, []byte, error) {
	spec, ok := b.specs[s.Kind]
	if !ok {
		return "", nil, &BuildError{Kind: s.Kind, Err: fmt.Errorf("no template registered")}
	}

	data, err := b.engine.Render(pdf.Document{
		Margins:  spec.Margins,
		Decorate: spec.Decorate,
		Blocks:   spec.Blocks(s, b.now()),
	})
	if err != nil {
		return "", nil, &BuildError{Kind: s.Kind, Err: err}
	}
	return b.Filename(s.Kind, s.Name), data, nil
}
