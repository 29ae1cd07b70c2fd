package banner

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/blockface/core/font"
)

// A Renderer composes banners from an immutable block font.
//
// A Renderer holds no state across calls; Render may be called concurrently
// from multiple goroutines.
type Renderer struct {
	font *font.BlockFont
}

// NewRenderer creates a renderer for the given block font.
func NewRenderer(f *font.BlockFont) *Renderer {
	return &Renderer{font: f}
}

// Font returns the block font r typesets with.
func (r *Renderer) Font() *font.BlockFont {
	return r.font
}

// Render composes text into a banner of font.Height lines, joined by
// newlines. Input is NFC-normalized and upper-cased before glyph lookup,
// so fonts need only define upper-case keys.
//
// Render never fails: characters without a glyph are silently skipped,
// consuming no horizontal space. For input producing no ink at all,
// the empty string is returned.
func (r *Renderer) Render(text string) string {
	if r.font == nil || text == "" {
		return ""
	}
	text = cases.Upper(language.Und).String(norm.NFC.String(text))
	return r.compose([]rune(text))
}

// compose folds the input onto a fresh canvas. The cursor tracks the column
// for the next glyph; it never decreases.
func (r *Renderer) compose(input []rune) string {
	canvas := newCanvas(r.font.Height)
	cursor := 0
	for i, ch := range input {
		if ch == ' ' {
			cursor += r.font.SpaceWidth
			continue
		}
		g := r.font.Glyph(string(ch))
		if g == nil {
			tracer().Debugf("no glyph for %q, skipped", ch)
			continue
		}
		next := r.nextGlyph(input, i+1)
		advance := advanceWidth(g, next)
		canvas.place(g, cursor)
		if next != nil {
			cursor += advance - 1 // one column of deliberate overlap
		} else {
			cursor += advance + 1 // trailing gap after a run
		}
	}
	return canvas.serialize()
}

// nextGlyph finds the glyph the upcoming character will be set with,
// skipping characters the font does not define. A space ends the run:
// no kerning is applied across spaces.
func (r *Renderer) nextGlyph(input []rune, from int) *font.Glyph {
	for _, ch := range input[from:] {
		if ch == ' ' {
			return nil
		}
		if g := r.font.Glyph(string(ch)); g != nil {
			return g
		}
	}
	return nil
}

// advanceWidth computes the horizontal advance for g, by default the width
// of g's bottom row. With a following glyph, every row of g is scanned from
// the right for an inked cell matching next's inked lead cell; where the
// edges touch, the matching column bounds the advance instead.
func advanceWidth(g *font.Glyph, next *font.Glyph) int {
	advance := g.BottomWidth()
	if next == nil {
		return advance
	}
	lead := next.LeadCell()
	if lead == font.Blank {
		return advance
	}
	for _, row := range g.Rows {
		for col := len(row) - 1; col >= 0; col-- {
			if row[col] == lead {
				if col+1 > advance {
					advance = col + 1
				}
				break
			}
		}
	}
	return advance
}
