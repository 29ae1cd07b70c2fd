package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestGlyphShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockface.fonts")
	defer teardown()
	//
	g := NewGlyph([]string{"A.", ".A", "AAA"})
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 3, g.BottomWidth())
	assert.Equal(t, 'A', g.LeadCell())
	empty := NewGlyph(nil)
	assert.Equal(t, 0, empty.BottomWidth())
	assert.Equal(t, Blank, empty.LeadCell())
}

func TestCharsetIsSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockface.fonts")
	defer teardown()
	//
	f := NewBlockFont()
	f.Glyphs["Z"] = NewGlyph([]string{"#"})
	f.Glyphs["A"] = NewGlyph([]string{"#"})
	f.Glyphs["M"] = NewGlyph([]string{"#"})
	assert.Equal(t, []string{"A", "M", "Z"}, f.Charset())
}

func TestNormalizeFontname(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockface.fonts")
	defer teardown()
	//
	assert.Equal(t, "blockface", NormalizeFontname("Blockface.bf"))
	assert.Equal(t, "block-slim", NormalizeFontname("  Block Slim  "))
}

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockface.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	f := NewBlockFont()
	f.Fontname = "Blockface.bf"
	fr.StoreFont(f)
	if fr.Font("blockface") != f {
		t.Error("expected to find stored font under normalized name")
	}
	if fr.Font("no-such-font") != nil {
		t.Error("expected lookup of unknown font to return nil")
	}
	matches := fr.Match("block")
	assert.Contains(t, matches, "blockface")
}
