/*
Package font implements block fonts, i.e. fonts where every glyph is a small
fixed-height grid of text cells. Block fonts are the material banners are
typeset from.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "glyph" is the grid of cells for a single renderable symbol. Cells
holding a blank carry no ink.

* A "block font" is a collection of glyphs, all sharing a common height,
together with the parameters needed to compose them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Blank is the cell value representing "no ink".
const Blank rune = ' '

// Default parameters for block fonts which do not carry explicit ones.
const (
	DefaultHeight     = 5 // rows per glyph
	DefaultSpaceWidth = 4 // columns advanced for a literal space
)

// A Glyph is an immutable grid of cells. Rows may be jagged, i.e. of
// differing lengths; cells beyond a row's length are implicitly blank.
type Glyph struct {
	Rows [][]rune
}

// NewGlyph creates a glyph from a list of row strings.
func NewGlyph(rows []string) *Glyph {
	g := &Glyph{Rows: make([][]rune, len(rows))}
	for i, row := range rows {
		g.Rows[i] = []rune(row)
	}
	return g
}

// Height returns the number of rows of g.
func (g *Glyph) Height() int {
	return len(g.Rows)
}

// BottomWidth returns the length of g's bottom row. It is the default
// horizontal advance when composing g.
func (g *Glyph) BottomWidth() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[len(g.Rows)-1])
}

// LeadCell returns the top-left cell of g, i.e. the cell a preceding glyph's
// trailing edge may visually touch. For an empty glyph it returns Blank.
func (g *Glyph) LeadCell() rune {
	if len(g.Rows) == 0 || len(g.Rows[0]) == 0 {
		return Blank
	}
	return g.Rows[0][0]
}

// A BlockFont maps glyph keys to glyphs. Keys usually are single characters,
// but the font format does not restrict them to be.
//
// A BlockFont is created once, by parsing a font definition source, and must
// be treated as read-only afterwards. Composing banners from a shared
// BlockFont is safe for concurrent use.
type BlockFont struct {
	Fontname   string
	Height     int // rows per glyph
	SpaceWidth int // columns advanced for a literal space
	Glyphs     map[string]*Glyph
}

// NewBlockFont creates an empty block font with default parameters.
func NewBlockFont() *BlockFont {
	return &BlockFont{
		Height:     DefaultHeight,
		SpaceWidth: DefaultSpaceWidth,
		Glyphs:     make(map[string]*Glyph),
	}
}

// Glyph returns the glyph stored for key, or nil if the font does not
// define one.
func (f *BlockFont) Glyph(key string) *Glyph {
	if f == nil {
		return nil
	}
	return f.Glyphs[key]
}

// Charset returns the sorted list of glyph keys defined by f. Clients
// wanting to pre-validate input before rendering may check against it.
func (f *BlockFont) Charset() []string {
	set := treeset.NewWithStringComparator()
	for key := range f.Glyphs {
		set.Add(key)
	}
	keys := make([]string, 0, set.Size())
	for _, k := range set.Values() {
		keys = append(keys, k.(string))
	}
	return keys
}

// NormalizeFontname normalizes a font name for registry lookup: lowercased,
// a possible file extension stripped, inner whitespace replaced by dashes.
func NormalizeFontname(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if dot := strings.LastIndexByte(name, '.'); dot > 0 {
		name = name[:dot]
	}
	return strings.Join(strings.Fields(name), "-")
}

// --- Font Registry ---------------------------------------------------------

// A Registry holds loaded block fonts, keyed by normalized font name.
type Registry struct {
	sync.Mutex
	fonts *trie.Trie // normalized name -> *BlockFont
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is a singleton registry, used by the resource resolver.
// Clients composing banners do not depend on it; they hold their fonts
// explicitly.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts: trie.New(),
	}
}

// StoreFont makes f known to the registry under its normalized font name.
// Storing a font with an already known name replaces the earlier entry.
func (fr *Registry) StoreFont(f *BlockFont) {
	if f == nil {
		T().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(f.Fontname)
	T().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts.Add(fname, f)
}

// Font returns the font stored under name, or nil if the registry does not
// hold one.
func (fr *Registry) Font(name string) *BlockFont {
	fr.Lock()
	defer fr.Unlock()
	node, ok := fr.fonts.Find(NormalizeFontname(name))
	if !ok {
		return nil
	}
	return node.Meta().(*BlockFont)
}

// Match returns the normalized names of all stored fonts starting with
// prefix, in unspecified order. An empty prefix matches every font.
func (fr *Registry) Match(prefix string) []string {
	fr.Lock()
	defer fr.Unlock()
	return fr.fonts.PrefixSearch(NormalizeFontname(prefix))
}
