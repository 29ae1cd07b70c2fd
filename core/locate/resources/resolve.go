package resources

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/npillmayer/blockface/core"
	"github.com/npillmayer/blockface/core/font"
	"github.com/npillmayer/blockface/core/font/bffmt"
)

// NotFound returns an application error for a missing font resource.
func NotFound(name string) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "block font not found: %s", name)
}

//go:embed packaged/*
var packaged embed.FS

// --- Block fonts -----------------------------------------------------------

type fontPlusErr struct {
	font *font.BlockFont
	err  error
}

// A BlockFontPromise is the result of a font resolution request. Calling
// BlockFont blocks until loading has completed.
type BlockFontPromise interface {
	BlockFont() (*font.BlockFont, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.BlockFont, error)
}

func (loader fontLoader) BlockFont() (*font.BlockFont, error) {
	return loader.await(context.Background())
}

// ResolveBlockFont resolves a font name to a parsed block font.
//
// Resolution checks the global font registry first, then the fonts packaged
// with the application, and finally tries name as a filesystem path.
// Successfully parsed fonts are stored in the global registry, so repeated
// resolution is cheap.
func ResolveBlockFont(name string) BlockFontPromise {
	ch := make(chan fontPlusErr)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		if f := font.GlobalRegistry().Font(name); f != nil {
			result.font = f
			ch <- result
			close(ch)
			return
		}
		fonts, _ := packaged.ReadDir("packaged/fonts")
		var fname string
		for _, f := range fonts {
			if font.NormalizeFontname(f.Name()) == font.NormalizeFontname(name) {
				fname = f.Name()
				break
			}
		}
		if fname != "" { // found font as packaged embedded font
			tracer().Debugf("found %s as embedded font file %s", name, fname)
			var file fs.File
			file, result.err = packaged.Open("packaged/fonts/" + fname)
			if result.err == nil {
				defer file.Close()
				result.font, result.err = bffmt.Decode(file)
			}
		} else if _, err := os.Stat(name); err == nil { // try name as a path
			tracer().Debugf("loading %s as font definition file", name)
			var file *os.File
			file, result.err = os.Open(name)
			if result.err == nil {
				defer file.Close()
				result.font, result.err = bffmt.Decode(file)
			}
		} else {
			result.err = NotFound(name)
		}
		if result.font != nil {
			result.font.Fontname = font.NormalizeFontname(name)
			font.GlobalRegistry().StoreFont(result.font)
		}
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.BlockFont, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case result := <-ch:
				return result.font, result.err
			}
		},
	}
}

// --- Fallback font ---------------------------------------------------------

var fallbackFontLoading sync.Once

var fallbackFont *font.BlockFont

// FallbackFont returns a font to be used if everything else failes. It is
// always present.
func FallbackFont() *font.BlockFont {
	fallbackFontLoading.Do(func() {
		file, err := packaged.Open("packaged/fonts/blockface.bf")
		if err != nil {
			panic("cannot load default font") // this cannot happen
		}
		defer file.Close()
		fallbackFont, err = bffmt.Decode(file)
		if err != nil {
			panic("cannot parse default font") // this cannot happen
		}
		fallbackFont.Fontname = "blockface"
	})
	return fallbackFont
}
