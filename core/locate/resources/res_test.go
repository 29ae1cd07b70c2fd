package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/blockface/core"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestLoadPackagedFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	loader := ResolveBlockFont("Blockface")
	f, err := loader.BlockFont()
	if err != nil {
		t.Error(err)
	}
	if f == nil {
		t.Fatalf("font is nil, should be packaged blockface font")
	}
	if f.Height != 5 {
		t.Errorf("expected packaged font height 5, have %d", f.Height)
	}
	if f.Glyph("A") == nil {
		t.Errorf("expected packaged font to define glyph A")
	}
	t.Logf("charset of %s = %v", f.Fontname, f.Charset())
}

func TestLoadPackagedSlimFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	loader := ResolveBlockFont("blockslim")
	f, err := loader.BlockFont()
	if err != nil {
		t.Error(err)
	}
	if f == nil || f.Height != 3 {
		t.Fatalf("expected packaged slim font of height 3, have %v", f)
	}
}

func TestResolveUnknownFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	loader := ResolveBlockFont("no-such-font")
	f, err := loader.BlockFont()
	if f != nil {
		t.Errorf("expected no font for unknown name, have %v", f.Fontname)
	}
	if core.Code(err) != core.EMISSING {
		t.Errorf("expected error code EMISSING, have %d", core.Code(err))
	}
}

func TestResolveFontFromFile(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	source := "#define height=2 spaces=1\n\n@\"X\"\n##\n##\n"
	fontfile := filepath.Join(t.TempDir(), "mini.bf")
	if err := os.WriteFile(fontfile, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	loader := ResolveBlockFont(fontfile)
	f, err := loader.BlockFont()
	if err != nil {
		t.Fatal(err)
	}
	if f.Height != 2 || f.Glyph("X") == nil {
		t.Errorf("expected font from file with height 2 and glyph X")
	}
}

func TestFallbackFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	f := FallbackFont()
	if f == nil {
		t.Fatalf("fallback font is nil, should never be")
	}
	if f.Glyph("A") == nil {
		t.Errorf("expected fallback font to define glyph A")
	}
}
