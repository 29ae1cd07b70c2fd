package textimg

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFromImageDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockface.textimg")
	defer teardown()
	//
	img := image.NewGray(image.Rect(0, 0, 100, 100))
	out := FromImage(img, 40)
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Errorf("expected 20 rows for a square image at 40 columns, have %d", len(lines))
	}
	for i, line := range lines {
		if len(line) != 40 {
			t.Fatalf("expected row %d to have 40 columns, has %d", i, len(line))
		}
	}
}

func TestFromImageLuminance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockface.textimg")
	defer teardown()
	//
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	out := FromImage(img, 10) // all black
	if !strings.ContainsRune(out, '@') || strings.ContainsRune(out, ' ') {
		t.Errorf("expected all-black image to map to dense glyphs, have %q", out)
	}
	for y := 0; y < 10; y++ { // now all white
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.White)
		}
	}
	out = FromImage(img, 10)
	if strings.Trim(out, " \n") != "" {
		t.Errorf("expected all-white image to map to blanks, have %q", out)
	}
}

func TestFromImageDegenerate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockface.textimg")
	defer teardown()
	//
	if FromImage(nil, 40) != "" {
		t.Error("expected empty output for nil image")
	}
	empty := image.NewGray(image.Rect(0, 0, 0, 0))
	if FromImage(empty, 40) != "" {
		t.Error("expected empty output for empty image")
	}
}
