/*
Package textimg converts images to character grids.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textimg

import (
	"image"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	xdraw "golang.org/x/image/draw"
)

// tracer traces with key 'blockface.textimg'.
func tracer() tracing.Trace {
	return tracing.Select("blockface.textimg")
}

// ramp orders glyphs from no ink to full ink. Luminance maps inversely:
// dark pixels get dense glyphs.
const ramp = " .:-=+*#%@"

// FromImage scales img to cols columns and maps every pixel's luminance
// onto a character, darkest pixels first in ink density. The row count is
// derived from the image's aspect ratio, halved to compensate for terminal
// cells being roughly twice as tall as wide.
func FromImage(img image.Image, cols int) string {
	if img == nil {
		return ""
	}
	if cols <= 0 {
		cols = 80
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}
	rows := b.Dy() * cols / b.Dx() / 2
	if rows == 0 {
		rows = 1
	}
	tracer().Debugf("scaling %dx%d image to %dx%d character grid", b.Dx(), b.Dy(), cols, rows)
	gray := image.NewGray(image.Rect(0, 0, cols, rows))
	xdraw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, b, xdraw.Src, nil)
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			lum := int(gray.GrayAt(x, y).Y)
			sb.WriteByte(ramp[(255-lum)*(len(ramp)-1)/255])
		}
	}
	return sb.String()
}
