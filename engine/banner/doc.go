/*
Package banner composes text into multi-line banners, set in a block font.

The compositor walks the input character by character, placing each glyph's
grid onto a shared canvas. Adjacent glyphs are moved closer together
whenever the trailing edge of one visually touches the leading edge of the
next, giving banners a tightened, kerned appearance.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package banner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockface.banner'.
func tracer() tracing.Trace {
	return tracing.Select("blockface.banner")
}
