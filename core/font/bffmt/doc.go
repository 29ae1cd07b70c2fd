/*
Package bffmt decodes the textual block-font definition format.

A font definition source is plain text. An optional first line

   #define height=5 spaces=4

overrides the font parameters and is followed by a blank line. After that,
glyph blocks follow. A block is opened by a line of the form

   @"A"

naming the glyph's key between the quote markers, and collects every
subsequent non-blank line as a glyph row, until the next block opener or end
of input. Blank lines are ignored; a line consisting of blank cells only is
a legal row. Keys are not restricted to single characters. Duplicate keys
overwrite earlier definitions.

The decoder is deliberately lenient: a garbled block opener is not an error,
it is consumed as a body row of the glyph currently being built. The only
fatal condition is a malformed #define directive.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bffmt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockface.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("blockface.fonts")
}
