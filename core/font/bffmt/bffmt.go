package bffmt

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/blockface/core"
	"github.com/npillmayer/blockface/core/font"
)

// A block opener names the glyph key between quote markers, e.g. `@"A"`.
// Embedded quotes are not escaped; the key runs up to the last quote.
var blockOpener = regexp.MustCompile(`^@"(.*)"$`)

// Decode reads a font definition source from r and returns the block font
// it defines.
//
// Decode fails only on structurally unrecoverable input: a #define directive
// carrying a non-numeric parameter value, or a failing reader. Everything
// else is handled leniently, see the package documentation.
func Decode(r io.Reader) (*font.BlockFont, error) {
	f := font.NewBlockFont()
	scanner := bufio.NewScanner(r)

	lineno := 0
	open := false  // are we inside a glyph block?
	var key string // key of the glyph being built
	var rows []string

	flush := func() {
		if !open || len(rows) == 0 {
			return
		}
		f.Glyphs[key] = font.NewGlyph(rows)
		rows = nil
	}

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		lineno++
		if lineno == 1 && strings.HasPrefix(line, "#define") {
			if err := applyDirective(f, line); err != nil {
				return nil, err
			}
			continue
		}
		if line == "" { // blank lines are not rows
			continue
		}
		if m := blockOpener.FindStringSubmatch(line); m != nil {
			flush()
			open = true
			key = m[1]
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot read font definition source")
	}
	flush() // a missing final block opener is tolerated

	tracer().Debugf("decoded block font with %d glyphs, height %d", len(f.Glyphs), f.Height)
	return f, nil
}

// Parse decodes a font definition source given as a string.
func Parse(source string) (*font.BlockFont, error) {
	return Decode(strings.NewReader(source))
}

// applyDirective handles a `#define key=value …` line. Recognized keys are
// `height` and `spaces`; unknown keys are ignored.
func applyDirective(f *font.BlockFont, line string) error {
	for _, token := range strings.Fields(line)[1:] {
		kv := strings.SplitN(token, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "height", "spaces":
			n, err := strconv.Atoi(kv[1])
			if err != nil {
				return core.WrapError(err, core.EINVALID,
					"malformed font directive: %s", token)
			}
			if kv[0] == "height" {
				f.Height = n
			} else {
				f.SpaceWidth = n
			}
		default:
			tracer().Infof("font directive with unknown key skipped: %s", token)
		}
	}
	return nil
}
