package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	// image formats for the -img flag
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/npillmayer/blockface/backend/textimg"
	"github.com/npillmayer/blockface/core"
	"github.com/npillmayer/blockface/core/font"
	"github.com/npillmayer/blockface/core/locate/resources"
	"github.com/npillmayer/blockface/engine/banner"
)

// tracer traces with key 'blockface.banner'
func tracer() tracing.Trace {
	return tracing.Select("blockface.banner")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":           "go",
		"trace.blockface.fonts":     "Info",
		"trace.blockface.banner":    "Info",
		"trace.blockface.resources": "Info",
		"trace.blockface.textimg":   "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "blockface", "Block font to typeset banners with")
	listfonts := flag.String("list", "", "List known fonts matching a prefix and quit ('*' for all)")
	imgname := flag.String("img", "", "Render an image file as characters instead of a banner")
	cols := flag.Int("cols", 80, "Character columns for -img output")
	flag.Parse()
	tracer().Infof("Trace level is %s", *tlevel)
	switch strings.ToLower(*tlevel) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().SetTraceLevel(tracing.LevelInfo)
	}

	if *imgname != "" {
		if err := renderImage(*imgname, *cols); err != nil {
			core.UserError(err)
			os.Exit(2)
		}
		return
	}

	preloadPackagedFonts()
	if *listfonts != "" {
		prefix := *listfonts
		if prefix == "*" {
			prefix = ""
		}
		for _, name := range font.GlobalRegistry().Match(prefix) {
			pterm.Info.Println(name)
		}
		return
	}

	f, err := resources.ResolveBlockFont(*fontname).BlockFont()
	if err != nil {
		core.UserError(err)
		tracer().Infof("substituting fallback font")
		f = resources.FallbackFont()
	}
	renderer := banner.NewRenderer(f)

	// non-interactive: render the arguments and quit
	if flag.NArg() > 0 {
		fmt.Println(renderer.Render(strings.Join(flag.Args(), " ")))
		return
	}

	// set up REPL
	repl, err := readline.New("banner > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	pterm.Info.Println("Type text to typeset it, :font <name> to switch fonts,")
	pterm.Info.Println(":charmap for the font's character set. Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			renderer = execute(renderer, line)
			continue
		}
		fmt.Println(renderer.Render(line))
	}
}

// execute handles REPL colon-commands. It returns the renderer to continue
// with, which a :font command may have replaced.
func execute(renderer *banner.Renderer, line string) *banner.Renderer {
	cmd := strings.Fields(line)
	switch cmd[0] {
	case ":charmap":
		pterm.Info.Println(strings.Join(renderer.Font().Charset(), " "))
	case ":font":
		if len(cmd) < 2 {
			pterm.Error.Println("usage: :font <name>")
			break
		}
		f, err := resources.ResolveBlockFont(cmd[1]).BlockFont()
		if err != nil {
			core.UserError(err)
			break
		}
		pterm.Info.Println("switched to font " + f.Fontname)
		return banner.NewRenderer(f)
	default:
		pterm.Error.Println("unknown command " + cmd[0])
	}
	return renderer
}

func renderImage(name string, cols int) error {
	file, err := os.Open(name)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "image not found: %s", name)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot decode image %s", name)
	}
	fmt.Println(textimg.FromImage(img, cols))
	return nil
}

// preloadPackagedFonts makes the fonts shipped with the application known
// to the global registry, so that -list can see them.
func preloadPackagedFonts() {
	for _, name := range []string{"blockface", "blockslim"} {
		if _, err := resources.ResolveBlockFont(name).BlockFont(); err != nil {
			tracer().Errorf("packaged font %s not loadable: %v", name, err)
		}
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
