// Command ggtextdemo fits a line of text to a box and prints the resulting
// layout: the font size the auto-fit search settled on, the tight output
// bounds, and the line breaks it chose.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggtext"
	"github.com/gogpu/ggtext/font"
)

func main() {
	var (
		fontPath  = flag.String("font", "", "path to a TTF/OTF font file (required)")
		text      = flag.String("text", "The quick brown fox jumps over the lazy dog.", "text to lay out")
		maxWidth  = flag.Float64("max-width", 400, "box width")
		maxHeight = flag.Float64("max-height", 200, "box height")
		fontSize  = flag.Float64("font-size", 0, "fixed font size; 0 requests auto-fit")
		vertical  = flag.Bool("vertical", false, "lay out top-to-bottom columns instead of horizontal lines")
		wordBreak = flag.Bool("word-break", false, "split the longest word via hyphenation when auto-fit can't otherwise make text fit")
		language  = flag.String("language", "", "hyphenation language (e.g. en-US, de-1996); required for -word-break")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		ggtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *fontPath == "" {
		log.Fatal("ggtextdemo: -font is required")
	}

	f, err := font.LoadFile(*fontPath)
	if err != nil {
		log.Fatalf("ggtextdemo: loading font: %v", err)
	}

	mode := ggtext.Horizontal
	if *vertical {
		mode = ggtext.VerticalRightToLeft
	}

	engine := ggtext.NewEngine(f).
		WithWritingMode(mode).
		WithMaxWidth(*maxWidth).
		WithMaxHeight(*maxHeight).
		WithAutoWordBreak(*wordBreak)

	if *fontSize > 0 {
		engine = engine.WithFontSize(*fontSize)
	}
	if *language != "" {
		engine = engine.WithHyphenationLanguage(*language)
	}

	run, err := engine.Run(*text)
	if err != nil {
		log.Fatalf("ggtextdemo: layout failed: %v", err)
	}

	fmt.Printf("font size: %g\n", run.FontSize)
	fmt.Printf("bounds:    %g x %g\n", run.Width, run.Height)
	fmt.Printf("lines:     %d\n", len(run.Lines))
	for i, line := range run.Lines {
		fmt.Printf("  [%d] %q  (advance %g, baseline %g,%g)\n",
			i, (*text)[line.Range[0]:line.Range[1]], line.Advance, line.Baseline.X, line.Baseline.Y)
	}

	if *wordBreak && *language == "" {
		fmt.Fprintln(os.Stderr, "note: -word-break has no effect without -language")
	}
}
