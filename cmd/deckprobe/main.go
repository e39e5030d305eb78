// Command deckprobe inspects a PPTX file and reports its layout and theming
// capabilities as JSON on stdout. The file is never modified; deep mode
// materializes transient slides in memory only and removes them before the
// report is returned.
//
// Exit status is 0 on success and 1 on any fatal error. Warnings never
// change the exit status.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tsawler/deckprobe"
	"github.com/tsawler/deckprobe/probe"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("deckprobe", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		mode       = fs.String("mode", "", "analysis mode: essential or deep (default essential)")
		timeoutSec = fs.Float64("timeout", 0, "deep-mode analysis timeout in seconds (0 = none)")
		maxLayouts = fs.Int("max-layouts", 0, "cap on layouts examined (0 = default)")
		configPath = fs.String("config", "", "optional YAML config file")
		pretty     = fs.Bool("pretty", false, "indent the JSON output")
		version    = fs.Bool("version", false, "print version and exit")
	)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: deckprobe [flags] <presentation.pptx>\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *version {
		fmt.Printf("deckprobe %s (schema %s)\n", probe.ToolVersion, probe.SchemaVersion)
		return 0
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "deckprobe: %v\n", err)
			return 1
		}
		cfg = cfg.merge(loaded)
	}
	cfg = cfg.applyFlags(*mode, *timeoutSec, *maxLayouts)

	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "deckprobe: %v\n", err)
		return 1
	}

	p := deckprobe.Open(fs.Arg(0))
	if cfg.Mode == probe.ModeDeep {
		p = p.Deep()
	}
	if cfg.TimeoutSeconds > 0 {
		p = p.Timeout(time.Duration(cfg.TimeoutSeconds * float64(time.Second)))
	}
	if cfg.MaxLayouts > 0 {
		p = p.MaxLayouts(cfg.MaxLayouts)
	}

	report, _, err := p.Probe()
	if err != nil {
		emitJSON(probe.NewErrorReport(err), *pretty)
		return 1
	}

	emitJSON(report, *pretty)
	return 0
}

func emitJSON(v any, pretty bool) {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "deckprobe: encoding report: %v\n", err)
	}
}
