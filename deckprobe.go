// Package deckprobe provides a fluent API for probing the layout and theming
// capabilities of PPTX presentations without modifying them.
//
// Basic usage:
//
//	report, warnings, err := deckprobe.Open("deck.pptx").Probe()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", deckprobe.FormatWarnings(warnings))
//	}
//
// Deep mode materializes each layout into a transient slide to observe the
// geometry placeholders actually inherit, then removes it again:
//
//	report, _, err := deckprobe.Open("deck.pptx").
//	    Deep().
//	    Timeout(10 * time.Second).
//	    MaxLayouts(20).
//	    Probe()
//
// For advanced use cases, the lower-level pptx and probe packages are also
// available.
package deckprobe

import (
	"fmt"
	"strings"
	"time"

	"github.com/tsawler/deckprobe/format"
	"github.com/tsawler/deckprobe/pptx"
	"github.com/tsawler/deckprobe/probe"
)

// Warning re-exports the probe warning type for callers of the facade.
type Warning = probe.Warning

// Prober provides a fluent interface for configuring and running a
// capability probe. Each configuration method returns a new Prober
// instance, making chains safe to share and reuse.
type Prober struct {
	filename string
	options  probeOptions
	err      error
}

// Open prepares a probe of the named presentation file. The file is not
// touched until Probe is called.
//
// Example:
//
//	report, warnings, err := deckprobe.Open("deck.pptx").Probe()
func Open(filename string) *Prober {
	return &Prober{
		filename: filename,
		options:  defaultProbeOptions(),
	}
}

// clone creates a copy of the Prober with a deep copy of options. Each
// chain method returns a new instance.
func (p *Prober) clone() *Prober {
	return &Prober{
		filename: p.filename,
		options:  p.options.clone(),
		err:      p.err,
	}
}

// Essential selects declaration-only analysis: fast, never instantiates,
// always complete. This is the default.
func (p *Prober) Essential() *Prober {
	np := p.clone()
	np.options.mode = probe.ModeEssential
	return np
}

// Deep selects ground-truth analysis: each layout is materialized into a
// transient slide so inherited placeholder geometry can be observed.
func (p *Prober) Deep() *Prober {
	np := p.clone()
	np.options.mode = probe.ModeDeep
	return np
}

// Timeout bounds total wall-clock analysis time in deep mode. The bound is
// checked between layouts; a layout already being analyzed runs to
// completion, so the worst-case overrun is one layout's cost.
func (p *Prober) Timeout(d time.Duration) *Prober {
	np := p.clone()
	np.options.timeout = d
	return np
}

// MaxLayouts caps how many layouts are examined. The default is
// probe.DefaultMaxLayouts.
func (p *Prober) MaxLayouts(n int) *Prober {
	np := p.clone()
	np.options.maxLayouts = n
	return np
}

// Probe opens the document read-only, runs the analysis, and returns the
// report. The document fingerprint is verified before the result is
// returned; a mismatch aborts with an IntegrityViolation error instead of
// returning a report.
func (p *Prober) Probe() (*probe.Report, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	if f := format.Detect(p.filename); !f.IsPresentation() {
		return nil, nil, &probe.Error{
			Kind: probe.KindDocumentUnreadable,
			Err:  fmt.Errorf("unsupported file format: %s", f),
		}
	}

	doc, err := pptx.Open(p.filename)
	if err != nil {
		return nil, nil, &probe.Error{Kind: probe.KindDocumentUnreadable, Err: err}
	}

	return probe.Run(doc, p.options.runOptions())
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(w.Kind)
		sb.WriteString(": ")
		sb.WriteString(w.Message)
	}
	return sb.String()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
