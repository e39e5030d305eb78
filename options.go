package deckprobe

import (
	"time"

	"github.com/tsawler/deckprobe/probe"
)

// probeOptions holds configuration for a probe run.
type probeOptions struct {
	mode       string
	timeout    time.Duration
	maxLayouts int
}

// defaultProbeOptions returns the default probe configuration.
func defaultProbeOptions() probeOptions {
	return probeOptions{
		mode:       probe.ModeEssential,
		timeout:    0, // no timeout unless set
		maxLayouts: probe.DefaultMaxLayouts,
	}
}

// clone creates a copy of probeOptions.
func (o probeOptions) clone() probeOptions {
	return probeOptions{
		mode:       o.mode,
		timeout:    o.timeout,
		maxLayouts: o.maxLayouts,
	}
}

// runOptions converts the facade options to the probe package's Options.
func (o probeOptions) runOptions() probe.Options {
	return probe.Options{
		Mode:       o.mode,
		Timeout:    o.timeout,
		MaxLayouts: o.maxLayouts,
	}
}
