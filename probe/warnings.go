package probe

// Warning kinds, matching the probe's error taxonomy for non-fatal
// conditions.
const (
	WarnNoMasters     = "no_masters_found"
	WarnInstantiation = "instantiation_failure"
	WarnTheme         = "theme_unavailable"
	WarnTimeout       = "timeout"
)

// Canonical warning messages. Consumers match on these strings, so they are
// fixed here rather than composed at the call sites.
const (
	msgTemplatePositions = "Using template positions (instantiation failed)"
	msgSchemeRefColors   = "Theme colors include non-RGB scheme references; semantic schemeColor values returned"
	msgFontDefaults      = "Theme fonts unavailable - using Calibri defaults"
	msgTimeout           = "Probe timeout - returning partial results"
	msgNoMasters         = "No slide masters found in presentation"
)

// Warning is a non-fatal condition encountered during one probe run.
type Warning struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// recorder accumulates warnings and informational notes for a single
// invocation. Deduplication is by message text and scoped to the run; no
// state survives the call, so repeated invocations never leak suppression
// across runs.
type recorder struct {
	seen     map[string]bool
	warnings []Warning
	notes    []string
}

func newRecorder() *recorder {
	return &recorder{seen: make(map[string]bool)}
}

// warn records a warning unless one with identical message text exists.
func (r *recorder) warn(kind, message string) {
	if r.seen[message] {
		return
	}
	r.seen[message] = true
	r.warnings = append(r.warnings, Warning{Kind: kind, Message: message})
}

// note records an informational note. Notes are not deduplicated and never
// count toward warnings_count.
func (r *recorder) note(message string) {
	r.notes = append(r.notes, message)
}

// messages returns the deduplicated warning messages in emission order.
func (r *recorder) messages() []string {
	msgs := make([]string, 0, len(r.warnings))
	for _, w := range r.warnings {
		msgs = append(msgs, w.Message)
	}
	return msgs
}
