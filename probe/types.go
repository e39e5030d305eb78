package probe

import (
	"errors"
	"time"
)

// Analysis modes.
const (
	ModeEssential = "essential" // declaration-only, never instantiates
	ModeDeep      = "deep"      // transient instantiation, time-bounded
)

// Strategy hints for downstream editors.
const (
	FooterModePlaceholder = "placeholder"
	FooterModeTextbox     = "fallback_textbox"

	SlideNumberPlaceholder = "placeholder"
	SlideNumberTextbox     = "textbox"
)

// DefaultMaxLayouts caps how many layouts one probe run examines.
const DefaultMaxLayouts = 50

// ToolVersion and SchemaVersion identify the report producer and the report
// shape, respectively.
const (
	ToolVersion   = "1.0.0"
	SchemaVersion = "1"
)

// Options configures a probe run.
type Options struct {
	// Mode is ModeEssential or ModeDeep. Empty means ModeEssential.
	Mode string

	// Timeout bounds total wall-clock analysis time in deep mode. Zero
	// means no timeout. Checked between layouts, never during one.
	Timeout time.Duration

	// MaxLayouts caps the number of layouts examined. Zero means
	// DefaultMaxLayouts.
	MaxLayouts int

	// now is the clock used by the timeout governor. Tests inject one;
	// nil means time.Now.
	now func() time.Time
}

// Geometry is a placeholder frame in dual fidelity: raw EMUs exactly as
// stored, and percentages of the slide dimensions for consumers that work
// in relative terms.
type Geometry struct {
	XEMU      int64 `json:"x_emu"`
	YEMU      int64 `json:"y_emu"`
	WidthEMU  int64 `json:"width_emu"`
	HeightEMU int64 `json:"height_emu"`

	XPct      float64 `json:"x_pct"`
	YPct      float64 `json:"y_pct"`
	WidthPct  float64 `json:"width_pct"`
	HeightPct float64 `json:"height_pct"`
}

// PlaceholderInfo describes one placeholder of an analyzed layout.
type PlaceholderInfo struct {
	Type         string    `json:"type"` // title|body|footer|slide_number|date|picture|other
	RawType      string    `json:"raw_type,omitempty"`
	Name         string    `json:"name,omitempty"`
	Instantiated bool      `json:"instantiated"`
	Template     *Geometry `json:"template_geometry,omitempty"`
	Actual       *Geometry `json:"instantiated_geometry,omitempty"`
}

// MediaInfo describes an image a layout references.
type MediaInfo struct {
	Part     string `json:"part"`
	MIMEType string `json:"mime_type"`
	WidthPx  int    `json:"width_px,omitempty"`
	HeightPx int    `json:"height_px,omitempty"`
}

// LayoutCapability is the full per-layout analysis result.
type LayoutCapability struct {
	OriginalIndex int    `json:"original_index"`
	MasterIndex   int    `json:"master_index"`
	Name          string `json:"name,omitempty"`

	StableKey      string `json:"stable_key"`
	KeyIsTransient bool   `json:"key_is_transient,omitempty"`

	PlaceholderExpected     int  `json:"placeholder_expected"`
	PlaceholderInstantiated int  `json:"placeholder_instantiated"`
	InstantiationComplete   bool `json:"instantiation_complete"`

	HasFooter      bool `json:"has_footer"`
	HasSlideNumber bool `json:"has_slide_number"`
	HasDate        bool `json:"has_date"`

	Placeholders []PlaceholderInfo `json:"placeholders"`
	Media        []MediaInfo       `json:"media,omitempty"`
}

// LayoutRef identifies a layout within the per-capability arrays. Both
// indices are carried so consumers can cross-reference without
// recomputation.
type LayoutRef struct {
	OriginalIndex int    `json:"original_index"`
	MasterIndex   int    `json:"master_index"`
	Name          string `json:"name,omitempty"`
}

// MasterInfo is the audit record for one slide master.
type MasterInfo struct {
	MasterIndex int    `json:"master_index"`
	LayoutCount int    `json:"layout_count"`
	Name        string `json:"name"`
	RID         string `json:"rId"`
}

// DocumentInfo carries presentation metadata for the report.
type DocumentInfo struct {
	Title          string `json:"title,omitempty"`
	Author         string `json:"author,omitempty"`
	Application    string `json:"application,omitempty"`
	SlideWidthEMU  int64  `json:"slide_width_emu"`
	SlideHeightEMU int64  `json:"slide_height_emu"`
}

// Metadata is the report's metadata section.
type Metadata struct {
	AnalysisMode  string       `json:"analysis_mode"`
	Masters       []MasterInfo `json:"masters"`
	WarningsCount int          `json:"warnings_count"`
	ToolVersion   string       `json:"tool_version"`
	SchemaVersion string       `json:"schema_version"`
	RunID         string       `json:"run_id"`
	Notes         []string     `json:"notes"`
	Document      DocumentInfo `json:"document"`
}

// Capabilities is the report's capabilities section.
type Capabilities struct {
	AnalysisComplete bool `json:"analysis_complete"`
	PartialResults   bool `json:"partial_results"`

	LayoutsWithFooter      []LayoutRef `json:"layouts_with_footer"`
	LayoutsWithSlideNumber []LayoutRef `json:"layouts_with_slide_number"`
	LayoutsWithDate        []LayoutRef `json:"layouts_with_date"`

	FooterSupportMode   string `json:"footer_support_mode"`
	SlideNumberStrategy string `json:"slide_number_strategy"`

	Layouts []LayoutCapability `json:"layouts"`
}

// MasterTheme is one master's resolved color and font schemes.
type MasterTheme struct {
	MasterIndex int               `json:"master_index"`
	Colors      map[string]string `json:"colors"`
	Fonts       map[string]string `json:"fonts"`
}

// ThemeReport is the report's theme section.
type ThemeReport struct {
	PerMaster []MasterTheme `json:"per_master"`
}

// Report is the aggregate probe result. It is constructed fresh for every
// invocation and never persisted.
type Report struct {
	Metadata     Metadata     `json:"metadata"`
	Capabilities Capabilities `json:"capabilities"`
	Theme        ThemeReport  `json:"theme"`
	Warnings     []string     `json:"warnings"`
}

// ErrorReport is the envelope emitted on fatal errors. The warnings key is
// always present, even empty, for schema consistency with the success path.
type ErrorReport struct {
	Status string `json:"status"`
	Error  struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
	Warnings []string `json:"warnings"`
}

// NewErrorReport builds the fatal-error envelope for an error. The kind is
// taken from the probe error taxonomy when available.
func NewErrorReport(err error) *ErrorReport {
	rep := &ErrorReport{Status: "error", Warnings: []string{}}
	rep.Error.Kind = string(KindDocumentUnreadable)
	var pe *Error
	if errors.As(err, &pe) {
		rep.Error.Kind = string(pe.Kind)
	}
	rep.Error.Message = err.Error()
	return rep
}
