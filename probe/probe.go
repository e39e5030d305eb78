package probe

import (
	"github.com/google/uuid"

	"github.com/tsawler/deckprobe/pptx"
)

// Run executes one capability probe against an already-opened document.
// Exclusive access to the document for the duration of the call is the
// caller's responsibility. The returned warnings are the same deduplicated
// set carried in the report.
//
// Only two failures are fatal: an unreadable document (refused before Run is
// reachable) and an integrity violation, meaning the before/after document
// fingerprints differ. Everything else is recovered per layout or per
// master and surfaces as a warning.
func Run(doc *pptx.Document, opts Options) (*Report, []Warning, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ModeEssential
	}
	if mode != ModeDeep {
		// The wall-clock bound only applies to instantiating runs.
		opts.Timeout = 0
	}

	before := fingerprintDocument(doc)

	rec := newRecorder()
	snaps := enumerateMasters(doc)
	if len(snaps) == 0 {
		rec.warn(WarnNoMasters, msgNoMasters)
	}

	gov := newGovernor(opts)
	total := totalLayouts(snaps)
	inst := &instantiator{doc: doc}

	var layouts []LayoutCapability
	pos := 0
	for _, snap := range snaps {
		for _, layout := range snap.layouts {
			if !gov.admit(pos, total, rec) {
				pos++
				continue
			}
			pos++

			if mode != ModeDeep {
				layouts = append(layouts, detectDeclared(layout, doc.SlideWidthEMU, doc.SlideHeightEMU))
				continue
			}

			var lc LayoutCapability
			err := inst.withTransientSlide(layout, func(s *pptx.Slide) {
				lc = detectInstantiated(layout, s, doc.SlideWidthEMU, doc.SlideHeightEMU, rec)
			})
			if err != nil {
				lc = detectFailed(layout, doc.SlideWidthEMU, doc.SlideHeightEMU, rec)
			}
			lc.Media = inspectMedia(doc, layout)
			layouts = append(layouts, lc)
		}
	}

	te := &themeExtractor{rec: rec}
	theme := ThemeReport{PerMaster: make([]MasterTheme, 0, len(snaps))}
	for _, snap := range snaps {
		theme.PerMaster = append(theme.PerMaster, te.extract(snap.master))
	}

	report := aggregate(doc, mode, snaps, layouts, theme, gov, rec)

	after := fingerprintDocument(doc)
	if err := verifyIntegrity(before, after); err != nil {
		return nil, nil, err
	}

	return report, rec.warnings, nil
}

// aggregate merges the component outputs into the final report.
func aggregate(doc *pptx.Document, mode string, snaps []masterSnapshot,
	layouts []LayoutCapability, theme ThemeReport, gov *governor, rec *recorder) *Report {

	caps := Capabilities{
		AnalysisComplete:       gov.complete(),
		PartialResults:         gov.timedOut,
		LayoutsWithFooter:      []LayoutRef{},
		LayoutsWithSlideNumber: []LayoutRef{},
		LayoutsWithDate:        []LayoutRef{},
		FooterSupportMode:      FooterModeTextbox,
		SlideNumberStrategy:    SlideNumberTextbox,
		Layouts:                layouts,
	}

	for _, lc := range layouts {
		ref := LayoutRef{OriginalIndex: lc.OriginalIndex, MasterIndex: lc.MasterIndex, Name: lc.Name}
		if lc.HasFooter {
			caps.LayoutsWithFooter = append(caps.LayoutsWithFooter, ref)
			caps.FooterSupportMode = FooterModePlaceholder
		}
		if lc.HasSlideNumber {
			caps.LayoutsWithSlideNumber = append(caps.LayoutsWithSlideNumber, ref)
			caps.SlideNumberStrategy = SlideNumberPlaceholder
		}
		if lc.HasDate {
			caps.LayoutsWithDate = append(caps.LayoutsWithDate, ref)
		}
	}

	masters := make([]MasterInfo, 0, len(snaps))
	for _, snap := range snaps {
		masters = append(masters, MasterInfo{
			MasterIndex: snap.master.Index,
			LayoutCount: len(snap.layouts),
			Name:        snap.master.Name,
			RID:         snap.master.RID,
		})
	}

	notes := rec.notes
	if notes == nil {
		notes = []string{}
	}

	return &Report{
		Metadata: Metadata{
			AnalysisMode:  mode,
			Masters:       masters,
			WarningsCount: len(rec.warnings),
			ToolVersion:   ToolVersion,
			SchemaVersion: SchemaVersion,
			RunID:         uuid.NewString(),
			Notes:         notes,
			Document: DocumentInfo{
				Title:          doc.Title,
				Author:         doc.Author,
				Application:    doc.Application,
				SlideWidthEMU:  doc.SlideWidthEMU,
				SlideHeightEMU: doc.SlideHeightEMU,
			},
		},
		Capabilities: caps,
		Theme:        theme,
		Warnings:     rec.messages(),
	}
}
