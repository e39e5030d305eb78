package pptx

import (
	"fmt"
)

// Rect is a rectangle in English Metric Units (914400 EMU per inch).
type Rect struct {
	X  int64 // Left offset in EMUs
	Y  int64 // Top offset in EMUs
	Cx int64 // Width in EMUs
	Cy int64 // Height in EMUs
}

// PlaceholderType classifies a placeholder by its role on the slide.
type PlaceholderType string

const (
	PlaceholderTitle       PlaceholderType = "title"
	PlaceholderBody        PlaceholderType = "body"
	PlaceholderFooter      PlaceholderType = "footer"
	PlaceholderSlideNumber PlaceholderType = "slide_number"
	PlaceholderDate        PlaceholderType = "date"
	PlaceholderPicture     PlaceholderType = "picture"
	PlaceholderOther       PlaceholderType = "other"
)

// ClassifyPlaceholder maps an OOXML ph@type attribute to a PlaceholderType.
// An absent type attribute means a body placeholder per the PresentationML
// schema default.
func ClassifyPlaceholder(rawType string) PlaceholderType {
	switch rawType {
	case "title", "ctrTitle":
		return PlaceholderTitle
	case "", "body", "subTitle", "obj":
		return PlaceholderBody
	case "ftr":
		return PlaceholderFooter
	case "sldNum":
		return PlaceholderSlideNumber
	case "dt":
		return PlaceholderDate
	case "pic", "clipArt":
		return PlaceholderPicture
	default:
		return PlaceholderOther
	}
}

// Placeholder is a declared content region on a master, layout, or slide.
type Placeholder struct {
	RawType string          // ph@type attribute as written, may be empty
	Type    PlaceholderType // classified role
	Idx     string          // ph@idx attribute as written; "" when absent
	Name    string          // shape name from cNvPr
	Frame   *Rect           // declared geometry; nil when inherited
}

// clone returns a deep copy of the placeholder.
func (p *Placeholder) clone() *Placeholder {
	cp := *p
	if p.Frame != nil {
		f := *p.Frame
		cp.Frame = &f
	}
	return &cp
}

// ColorSlot is one named entry of a theme color scheme. Exactly one of RGB
// and SchemeRef is set: RGB when the slot carries a literal value, SchemeRef
// when it only references a symbolic system color.
type ColorSlot struct {
	Name      string
	RGB       string // literal RRGGBB hex, empty if unresolved
	SchemeRef string // symbolic name when no literal is available
}

// FontGroup holds typeface names per script category.
type FontGroup struct {
	Latin         string
	EastAsian     string
	ComplexScript string
}

// Theme is the color and font scheme attached to a slide master.
type Theme struct {
	Name   string
	Colors []ColorSlot
	Major  FontGroup // heading fonts
	Minor  FontGroup // body fonts
}

// MediaRef points at an image part referenced by a layout.
type MediaRef struct {
	RelID    string
	PartName string // resolved ZIP part name
}

// Layout is a slide layout template owned by a master.
type Layout struct {
	OriginalIndex int    // position within the master's layout list
	MasterIndex   int    // back-reference to the owning master
	PartName      string // ZIP part name; the persistent locator
	Name          string // layout name from cSld@name, e.g. "Title Slide"
	Placeholders  []*Placeholder
	Media         []MediaRef

	master   *Master
	parseErr error // set when the layout part failed to parse
}

// Master returns the owning slide master.
func (l *Layout) Master() *Master { return l.master }

// StableKey returns a locator for the layout that survives reparsing the
// same unmodified file, plus a flag reporting whether the key is only valid
// for the lifetime of this process. The part name is the primary key; the
// in-memory address is the documented non-cacheable fallback.
func (l *Layout) StableKey() (key string, transient bool) {
	if l.PartName != "" {
		return l.PartName, false
	}
	return fmt.Sprintf("mem:%p", l), true
}

// Master is a slide master: the style root for a family of layouts.
type Master struct {
	Index        int    // 0-based assignment order from presentation.xml
	RID          string // relationship id in the presentation rels
	PartName     string // ZIP part name
	Name         string
	Layouts      []*Layout
	Placeholders []*Placeholder // declared on the master; inherited by layouts
	Theme        *Theme         // nil when the master has no theme part
}

// Slide is a slide instance. The probe only ever creates transient slides;
// slides already present in the file are tracked by part name so structural
// fingerprints cover the whole slide collection.
type Slide struct {
	PartName     string // "" for transient slides
	LayoutPart   string // part name of the source layout
	Placeholders []*Placeholder
	Transient    bool
}

// Document is an opened presentation. It is read-only with respect to the
// underlying file; the in-memory slide collection supports structural edits
// so a layout can be transiently materialized and removed again.
type Document struct {
	path string

	SlideWidthEMU  int64
	SlideHeightEMU int64

	Masters []*Master
	Slides  []*Slide

	// Metadata from docProps, may be zero-valued.
	Title       string
	Author      string
	Application string

	parts         map[string][]byte
	contentDigest string
}

// Path returns the filename the document was opened from.
func (d *Document) Path() string { return d.path }

// ContentDigest returns the fingerprint of the on-disk container, computed
// once at open time over the ZIP central directory.
func (d *Document) ContentDigest() string { return d.contentDigest }

// Part returns the raw bytes of a ZIP part, or an error if absent.
func (d *Document) Part(name string) ([]byte, error) {
	data, ok := d.parts[name]
	if !ok {
		return nil, fmt.Errorf("part not found: %s", name)
	}
	return data, nil
}

// HasPart reports whether the container holds the named part.
func (d *Document) HasPart(name string) bool {
	_, ok := d.parts[name]
	return ok
}

// InsertSlide appends a slide to the in-memory slide collection and returns
// the index it was inserted at. The caller must capture this index and pass
// it unchanged to RemoveSlideAt.
func (d *Document) InsertSlide(s *Slide) int {
	d.Slides = append(d.Slides, s)
	return len(d.Slides) - 1
}

// RemoveSlideAt removes the slide at exactly the given index. It is an
// in-memory structural edit only; nothing is ever written back to the file.
func (d *Document) RemoveSlideAt(i int) error {
	if i < 0 || i >= len(d.Slides) {
		return fmt.Errorf("slide index %d out of range (0-%d)", i, len(d.Slides)-1)
	}
	d.Slides = append(d.Slides[:i], d.Slides[i+1:]...)
	return nil
}
