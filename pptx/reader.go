package pptx

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"path"
	"sort"
	"strings"
)

// Default slide dimensions (EMUs) used when presentation.xml omits sldSz:
// 10 x 7.5 inches at 914400 EMU/inch.
const (
	DefaultSlideWidthEMU  int64 = 9144000
	DefaultSlideHeightEMU int64 = 6858000
)

// Open opens a PPTX file read-only and parses its masters, layouts, themes,
// and slide list into an in-memory Document. The underlying file handle is
// closed before Open returns; the Document never touches the file again.
func Open(filename string) (*Document, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	defer zr.Close()

	doc := &Document{
		path:  filename,
		parts: make(map[string][]byte, len(zr.File)),
	}

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", f.Name, err)
		}
		doc.parts[f.Name] = data
	}

	doc.contentDigest = digestCentralDirectory(zr.File)

	if err := doc.validate(); err != nil {
		return nil, err
	}
	if err := doc.parsePresentation(); err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}

	// Metadata is optional; absence is not an error.
	doc.parseCoreProperties()
	doc.parseAppProperties()

	return doc, nil
}

// digestCentralDirectory fingerprints the container from its ZIP central
// directory: entry names, CRC32s, and uncompressed sizes in name order.
func digestCentralDirectory(files []*zip.File) string {
	sorted := make([]*zip.File, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	h := sha256.New()
	var buf [12]byte
	for _, f := range sorted {
		io.WriteString(h, f.Name)
		h.Write([]byte{0})
		binary.BigEndian.PutUint32(buf[0:4], f.CRC32)
		binary.BigEndian.PutUint64(buf[4:12], f.UncompressedSize64)
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// validate checks that required PPTX parts exist.
func (d *Document) validate() error {
	required := []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
	}
	for _, name := range required {
		if !d.HasPart(name) {
			return fmt.Errorf("missing required file: %s", name)
		}
	}
	return nil
}

// parsePresentation parses ppt/presentation.xml, the presentation rels, and
// every master (with its layouts and theme) in declaration order.
func (d *Document) parsePresentation() error {
	data, err := d.Part("ppt/presentation.xml")
	if err != nil {
		return err
	}

	var pres presentationXML
	if err := xml.Unmarshal(data, &pres); err != nil {
		return err
	}

	d.SlideWidthEMU = DefaultSlideWidthEMU
	d.SlideHeightEMU = DefaultSlideHeightEMU
	if pres.SlideSz != nil && pres.SlideSz.Cx > 0 && pres.SlideSz.Cy > 0 {
		d.SlideWidthEMU = pres.SlideSz.Cx
		d.SlideHeightEMU = pres.SlideSz.Cy
	} else {
		slog.Debug("pptx: sldSz missing, using default slide dimensions", "path", d.path)
	}

	rels := d.parseRels("ppt/_rels/presentation.xml.rels")

	// Existing slides, tracked by part name only.
	if pres.SlideIdList != nil {
		for _, sid := range pres.SlideIdList.SlideId {
			part := resolveTarget("ppt/presentation.xml", rels[sid.RID])
			if part == "" {
				slog.Debug("pptx: slide rel unresolved", "rId", sid.RID)
				continue
			}
			d.Slides = append(d.Slides, &Slide{PartName: part})
		}
	}

	// Masters in sldMasterIdLst order. Assignment order defines Master.Index.
	if pres.MasterIdList != nil {
		for _, mid := range pres.MasterIdList.MasterId {
			part := resolveTarget("ppt/presentation.xml", rels[mid.RID])
			if part == "" {
				slog.Debug("pptx: master rel unresolved", "rId", mid.RID)
				continue
			}
			m, err := d.parseMaster(part, mid.RID, len(d.Masters))
			if err != nil {
				slog.Debug("pptx: skipping unparseable master", "part", part, "error", err)
				continue
			}
			d.Masters = append(d.Masters, m)
		}
	}

	return nil
}

// parseMaster parses one slideMaster part, its layout list, and its theme.
func (d *Document) parseMaster(partName, rID string, index int) (*Master, error) {
	data, err := d.Part(partName)
	if err != nil {
		return nil, err
	}

	var mx slideMasterXML
	if err := xml.Unmarshal(data, &mx); err != nil {
		return nil, err
	}

	m := &Master{
		Index:        index,
		RID:          rID,
		PartName:     partName,
		Name:         mx.CSld.Name,
		Placeholders: placeholdersFromTree(&mx.CSld.SpTree),
	}
	if m.Name == "" {
		m.Name = masterNameFromPart(partName)
	}

	relsPath := relsPathFor(partName)
	rels := d.parseRelsFull(relsPath)

	// Theme part, if any.
	for _, rel := range rels {
		if strings.HasSuffix(rel.Type, relTypeTheme) {
			themePart := resolveTarget(partName, rel.Target)
			if t := d.parseTheme(themePart); t != nil {
				m.Theme = t
			}
			break
		}
	}

	// Layouts in sldLayoutIdLst order; snapshot position is OriginalIndex.
	relByID := make(map[string]relationshipXML, len(rels))
	for _, rel := range rels {
		relByID[rel.ID] = rel
	}
	if mx.LayoutIdList != nil {
		for _, lid := range mx.LayoutIdList.LayoutId {
			layoutPart := ""
			if rel, ok := relByID[lid.RID]; ok {
				layoutPart = resolveTarget(partName, rel.Target)
			}
			l := d.parseLayout(layoutPart, len(m.Layouts), m)
			m.Layouts = append(m.Layouts, l)
		}
	}

	return m, nil
}

// parseLayout parses one slideLayout part. A layout whose part is missing or
// unparseable is still returned, with parseErr set, so enumeration order and
// indices stay stable; materializing it reports the failure.
func (d *Document) parseLayout(partName string, originalIndex int, m *Master) *Layout {
	l := &Layout{
		OriginalIndex: originalIndex,
		MasterIndex:   m.Index,
		PartName:      partName,
		master:        m,
	}

	if partName == "" {
		l.parseErr = fmt.Errorf("layout relationship unresolved")
		return l
	}

	data, err := d.Part(partName)
	if err != nil {
		l.parseErr = err
		return l
	}

	var lx slideLayoutXML
	if err := xml.Unmarshal(data, &lx); err != nil {
		l.parseErr = err
		return l
	}

	l.Name = lx.CSld.Name
	l.Placeholders = placeholdersFromTree(&lx.CSld.SpTree)
	l.Media = d.layoutMedia(partName)
	return l
}

// layoutMedia resolves the image relationships of a layout part.
func (d *Document) layoutMedia(partName string) []MediaRef {
	var media []MediaRef
	for _, rel := range d.parseRelsFull(relsPathFor(partName)) {
		if !strings.HasSuffix(rel.Type, relTypeImage) {
			continue
		}
		target := resolveTarget(partName, rel.Target)
		if target == "" || !d.HasPart(target) {
			slog.Debug("pptx: layout image not found in ZIP", "part", partName, "rId", rel.ID)
			continue
		}
		media = append(media, MediaRef{RelID: rel.ID, PartName: target})
	}
	return media
}

// parseTheme parses a theme part into color and font schemes. Returns nil
// when the part is missing or malformed; the probe treats that as a master
// without a theme.
func (d *Document) parseTheme(partName string) *Theme {
	data, err := d.Part(partName)
	if err != nil {
		return nil
	}

	var tx themeXML
	if err := xml.Unmarshal(data, &tx); err != nil {
		slog.Debug("pptx: unparseable theme part", "part", partName, "error", err)
		return nil
	}

	t := &Theme{Name: tx.Name}
	if cs := tx.ThemeElements.ClrScheme; cs != nil {
		t.Colors = colorSlots(cs)
	}
	if fs := tx.ThemeElements.FontScheme; fs != nil {
		t.Major = fontGroup(fs.MajorFont)
		t.Minor = fontGroup(fs.MinorFont)
	}
	return t
}

// colorSlots flattens a clrScheme into named slots in schema order.
func colorSlots(cs *clrSchemeXML) []ColorSlot {
	named := []struct {
		name string
		val  *colorValXML
	}{
		{"dk1", cs.Dk1}, {"lt1", cs.Lt1}, {"dk2", cs.Dk2}, {"lt2", cs.Lt2},
		{"accent1", cs.Accent1}, {"accent2", cs.Accent2}, {"accent3", cs.Accent3},
		{"accent4", cs.Accent4}, {"accent5", cs.Accent5}, {"accent6", cs.Accent6},
		{"hlink", cs.Hlink}, {"folHlink", cs.FolHlink},
	}

	slots := make([]ColorSlot, 0, len(named))
	for _, n := range named {
		if n.val == nil {
			continue
		}
		slot := ColorSlot{Name: n.name}
		switch {
		case n.val.SrgbClr != nil:
			slot.RGB = strings.ToUpper(n.val.SrgbClr.Val)
		case n.val.SysClr != nil && n.val.SysClr.LastClr != "":
			slot.RGB = strings.ToUpper(n.val.SysClr.LastClr)
		case n.val.SysClr != nil:
			slot.SchemeRef = n.val.SysClr.Val
		}
		slots = append(slots, slot)
	}
	return slots
}

func fontGroup(fg *fontGroupXML) FontGroup {
	var g FontGroup
	if fg == nil {
		return g
	}
	if fg.Latin != nil {
		g.Latin = fg.Latin.Typeface
	}
	if fg.Ea != nil {
		g.EastAsian = fg.Ea.Typeface
	}
	if fg.Cs != nil {
		g.ComplexScript = fg.Cs.Typeface
	}
	return g
}

// placeholdersFromTree collects the placeholder shapes of a shape tree.
func placeholdersFromTree(tree *spTreeXML) []*Placeholder {
	var phs []*Placeholder
	for _, sp := range tree.Sp {
		if sp.NvSpPr.NvPr.Ph == nil {
			continue
		}
		ph := &Placeholder{
			RawType: sp.NvSpPr.NvPr.Ph.Type,
			Type:    ClassifyPlaceholder(sp.NvSpPr.NvPr.Ph.Type),
			Idx:     sp.NvSpPr.NvPr.Ph.Idx,
			Name:    sp.NvSpPr.CNvPr.Name,
		}
		if xf := sp.SpPr.Xfrm; xf != nil && xf.Off != nil && xf.Ext != nil {
			ph.Frame = &Rect{X: xf.Off.X, Y: xf.Off.Y, Cx: xf.Ext.Cx, Cy: xf.Ext.Cy}
		}
		phs = append(phs, ph)
	}
	return phs
}

// parseRels reads a .rels part into an rId -> target map.
func (d *Document) parseRels(relsPath string) map[string]string {
	rels := d.parseRelsFull(relsPath)
	m := make(map[string]string, len(rels))
	for _, rel := range rels {
		m[rel.ID] = rel.Target
	}
	return m
}

// parseRelsFull reads a .rels part, returning nil when absent or malformed.
func (d *Document) parseRelsFull(relsPath string) []relationshipXML {
	data, err := d.Part(relsPath)
	if err != nil {
		return nil // rels are optional
	}
	var rx relationshipsXML
	if err := xml.Unmarshal(data, &rx); err != nil {
		return nil
	}
	return rx.Relationship
}

// relsPathFor returns the .rels part name for a given part, e.g.
// ppt/slideMasters/slideMaster1.xml -> ppt/slideMasters/_rels/slideMaster1.xml.rels.
func relsPathFor(partName string) string {
	return path.Join(path.Dir(partName), "_rels", path.Base(partName)+".rels")
}

// resolveTarget resolves a relationship target against the part that
// declared it. Targets are relative to the declaring part's directory.
func resolveTarget(basePart, target string) string {
	if target == "" {
		return ""
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Clean(path.Join(path.Dir(basePart), target))
}

// masterNameFromPart derives a display name from a master part name when the
// XML carries none, e.g. ppt/slideMasters/slideMaster2.xml -> "Slide Master 2".
func masterNameFromPart(partName string) string {
	base := strings.TrimSuffix(path.Base(partName), ".xml")
	num := strings.TrimPrefix(base, "slideMaster")
	if num != base && num != "" {
		return "Slide Master " + num
	}
	return base
}

// parseCoreProperties parses Dublin Core metadata.
func (d *Document) parseCoreProperties() {
	data, err := d.Part("docProps/core.xml")
	if err != nil {
		return
	}
	var core corePropertiesXML
	if xml.Unmarshal(data, &core) == nil {
		d.Title = core.Title
		d.Author = core.Creator
	}
}

// parseAppProperties parses application metadata.
func (d *Document) parseAppProperties() {
	data, err := d.Part("docProps/app.xml")
	if err != nil {
		return
	}
	var app appPropertiesXML
	if xml.Unmarshal(data, &app) == nil {
		d.Application = app.Application
	}
}
