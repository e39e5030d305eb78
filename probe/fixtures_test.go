package probe

import (
	"archive/zip"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"
	"strings"
	"testing"
)

// masterSpec describes one slide master of a generated test deck.
type masterSpec struct {
	layouts []string // slideLayout XML documents
	theme   string   // theme XML document; "" means no theme part
	media   map[string][]byte
}

// writeZipFile writes a file into a zip archive.
func writeZipFile(t *testing.T, zw *zip.Writer, name string, content []byte) {
	t.Helper()
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("Failed to create %s in zip: %v", name, err)
	}
	if _, err := w.Write(content); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// buildDeck writes a synthetic .pptx with the given masters to a temp file.
func buildDeck(t *testing.T, masters []masterSpec) string {
	t.Helper()

	tmp, err := os.CreateTemp(t.TempDir(), "deck-*.pptx")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	zw := zip.NewWriter(tmp)

	writeZipFile(t, zw, "[Content_Types].xml", []byte(`<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
</Types>`))

	var masterIds, presRels strings.Builder
	layoutCounter := 0
	for i := range masters {
		rid := fmt.Sprintf("rId%d", i+1)
		fmt.Fprintf(&masterIds, `<p:sldMasterId id="%d" r:id="%s"/>`, 2147483648+i, rid)
		fmt.Fprintf(&presRels, `<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster%d.xml"/>`, rid, i+1)
	}

	writeZipFile(t, zw, "ppt/presentation.xml", []byte(fmt.Sprintf(`<?xml version="1.0"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:sldMasterIdLst>%s</p:sldMasterIdLst>
  <p:sldSz cx="9144000" cy="6858000"/>
</p:presentation>`, masterIds.String())))

	writeZipFile(t, zw, "ppt/_rels/presentation.xml.rels", []byte(fmt.Sprintf(`<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">%s</Relationships>`, presRels.String())))

	for i, m := range masters {
		var layoutIds, masterRels strings.Builder
		for j := range m.layouts {
			layoutCounter++
			rid := fmt.Sprintf("rId%d", j+1)
			fmt.Fprintf(&layoutIds, `<p:sldLayoutId id="%d" r:id="%s"/>`, 2147483700+layoutCounter, rid)
			fmt.Fprintf(&masterRels, `<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout%d.xml"/>`, rid, layoutCounter)

			if m.layouts[j] != "" {
				layoutPart := fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", layoutCounter)
				writeZipFile(t, zw, layoutPart, []byte(m.layouts[j]))
				if len(m.media) > 0 {
					var mediaRels strings.Builder
					k := 100
					for name := range m.media {
						fmt.Fprintf(&mediaRels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/%s"/>`, k, name)
						k++
					}
					writeZipFile(t, zw,
						fmt.Sprintf("ppt/slideLayouts/_rels/slideLayout%d.xml.rels", layoutCounter),
						[]byte(fmt.Sprintf(`<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">%s</Relationships>`, mediaRels.String())))
				}
			}
		}

		if m.theme != "" {
			fmt.Fprintf(&masterRels, `<Relationship Id="rIdT" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme%d.xml"/>`, i+1)
			writeZipFile(t, zw, fmt.Sprintf("ppt/theme/theme%d.xml", i+1), []byte(m.theme))
		}

		writeZipFile(t, zw, fmt.Sprintf("ppt/slideMasters/slideMaster%d.xml", i+1), []byte(fmt.Sprintf(`<?xml version="1.0"?>
<p:sldMaster xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:cSld>
    <p:spTree>
      <p:sp>
        <p:nvSpPr><p:cNvPr id="2" name="Title Placeholder"/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>
        <p:spPr><a:xfrm><a:off x="838200" y="365125"/><a:ext cx="7772400" cy="1325563"/></a:xfrm></p:spPr>
      </p:sp>
      <p:sp>
        <p:nvSpPr><p:cNvPr id="3" name="Footer Placeholder"/><p:nvPr><p:ph type="ftr" idx="4"/></p:nvPr></p:nvSpPr>
        <p:spPr><a:xfrm><a:off x="3124200" y="6356350"/><a:ext cx="2895600" cy="365125"/></a:xfrm></p:spPr>
      </p:sp>
      <p:sp>
        <p:nvSpPr><p:cNvPr id="4" name="Slide Number Placeholder"/><p:nvPr><p:ph type="sldNum" idx="5"/></p:nvPr></p:nvSpPr>
        <p:spPr><a:xfrm><a:off x="6553200" y="6356350"/><a:ext cx="2133600" cy="365125"/></a:xfrm></p:spPr>
      </p:sp>
      <p:sp>
        <p:nvSpPr><p:cNvPr id="5" name="Date Placeholder"/><p:nvPr><p:ph type="dt" idx="6"/></p:nvPr></p:nvSpPr>
        <p:spPr><a:xfrm><a:off x="457200" y="6356350"/><a:ext cx="2133600" cy="365125"/></a:xfrm></p:spPr>
      </p:sp>
    </p:spTree>
  </p:cSld>
  <p:sldLayoutIdLst>%s</p:sldLayoutIdLst>
</p:sldMaster>`, layoutIds.String())))

		writeZipFile(t, zw, fmt.Sprintf("ppt/slideMasters/_rels/slideMaster%d.xml.rels", i+1), []byte(fmt.Sprintf(`<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">%s</Relationships>`, masterRels.String())))

		for name, data := range m.media {
			writeZipFile(t, zw, "ppt/media/"+name, data)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}
	return tmp.Name()
}

// layoutXML builds a slideLayout document containing the given placeholder
// shapes.
func layoutXML(name string, shapes ...string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<p:sldLayout xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld name="%s"><p:spTree>%s</p:spTree></p:cSld>
</p:sldLayout>`, name, strings.Join(shapes, "\n"))
}

// ph builds a placeholder shape, optionally frameless (inheriting geometry).
func ph(phType, idx string, withFrame bool) string {
	typeAttr := ""
	if phType != "" {
		typeAttr = fmt.Sprintf(` type="%s"`, phType)
	}
	idxAttr := ""
	if idx != "" {
		idxAttr = fmt.Sprintf(` idx="%s"`, idx)
	}
	frame := "<p:spPr/>"
	if withFrame {
		frame = `<p:spPr><a:xfrm><a:off x="914400" y="914400"/><a:ext cx="4572000" cy="1714500"/></a:xfrm></p:spPr>`
	}
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="9" name="Shape"/><p:nvPr><p:ph%s%s/></p:nvPr></p:nvSpPr>%s</p:sp>`,
		typeAttr, idxAttr, frame)
}

// officeTheme is a complete theme with literal colors and full font scheme.
const officeTheme = `<?xml version="1.0"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme">
  <a:themeElements>
    <a:clrScheme name="Office">
      <a:dk1><a:srgbClr val="000000"/></a:dk1>
      <a:lt1><a:srgbClr val="FFFFFF"/></a:lt1>
      <a:dk2><a:srgbClr val="44546A"/></a:dk2>
      <a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>
      <a:accent1><a:srgbClr val="4472C4"/></a:accent1>
      <a:accent2><a:srgbClr val="ED7D31"/></a:accent2>
      <a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>
      <a:accent4><a:srgbClr val="FFC000"/></a:accent4>
      <a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>
      <a:accent6><a:srgbClr val="70AD47"/></a:accent6>
      <a:hlink><a:srgbClr val="0563C1"/></a:hlink>
      <a:folHlink><a:srgbClr val="954F72"/></a:folHlink>
    </a:clrScheme>
    <a:fontScheme name="Office">
      <a:majorFont><a:latin typeface="Calibri Light"/></a:majorFont>
      <a:minorFont><a:latin typeface="Calibri"/><a:ea typeface="MS Mincho"/><a:cs typeface="Arial"/></a:minorFont>
    </a:fontScheme>
  </a:themeElements>
</a:theme>`

// fontlessTheme declares colors but no font scheme.
const fontlessTheme = `<?xml version="1.0"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Fontless">
  <a:themeElements>
    <a:clrScheme name="Fontless">
      <a:dk1><a:srgbClr val="111111"/></a:dk1>
      <a:lt1><a:srgbClr val="EEEEEE"/></a:lt1>
    </a:clrScheme>
  </a:themeElements>
</a:theme>`

// symbolicTheme declares only symbolic system color references.
const symbolicTheme = `<?xml version="1.0"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Symbolic">
  <a:themeElements>
    <a:clrScheme name="Symbolic">
      <a:dk1><a:sysClr val="windowText"/></a:dk1>
      <a:lt1><a:sysClr val="window"/></a:lt1>
    </a:clrScheme>
    <a:fontScheme name="Symbolic">
      <a:minorFont><a:latin typeface="Calibri"/></a:minorFont>
    </a:fontScheme>
  </a:themeElements>
</a:theme>`

// standardLayouts returns the layouts used by most probe tests: a title
// layout whose footer family inherits geometry from the master, and a
// content layout with a date placeholder.
func standardLayouts() []string {
	return []string{
		layoutXML("Title Slide",
			ph("ctrTitle", "", true),
			ph("ftr", "4", false),
			ph("sldNum", "5", false),
		),
		layoutXML("Title and Content",
			ph("title", "", true),
			ph("", "1", true),
			ph("dt", "6", false),
		),
	}
}

// tinyPNG returns a minimal valid PNG encoding a wxh image header.
func tinyPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(h))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 2 // truecolor
	// compression, filter, interlace all zero

	var buf []byte
	buf = append(buf, 0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n')
	buf = appendChunk(buf, "IHDR", ihdr)
	// No IDAT needed: DecodeConfig stops after the header.
	buf = appendChunk(buf, "IEND", nil)
	return buf
}

func appendChunk(buf []byte, name string, data []byte) []byte {
	var ln [4]byte
	binary.BigEndian.PutUint32(ln[:], uint32(len(data)))
	buf = append(buf, ln[:]...)
	buf = append(buf, name...)
	buf = append(buf, data...)
	crc := crc32.NewIEEE()
	crc.Write([]byte(name))
	crc.Write(data)
	var c [4]byte
	binary.BigEndian.PutUint32(c[:], crc.Sum32())
	return append(buf, c[:]...)
}
