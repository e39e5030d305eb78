// Package pptx provides read-only access to the layout and theming parts of
// a PPTX (Office Open XML Presentation) container: slide masters, slide
// layouts, placeholder declarations, and themes.
package pptx

import "encoding/xml"

// XML namespaces used in PPTX files.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Relationship type suffixes used to resolve parts from .rels files.
const (
	relTypeSlideMaster = "/slideMaster"
	relTypeSlideLayout = "/slideLayout"
	relTypeSlide       = "/slide"
	relTypeTheme       = "/theme"
	relTypeImage       = "/image"
)

// presentationXML represents the ppt/presentation.xml file structure.
type presentationXML struct {
	XMLName      xml.Name         `xml:"presentation"`
	MasterIdList *masterIdListXML `xml:"sldMasterIdLst"`
	SlideIdList  *slideIdListXML  `xml:"sldIdLst"`
	SlideSz      *slideSzXML      `xml:"sldSz"`
}

type masterIdListXML struct {
	MasterId []masterIdXML `xml:"sldMasterId"`
}

type masterIdXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"` // r:id attribute
}

type slideIdListXML struct {
	SlideId []slideIdXML `xml:"sldId"`
}

type slideIdXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"` // r:id attribute
}

type slideSzXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

// slideMasterXML represents a ppt/slideMasters/slideMaster*.xml file.
type slideMasterXML struct {
	XMLName      xml.Name         `xml:"sldMaster"`
	CSld         cSldXML          `xml:"cSld"`
	LayoutIdList *layoutIdListXML `xml:"sldLayoutIdLst"`
}

type layoutIdListXML struct {
	LayoutId []layoutIdXML `xml:"sldLayoutId"`
}

type layoutIdXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"` // r:id attribute
}

// slideLayoutXML represents a ppt/slideLayouts/slideLayout*.xml file.
type slideLayoutXML struct {
	XMLName xml.Name `xml:"sldLayout"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	Name   string    `xml:"name,attr"`
	SpTree spTreeXML `xml:"spTree"`
}

// spTreeXML represents the shape tree containing all shapes.
type spTreeXML struct {
	Sp []spXML `xml:"sp"`
}

// spXML represents a shape element.
type spXML struct {
	NvSpPr nvSpPrXML `xml:"nvSpPr"`
	SpPr   spPrXML   `xml:"spPr"`
}

type nvSpPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
	NvPr  nvPrXML  `xml:"nvPr"`
}

type cNvPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"` // Placeholder info
}

type phXML struct {
	Type string `xml:"type,attr"` // title, body, ftr, sldNum, dt, pic, etc.
	Idx  string `xml:"idx,attr"`  // kept as string: absence and "0" differ for matching
}

type spPrXML struct {
	Xfrm *xfrmXML `xml:"xfrm"`
}

type xfrmXML struct {
	Off *offXML `xml:"off"`
	Ext *extXML `xml:"ext"`
}

type offXML struct {
	X int64 `xml:"x,attr"` // X position in EMUs
	Y int64 `xml:"y,attr"` // Y position in EMUs
}

type extXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

// themeXML represents a ppt/theme/theme*.xml file. Only the color and font
// schemes are read; format schemes are irrelevant to the probe.
type themeXML struct {
	XMLName       xml.Name         `xml:"theme"`
	Name          string           `xml:"name,attr"`
	ThemeElements themeElementsXML `xml:"themeElements"`
}

type themeElementsXML struct {
	ClrScheme  *clrSchemeXML  `xml:"clrScheme"`
	FontScheme *fontSchemeXML `xml:"fontScheme"`
}

type clrSchemeXML struct {
	Name     string       `xml:"name,attr"`
	Dk1      *colorValXML `xml:"dk1"`
	Lt1      *colorValXML `xml:"lt1"`
	Dk2      *colorValXML `xml:"dk2"`
	Lt2      *colorValXML `xml:"lt2"`
	Accent1  *colorValXML `xml:"accent1"`
	Accent2  *colorValXML `xml:"accent2"`
	Accent3  *colorValXML `xml:"accent3"`
	Accent4  *colorValXML `xml:"accent4"`
	Accent5  *colorValXML `xml:"accent5"`
	Accent6  *colorValXML `xml:"accent6"`
	Hlink    *colorValXML `xml:"hlink"`
	FolHlink *colorValXML `xml:"folHlink"`
}

type colorValXML struct {
	SrgbClr *srgbClrXML `xml:"srgbClr"`
	SysClr  *sysClrXML  `xml:"sysClr"`
}

type srgbClrXML struct {
	Val string `xml:"val,attr"` // Literal RRGGBB hex
}

type sysClrXML struct {
	Val     string `xml:"val,attr"`     // Symbolic name, e.g. windowText
	LastClr string `xml:"lastClr,attr"` // Last-computed literal, may be absent
}

type fontSchemeXML struct {
	Name      string        `xml:"name,attr"`
	MajorFont *fontGroupXML `xml:"majorFont"`
	MinorFont *fontGroupXML `xml:"minorFont"`
}

type fontGroupXML struct {
	Latin *typefaceXML `xml:"latin"`
	Ea    *typefaceXML `xml:"ea"` // East Asian
	Cs    *typefaceXML `xml:"cs"` // Complex Script
}

type typefaceXML struct {
	Typeface string `xml:"typeface,attr"`
}

// relationshipsXML represents .rels files.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// corePropertiesXML represents docProps/core.xml.
type corePropertiesXML struct {
	XMLName xml.Name `xml:"coreProperties"`
	Title   string   `xml:"title"`
	Subject string   `xml:"subject"`
	Creator string   `xml:"creator"`
}

// appPropertiesXML represents docProps/app.xml.
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
	Slides      int      `xml:"Slides"`
}
