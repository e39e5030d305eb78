package probe

import (
	"github.com/tsawler/deckprobe/pptx"
)

// geometryOf converts a placeholder frame to report geometry, normalizing
// against the slide dimensions. Nil in, nil out.
func geometryOf(frame *pptx.Rect, slideW, slideH int64) *Geometry {
	if frame == nil {
		return nil
	}
	g := &Geometry{
		XEMU:      frame.X,
		YEMU:      frame.Y,
		WidthEMU:  frame.Cx,
		HeightEMU: frame.Cy,
	}
	if slideW > 0 {
		g.XPct = float64(frame.X) / float64(slideW) * 100
		g.WidthPct = float64(frame.Cx) / float64(slideW) * 100
	}
	if slideH > 0 {
		g.YPct = float64(frame.Y) / float64(slideH) * 100
		g.HeightPct = float64(frame.Cy) / float64(slideH) * 100
	}
	return g
}

// detectDeclared analyzes a layout from its declared placeholder templates
// only. It never instantiates, so it always completes: capability flags come
// from the declared types and instantiated geometry is left absent.
func detectDeclared(layout *pptx.Layout, slideW, slideH int64) LayoutCapability {
	lc := newLayoutCapability(layout)
	lc.PlaceholderExpected = len(layout.Placeholders)
	lc.InstantiationComplete = true

	for _, ph := range layout.Placeholders {
		setCapabilityFlags(&lc, ph.Type)
		lc.Placeholders = append(lc.Placeholders, PlaceholderInfo{
			Type:     string(ph.Type),
			RawType:  ph.RawType,
			Name:     ph.Name,
			Template: geometryOf(ph.Frame, slideW, slideH),
		})
	}
	return lc
}

// detectInstantiated analyzes a layout against its materialized slide. Every
// slide placeholder with a resolved frame counts as instantiated and carries
// observed geometry in both raw EMUs and slide percentages. When fewer
// placeholders resolved than the layout declares, the missing ones fall back
// to their template geometry, are marked non-instantiated, and the template
// fallback warning is raised.
func detectInstantiated(layout *pptx.Layout, slide *pptx.Slide, slideW, slideH int64, rec *recorder) LayoutCapability {
	lc := newLayoutCapability(layout)
	lc.PlaceholderExpected = len(layout.Placeholders)

	for i, ph := range layout.Placeholders {
		info := PlaceholderInfo{
			Type:     string(ph.Type),
			RawType:  ph.RawType,
			Name:     ph.Name,
			Template: geometryOf(ph.Frame, slideW, slideH),
		}
		setCapabilityFlags(&lc, ph.Type)

		if i < len(slide.Placeholders) {
			if inst := slide.Placeholders[i]; inst.Frame != nil {
				info.Instantiated = true
				info.Actual = geometryOf(inst.Frame, slideW, slideH)
				lc.PlaceholderInstantiated++
			}
		}
		lc.Placeholders = append(lc.Placeholders, info)
	}

	lc.InstantiationComplete = lc.PlaceholderInstantiated == lc.PlaceholderExpected
	if !lc.InstantiationComplete {
		rec.warn(WarnInstantiation, msgTemplatePositions)
	}
	return lc
}

// detectFailed records a layout whose instantiation failed outright. The
// declared templates are all the probe has; they are reported
// non-instantiated with the fallback warning raised.
func detectFailed(layout *pptx.Layout, slideW, slideH int64, rec *recorder) LayoutCapability {
	lc := detectDeclared(layout, slideW, slideH)
	lc.PlaceholderInstantiated = 0
	lc.InstantiationComplete = false
	rec.warn(WarnInstantiation, msgTemplatePositions)
	return lc
}

func newLayoutCapability(layout *pptx.Layout) LayoutCapability {
	key, transient := layout.StableKey()
	return LayoutCapability{
		OriginalIndex:  layout.OriginalIndex,
		MasterIndex:    layout.MasterIndex,
		Name:           layout.Name,
		StableKey:      key,
		KeyIsTransient: transient,
		Placeholders:   make([]PlaceholderInfo, 0, len(layout.Placeholders)),
	}
}

func setCapabilityFlags(lc *LayoutCapability, t pptx.PlaceholderType) {
	switch t {
	case pptx.PlaceholderFooter:
		lc.HasFooter = true
	case pptx.PlaceholderSlideNumber:
		lc.HasSlideNumber = true
	case pptx.PlaceholderDate:
		lc.HasDate = true
	}
}
