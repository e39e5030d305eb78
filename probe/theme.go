package probe

import (
	"fmt"

	"github.com/tsawler/deckprobe/pptx"
)

// defaultFont substitutes for masters that declare no theme fonts at all.
const defaultFont = "Calibri"

// themeExtractor resolves color and font schemes per master. Its warning
// policy is deliberately asymmetric: a missing color scheme is reported per
// master (each missing master is individually informative, so the message
// names the master), while the scheme-reference and missing-font warnings
// fire at most once per run no matter how many masters are affected.
type themeExtractor struct {
	rec *recorder
}

// extract resolves one master's theme into the report shape.
func (te *themeExtractor) extract(m *pptx.Master) MasterTheme {
	mt := MasterTheme{
		MasterIndex: m.Index,
		Colors:      make(map[string]string),
		Fonts:       make(map[string]string),
	}

	te.extractColors(m, &mt)
	te.extractFonts(m, &mt)
	return mt
}

func (te *themeExtractor) extractColors(m *pptx.Master, mt *MasterTheme) {
	if m.Theme == nil || len(m.Theme.Colors) == 0 {
		te.rec.warn(WarnTheme,
			fmt.Sprintf("Theme color scheme unavailable or empty (master %d)", m.Index))
		return
	}

	for _, slot := range m.Theme.Colors {
		if slot.RGB != "" {
			mt.Colors[slot.Name] = slot.RGB
			continue
		}
		// Only a symbolic reference is available; return its name rather
		// than inventing an RGB value.
		mt.Colors[slot.Name] = slot.SchemeRef
		te.rec.warn(WarnTheme, msgSchemeRefColors)
	}
}

func (te *themeExtractor) extractFonts(m *pptx.Master, mt *MasterTheme) {
	var fonts pptx.FontGroup
	if m.Theme != nil {
		fonts = m.Theme.Minor // body fonts govern most content edits
	}

	effective := fonts.Latin
	if effective == "" {
		effective = fonts.EastAsian
	}
	if effective == "" {
		effective = fonts.ComplexScript
	}
	if effective == "" {
		effective = defaultFont
		te.rec.warn(WarnTheme, msgFontDefaults)
	}

	mt.Fonts["latin"] = fonts.Latin
	mt.Fonts["east_asian"] = fonts.EastAsian
	mt.Fonts["complex_script"] = fonts.ComplexScript
	mt.Fonts["effective"] = effective
}
