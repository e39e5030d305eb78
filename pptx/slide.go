package pptx

import (
	"fmt"
	"log/slog"
)

// Materialize builds a slide instance from the layout, resolving the
// geometry each placeholder would actually occupy. A placeholder that
// declares no frame of its own inherits one from the master's matching
// placeholder: first by idx, then by classified type. The returned slide is
// not attached to any document; callers append and remove it themselves.
func (l *Layout) Materialize() (*Slide, error) {
	if l.parseErr != nil {
		return nil, fmt.Errorf("materializing layout %d: %w", l.OriginalIndex, l.parseErr)
	}

	s := &Slide{
		LayoutPart:   l.PartName,
		Transient:    true,
		Placeholders: make([]*Placeholder, 0, len(l.Placeholders)),
	}

	for _, ph := range l.Placeholders {
		inst := ph.clone()
		if inst.Frame == nil && l.master != nil {
			if src := matchMasterPlaceholder(l.master, ph); src != nil && src.Frame != nil {
				f := *src.Frame
				inst.Frame = &f
			} else {
				slog.Debug("pptx: placeholder has no resolvable frame",
					"layout", l.PartName, "type", ph.RawType, "idx", ph.Idx)
			}
		}
		s.Placeholders = append(s.Placeholders, inst)
	}

	return s, nil
}

// matchMasterPlaceholder finds the master placeholder a layout placeholder
// inherits from. Idx match wins over type match; body-family placeholders
// fall back to the master's body placeholder.
func matchMasterPlaceholder(m *Master, ph *Placeholder) *Placeholder {
	if ph.Idx != "" {
		for _, mp := range m.Placeholders {
			if mp.Idx == ph.Idx {
				return mp
			}
		}
	}
	for _, mp := range m.Placeholders {
		if mp.Type == ph.Type {
			return mp
		}
	}
	return nil
}
