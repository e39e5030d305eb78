package probe

import "github.com/tsawler/deckprobe/pptx"

// masterSnapshot is an immutable view of one master and its layout list,
// taken before any instantiation begins. Indices are assigned purely from
// snapshot position, so later structural edits to the document cannot shift
// what the probe reports.
type masterSnapshot struct {
	master  *pptx.Master
	layouts []*pptx.Layout
}

// enumerateMasters snapshots the document's masters and their layouts. An
// empty result is the NoMastersFound condition; callers treat it as
// non-fatal.
func enumerateMasters(doc *pptx.Document) []masterSnapshot {
	snaps := make([]masterSnapshot, 0, len(doc.Masters))
	for _, m := range doc.Masters {
		layouts := make([]*pptx.Layout, len(m.Layouts))
		copy(layouts, m.Layouts)
		snaps = append(snaps, masterSnapshot{master: m, layouts: layouts})
	}
	return snaps
}

// totalLayouts counts the layouts across all snapshots.
func totalLayouts(snaps []masterSnapshot) int {
	n := 0
	for _, s := range snaps {
		n += len(s.layouts)
	}
	return n
}
