package probe

import (
	"fmt"

	"github.com/tsawler/deckprobe/pptx"
)

// instantiator materializes transient slides one at a time. It is not
// reentrant: a second instantiation while one is outstanding is refused,
// since unwinding two interleaved structural edits cannot be done safely
// with captured indices.
type instantiator struct {
	doc    *pptx.Document
	active bool
}

// withTransientSlide materializes the layout into a slide, appends it to the
// document's slide collection, runs fn against it, and removes the slide
// again. The removal index is captured exactly once at insertion and never
// recomputed; removal happens on every exit path, including a panic inside
// fn. Nothing is ever written to storage.
func (in *instantiator) withTransientSlide(layout *pptx.Layout, fn func(*pptx.Slide)) error {
	if in.active {
		return fmt.Errorf("transient instantiation already in progress")
	}

	slide, err := layout.Materialize()
	if err != nil {
		// No slide was inserted, so there is nothing to roll back.
		return err
	}

	in.active = true
	idx := in.doc.InsertSlide(slide)
	defer func() {
		in.doc.RemoveSlideAt(idx)
		in.active = false
	}()

	fn(slide)
	return nil
}
