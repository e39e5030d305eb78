// Package probe implements a non-mutating capability analysis of a PPTX
// presentation: which layouts support footer, slide-number, and date
// placeholders, what color and font schemes each master declares, and the
// geometry placeholders actually occupy once a layout is materialized into
// a slide.
//
// The probe never persists anything. In deep mode it appends a transient
// slide to the in-memory slide collection, observes the inherited
// placeholder geometry, and removes the slide again on every exit path. A
// before/after fingerprint of the document proves the non-mutation contract
// on every run.
//
// Two modes are supported:
//
//   - Essential: declaration-only. Never instantiates, always completes,
//     instantiated geometry is absent from the report.
//   - Deep: ground-truth geometry via transient instantiation, bounded by a
//     wall-clock timeout and a layout cap, may return partial results.
package probe
