package probe

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/tsawler/deckprobe/pptx"
)

// fingerprintDocument digests everything the probe could conceivably have
// mutated: the on-disk content digest (fixed at open time, so any write-back
// would require reopening) and the in-memory structure — the full slide
// collection and every master's layout list. A transient slide leaked by a
// broken rollback changes this value.
func fingerprintDocument(doc *pptx.Document) string {
	h := sha256.New()

	io.WriteString(h, doc.ContentDigest())
	h.Write([]byte{0})

	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(doc.Slides)))
	h.Write(n[:])
	for _, s := range doc.Slides {
		io.WriteString(h, s.PartName)
		if s.Transient {
			io.WriteString(h, "+transient")
		}
		h.Write([]byte{0})
	}

	for _, m := range doc.Masters {
		io.WriteString(h, m.PartName)
		h.Write([]byte{0})
		for _, l := range m.Layouts {
			key, _ := l.StableKey()
			io.WriteString(h, key)
			h.Write([]byte{0})
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

// verifyIntegrity compares the fingerprints taken immediately after load and
// immediately before returning the result. A mismatch is an internal bug,
// tagged distinctly from user-facing errors, and aborts the run.
func verifyIntegrity(before, after string) error {
	if before == after {
		return nil
	}
	return &Error{
		Kind: KindIntegrityViolation,
		Err:  fmt.Errorf("document fingerprint changed during analysis (before=%s after=%s)", before[:12], after[:12]),
	}
}
