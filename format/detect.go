// Package format provides presentation file format detection for the
// deckprobe library.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a recognized presentation file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PPTX indicates a Microsoft PowerPoint (.pptx) presentation.
	PPTX
	// PPTM indicates a macro-enabled PowerPoint (.pptm) presentation.
	PPTM
	// POTX indicates a PowerPoint template (.potx).
	POTX
	// PPSX indicates a PowerPoint slideshow (.ppsx).
	PPSX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PPTX:
		return "PPTX"
	case PPTM:
		return "PPTM"
	case POTX:
		return "POTX"
	case PPSX:
		return "PPSX"
	default:
		return "Unknown"
	}
}

// IsPresentation reports whether the format is a member of the PowerPoint
// ZIP family the probe can open.
func (f Format) IsPresentation() bool {
	return f != Unknown
}

// Detect determines file format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pptx":
		return PPTX
	case ".pptm":
		return PPTM
	case ".potx":
		return POTX
	case ".ppsx":
		return PPSX
	default:
		return Unknown
	}
}

// IsZipMagic checks the leading bytes for the ZIP local-file-header magic.
// All PowerPoint ZIP-family files start with it; anything else cannot be a
// modern presentation regardless of extension.
func IsZipMagic(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}
