package probe

import (
	"bytes"
	"image"
	"log/slog"
	"path"
	"strings"

	"github.com/tsawler/deckprobe/pptx"

	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding

	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/tiff" // register TIFF decoding
)

// inspectMedia inventories the images a layout references: part name, MIME
// type from the extension, and pixel dimensions where the image header
// decodes. Decoding reads headers only and never modifies the container.
func inspectMedia(doc *pptx.Document, layout *pptx.Layout) []MediaInfo {
	if len(layout.Media) == 0 {
		return nil
	}

	media := make([]MediaInfo, 0, len(layout.Media))
	for _, ref := range layout.Media {
		info := MediaInfo{
			Part:     ref.PartName,
			MIMEType: mimeFromExt(path.Ext(ref.PartName)),
		}

		data, err := doc.Part(ref.PartName)
		if err != nil {
			slog.Debug("probe: media part unreadable", "part", ref.PartName, "error", err)
			media = append(media, info)
			continue
		}

		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			slog.Debug("probe: media dimensions unavailable", "part", ref.PartName, "error", err)
		} else {
			info.WidthPx = cfg.Width
			info.HeightPx = cfg.Height
		}
		media = append(media, info)
	}
	return media
}

// mimeFromExt maps common presentation media extensions to MIME types.
func mimeFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".emf":
		return "image/emf"
	case ".wmf":
		return "image/wmf"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
