package service

import (
	"bytes"
	"encoding/base64"
	"image"

	// Register decoders for dimension sniffing.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/0xzahra/gmn/internal/domain"
)

// InspectImage derives metadata from an uploaded data-URL payload.
// Undecodable payloads still report their byte length; dimensions and
// format stay zero-valued.
// Parameters:
//   - dataURL: base64 data URL (or bare base64).
// Returns:
//   - *domain.ImageMeta: metadata; nil for an empty payload.
func InspectImage(dataURL string) *domain.ImageMeta {
	if dataURL == "" {
		return nil
	}

	_, b64 := splitDataURL(dataURL)
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return &domain.ImageMeta{ByteLen: len(dataURL)}
	}

	meta := &domain.ImageMeta{ByteLen: len(raw)}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return meta
	}
	meta.Width = cfg.Width
	meta.Height = cfg.Height
	meta.Format = format
	return meta
}
