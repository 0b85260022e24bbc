package pdf

import (
	"fmt"
	"image"
	"os"
	"strings"

	// Logo formats supported by both image.DecodeConfig and gofpdf.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// logoInfo holds a pre-validated logo image: its natural pixel dimensions
// and the image type name gofpdf expects.
type logoInfo struct {
	path      string
	width     float64
	height    float64
	imageType string
}

// probeLogo opens and decodes the image header at path. An unreadable or
// unsupported file returns an error; callers degrade to no-logo rendering.
func probeLogo(path string) (*logoInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening logo: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decoding logo %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("logo %s has empty dimensions", path)
	}

	var imageType string
	switch strings.ToLower(format) {
	case "png":
		imageType = "PNG"
	case "jpeg":
		imageType = "JPG"
	case "gif":
		imageType = "GIF"
	default:
		return nil, fmt.Errorf("unsupported logo format %q", format)
	}

	return &logoInfo{
		path:      path,
		width:     float64(cfg.Width),
		height:    float64(cfg.Height),
		imageType: imageType,
	}, nil
}
