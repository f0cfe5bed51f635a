package extract

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // register BMP decoder
	_ "image/gif"              // register GIF decoder
	_ "image/jpeg"             // register JPEG decoder
	_ "image/png"              // register PNG decoder
)

// readImageFile builds a descriptive text block for an image and mirrors the
// same fields into metadata. Decode problems are a partial-success path: the
// outer record keeps an empty Error, and the failure is captured inline.
//
// When no decoder is registered for the format (image.ErrFormat), the
// description degrades to extension-only with metadata {basic_info: true}.
func readImageFile(path, fileName string, sizeBytes int64) (string, map[string]any) {
	cfg, format, err := decodeImageConfig(path)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			content := fmt.Sprintf("Image file: %s\nFormat: %s\nBasic image processing (no decoder for this format)",
				fileName, strings.ToUpper(strings.TrimPrefix(filepath.Ext(fileName), ".")))
			return content, map[string]any{"basic_info": true}
		}
		content := fmt.Sprintf("Image file: %s (Error reading metadata: %v)", fileName, err)
		return content, map[string]any{"error": err.Error()}
	}

	mode := colorModeName(cfg.ColorModel)
	content := fmt.Sprintf("Image file: %s\nFormat: %s\nDimensions: %dx%d pixels\nColor mode: %s\nFile size: %d bytes",
		fileName, strings.ToUpper(format), cfg.Width, cfg.Height, mode, sizeBytes)
	metadata := map[string]any{
		"width":     cfg.Width,
		"height":    cfg.Height,
		"format":    strings.ToUpper(format),
		"mode":      mode,
		"file_size": sizeBytes,
	}
	return content, metadata
}

func decodeImageConfig(path string) (image.Config, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, "", err
	}
	defer f.Close()
	return image.DecodeConfig(f)
}

func colorModeName(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "Palette"
	}
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.NRGBAModel:
		return "NRGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.CMYKModel:
		return "CMYK"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "NYCbCrA"
	default:
		return "unknown"
	}
}
