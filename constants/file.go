package constants

import "strings"

// SupportedExtensions holds the file extensions the extractor can handle,
// keyed without the leading dot.
var SupportedExtensions = map[string]struct{}{
	"txt":  {},
	"pdf":  {},
	"docx": {},
	"csv":  {},
	"xlsx": {},
	"json": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"bmp":  {},
}

// ImageExtensions is the subset of SupportedExtensions that are raster images.
var ImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"bmp":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsImageExt reports whether ext (with or without leading dot) is an image type.
func IsImageExt(ext string) bool {
	_, ok := ImageExtensions[NormalizeExt(ext)]
	return ok
}
