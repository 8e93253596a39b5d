package entity

import (
	"path"
	"strings"
)

// imageContentTypes are the file types the gallery accepts, by lower-case extension.
var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Image is a file queued for upload to the gallery.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImageContentType returns the content type implied by the extension of name,
// and false when the gallery does not accept that extension.
func ImageContentType(name string) (string, bool) {
	ct, ok := imageContentTypes[strings.ToLower(path.Ext(name))]

	return ct, ok
}

// IsImageFile reports whether name carries an accepted image extension.
func IsImageFile(name string) bool {
	_, ok := ImageContentType(name)

	return ok
}
