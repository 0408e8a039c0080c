package utils

import (
	"errors"
	"fmt"
)

// MaxUploadSize caps prescription images at 10 MB.
const MaxUploadSize = 10 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// ValidateUpload enforces the client-side upload policy server-side: JPEG or
// PNG only, at most 10 MB. Rejected files are never sent upstream.
func ValidateUpload(contentType string, size int64) error {
	if !allowedImageTypes[contentType] {
		return errors.New("invalid file type, please upload a JPG or PNG image")
	}
	if size > MaxUploadSize {
		return fmt.Errorf("file is too large, maximum size is %d MB", MaxUploadSize/(1024*1024))
	}
	if size == 0 {
		return errors.New("file is empty")
	}
	return nil
}
