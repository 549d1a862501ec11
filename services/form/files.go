package form

import "fmt"

// Maximum accepted image size (10MB).
const MaxImageSize = 10 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// FileRejectionError reports a single rejected upload. Other files in the
// same batch are unaffected.
type FileRejectionError struct {
	Filename string
	Reason   string
}

func (e *FileRejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Filename, e.Reason)
}

// AcceptImage checks one uploaded file against the accepted types and the
// size cap.
func AcceptImage(filename, contentType string, size int64) error {
	if !allowedImageTypes[contentType] {
		return &FileRejectionError{
			Filename: filename,
			Reason:   "Only PNG, JPG, JPEG, and GIF files are allowed",
		}
	}
	if size > MaxImageSize {
		return &FileRejectionError{
			Filename: filename,
			Reason:   "Files must be smaller than 10MB",
		}
	}
	return nil
}
