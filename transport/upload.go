package transport

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// saveUpload stores an optional image field from a multipart form and
// returns its URL path. Missing file is not an error; non-image content
// types and oversized files are rejected before anything is written.
func (s *RestHandler) saveUpload(r *http.Request, field, subdir string) (string, error) {
	if err := r.ParseMultipartForm(s.cfg.Upload.MaxSizeBytes); err != nil {
		return "", errors.SetCustomError(constant.ErrInvalidRequest)
	}

	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", errors.SetCustomError(constant.ErrInvalidRequest)
	}
	defer file.Close()

	if header.Size > s.cfg.Upload.MaxSizeBytes {
		return "", errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		return "", errors.SetCustomError(constant.ErrInvalidRequest)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	return s.fileStore.Save(subdir, name, file)
}
