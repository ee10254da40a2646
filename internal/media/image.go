package media

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cheflinkhq/chef-marketplace/internal/httperr"
)

// Accepted upload formats; everything else is refused outright.
var allowedTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ValidateImage checks the filename extension and the declared content
// type. Both must agree on an accepted image format.
func ValidateImage(filename, contentType string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	want, ok := allowedTypes[ext]
	if !ok {
		return httperr.ErrBusiness("unsupported_file_type")
	}
	if !strings.EqualFold(contentType, want) {
		return httperr.ErrBusiness("unsupported_file_type")
	}
	return nil
}

// StoredName generates the name an upload is stored under:
// <field>-<uuid><ext>, e.g. idproof-1f8b...c2.jpg.
func StoredName(field, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return field + "-" + uuid.NewString() + ext
}
