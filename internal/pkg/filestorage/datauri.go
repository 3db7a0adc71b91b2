package filestorage

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/bimt/campushub/internal/pkg/apperrors"
)

// IsDataURI reports whether a string carries a raw base64 payload rather than
// an already-durable reference.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// decodeDataURI splits a "data:<mime>;base64,<payload>" string into its
// decoded bytes and declared MIME type.
func decodeDataURI(dataURI string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return nil, "", apperrors.ErrInvalidDataURI
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", apperrors.ErrInvalidDataURI
	}

	mimeType, enc, _ := strings.Cut(meta, ";")
	if enc != "base64" {
		return nil, "", fmt.Errorf("%w: unsupported encoding %q", apperrors.ErrInvalidDataURI, enc)
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrInvalidDataURI, err)
	}

	return decoded, mimeType, nil
}

// extForMIME maps the MIME types the portal accepts to a file extension.
// Unknown types are stored without an extension.
func extForMIME(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
