package filestorage

import (
	"mime/multipart"

	"github.com/bimt/campushub/internal/pkg/logger"
)

// Staging tracks objects uploaded during one logical request so that a
// failure later in the request can remove everything already stored instead
// of leaving orphans. Commit keeps the objects; Discard removes them.
// A Staging is single-use and not safe for concurrent use.
type Staging struct {
	storage Storage
	saved   []string
}

// NewStaging wraps a Storage with per-request orphan tracking.
func NewStaging(storage Storage) *Staging {
	return &Staging{storage: storage}
}

// Resolve returns raw unchanged when it is already a durable reference,
// otherwise uploads the payload under folder and tracks the stored object.
func (s *Staging) Resolve(raw, folder string) (string, error) {
	if raw == "" || !IsDataURI(raw) {
		return raw, nil
	}

	ref, err := s.storage.SaveDataURI(raw, folder)
	if err != nil {
		return "", err
	}
	s.saved = append(s.saved, ref)
	return ref, nil
}

// ResolveAll resolves every entry of a reference slice in place order.
func (s *Staging) ResolveAll(raws []string, folder string) ([]string, error) {
	if len(raws) == 0 {
		return raws, nil
	}

	resolved := make([]string, 0, len(raws))
	for _, raw := range raws {
		ref, err := s.Resolve(raw, folder)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, ref)
	}
	return resolved, nil
}

// SaveFile stores a multipart upload and tracks it.
func (s *Staging) SaveFile(fileHeader *multipart.FileHeader, folder string) (string, error) {
	ref, err := s.storage.SaveFile(fileHeader, folder)
	if err != nil {
		return "", err
	}
	if ref != "" {
		s.saved = append(s.saved, ref)
	}
	return ref, nil
}

// Commit keeps all staged objects.
func (s *Staging) Commit() {
	s.saved = nil
}

// Discard removes every staged object. Removal is best-effort; failures are
// logged and do not surface to the caller, who is already handling an error.
func (s *Staging) Discard() {
	for _, ref := range s.saved {
		if err := s.storage.Delete(ref); err != nil {
			logger.Warn().Err(err).Str("object", ref).Msg("Failed to remove staged object")
		}
	}
	s.saved = nil
}
