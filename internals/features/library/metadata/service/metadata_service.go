// internals/features/library/metadata/service/metadata_service.go
package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	dto "perpustakaanku_backend/internals/features/library/metadata/dto"
)

var ErrMetadataNotFound = errors.New("no metadata found for this ISBN")

// MetadataService resolves an ISBN against external catalogs. The
// fallback is an ordered try-list: Open Library first, then FCE; no
// merging or ranking between sources.
type MetadataService struct {
	HTTP           *http.Client
	OpenLibraryURL string
	FCEURL         string
}

func NewMetadataService() *MetadataService {
	return &MetadataService{
		HTTP:           &http.Client{Timeout: 8 * time.Second},
		OpenLibraryURL: OpenLibraryAPIURL,
		FCEURL:         FCEBaseURL,
	}
}

func (s *MetadataService) Lookup(ctx context.Context, isbn string) (*dto.LookupResult, error) {
	if res, err := s.searchOpenLibrary(ctx, isbn); err == nil {
		return res, nil
	}
	if res, err := s.searchFCE(ctx, isbn); err == nil {
		return res, nil
	}
	return nil, ErrMetadataNotFound
}
