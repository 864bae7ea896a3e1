// internals/features/library/metadata/service/openlibrary_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"

	"perpustakaanku_backend/internals/constants"
	dto "perpustakaanku_backend/internals/features/library/metadata/dto"
)

const (
	OpenLibraryAPIURL  = "https://openlibrary.org/search.json"
	openLibraryCoverFm = "https://covers.openlibrary.org/b/id/%d-L.jpg"
)

type openLibraryResponse struct {
	Docs []openLibraryDoc `json:"docs"`
}

type openLibraryDoc struct {
	Title      string   `json:"title"`
	AuthorName []string `json:"author_name"`
	Subject    []string `json:"subject"`
	CoverID    int      `json:"cover_i"`
}

func (s *MetadataService) searchOpenLibrary(ctx context.Context, isbn string) (*dto.LookupResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.OpenLibraryURL+"?isbn="+url.QueryEscape(isbn), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open library: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var data openLibraryResponse
	if err := sonic.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	if len(data.Docs) == 0 {
		return nil, ErrMetadataNotFound
	}

	doc := data.Docs[0]
	out := &dto.LookupResult{
		ISBN:     isbn,
		Title:    doc.Title,
		Author:   FormatAuthor(doc.AuthorName),
		Subjects: doc.Subject,
		CoverURL: CoverURL(doc.CoverID),
		Genre:    MapGenre(doc.Subject),
		Source:   "openlibrary",
	}
	return out, nil
}

// MapGenre folds free-form catalog subjects into the five internal
// genres; unmatched subjects default to literatura.
func MapGenre(subjects []string) string {
	has := func(terms ...string) bool {
		for _, s := range subjects {
			ls := strings.ToLower(s)
			for _, t := range terms {
				if strings.Contains(ls, t) {
					return true
				}
			}
		}
		return false
	}

	switch {
	case has("literature", "literatura"):
		return constants.GenreLiteratura
	case has("fiction", "ficción"):
		return constants.GenreFiccion
	case has("science", "ciencia"):
		return constants.GenreCiencia
	case has("history", "historia"):
		return constants.GenreHistoria
	case has("art", "arte"):
		return constants.GenreArte
	default:
		return constants.GenreLiteratura
	}
}

// CoverURL builds the large-cover URL for an Open Library cover id.
func CoverURL(coverID int) *string {
	if coverID == 0 {
		return nil
	}
	u := fmt.Sprintf(openLibraryCoverFm, coverID)
	return &u
}

func FormatAuthor(authors []string) string {
	if len(authors) == 0 {
		return "Unknown Author"
	}
	return strings.Join(authors, ", ")
}
