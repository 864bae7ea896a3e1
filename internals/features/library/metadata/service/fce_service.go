// internals/features/library/metadata/service/fce_service.go
package service

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"

	dto "perpustakaanku_backend/internals/features/library/metadata/dto"
)

// Fondo de Cultura Económica — second source in the fallback chain.
const FCEBaseURL = "https://www.fondodeculturaeconomica.com"

type fceBook struct {
	Titulo string   `json:"titulo"`
	Autor  string   `json:"autor"`
	Temas  []string `json:"temas"`
	Imagen string   `json:"imagen"`
}

func (s *MetadataService) searchFCE(ctx context.Context, isbn string) (*dto.LookupResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.FCEURL+"/busqueda/listar.php?tipobusqueda=isbn&texto="+url.QueryEscape(isbn), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrMetadataNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var data fceBook
	if err := sonic.Unmarshal(body, &data); err != nil {
		// the endpoint serves HTML when it has no structured answer
		return nil, ErrMetadataNotFound
	}
	if strings.TrimSpace(data.Titulo) == "" {
		return nil, ErrMetadataNotFound
	}

	out := &dto.LookupResult{
		ISBN:     isbn,
		Title:    data.Titulo,
		Author:   data.Autor,
		Subjects: data.Temas,
		Genre:    MapGenre(data.Temas),
		Source:   "fce",
	}
	if strings.TrimSpace(data.Imagen) != "" {
		img := data.Imagen
		out.CoverURL = &img
	}
	if out.Author == "" {
		out.Author = "Unknown Author"
	}
	return out, nil
}
