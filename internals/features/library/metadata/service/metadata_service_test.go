package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perpustakaanku_backend/internals/constants"
)

func TestMapGenre(t *testing.T) {
	cases := []struct {
		name     string
		subjects []string
		want     string
	}{
		{"literature wins", []string{"Mexican literature", "Fiction"}, constants.GenreLiteratura},
		{"fiction", []string{"Fiction", "Novels"}, constants.GenreFiccion},
		{"science", []string{"Popular science"}, constants.GenreCiencia},
		{"history", []string{"History, Modern"}, constants.GenreHistoria},
		{"art", []string{"Art, Mexican"}, constants.GenreArte},
		{"spanish subject names", []string{"Historia de México"}, constants.GenreHistoria},
		{"case insensitive", []string{"SCIENCE"}, constants.GenreCiencia},
		{"no match defaults", []string{"Cooking", "Juvenile audience"}, constants.GenreLiteratura},
		{"empty defaults", nil, constants.GenreLiteratura},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapGenre(tc.subjects))
		})
	}
}

func TestCoverURL(t *testing.T) {
	assert.Nil(t, CoverURL(0))

	u := CoverURL(12345)
	require.NotNil(t, u)
	assert.Equal(t, "https://covers.openlibrary.org/b/id/12345-L.jpg", *u)
}

func TestFormatAuthor(t *testing.T) {
	assert.Equal(t, "Unknown Author", FormatAuthor(nil))
	assert.Equal(t, "Juan Rulfo", FormatAuthor([]string{"Juan Rulfo"}))
	assert.Equal(t, "Jorge Luis Borges, Adolfo Bioy Casares",
		FormatAuthor([]string{"Jorge Luis Borges", "Adolfo Bioy Casares"}))
}

func TestLookup_OpenLibraryHit(t *testing.T) {
	ol := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "9786071600004", r.URL.Query().Get("isbn"))
		w.Write([]byte(`{"docs":[{"title":"Pedro Páramo","author_name":["Juan Rulfo"],"subject":["Mexican literature"],"cover_i":42}]}`))
	}))
	defer ol.Close()

	svc := NewMetadataService()
	svc.OpenLibraryURL = ol.URL
	svc.FCEURL = "http://127.0.0.1:0" // must not be reached

	res, err := svc.Lookup(context.Background(), "9786071600004")
	require.NoError(t, err)
	assert.Equal(t, "Pedro Páramo", res.Title)
	assert.Equal(t, "Juan Rulfo", res.Author)
	assert.Equal(t, constants.GenreLiteratura, res.Genre)
	assert.Equal(t, "openlibrary", res.Source)
	require.NotNil(t, res.CoverURL)
	assert.Equal(t, "https://covers.openlibrary.org/b/id/42-L.jpg", *res.CoverURL)
}

func TestLookup_FallsBackToFCE(t *testing.T) {
	ol := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"docs":[]}`))
	}))
	defer ol.Close()

	fce := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "isbn", r.URL.Query().Get("tipobusqueda"))
		w.Write([]byte(`{"titulo":"El laberinto de la soledad","autor":"Octavio Paz","temas":["Historia"],"imagen":"https://example.test/cover.jpg"}`))
	}))
	defer fce.Close()

	svc := NewMetadataService()
	svc.OpenLibraryURL = ol.URL
	svc.FCEURL = fce.URL

	res, err := svc.Lookup(context.Background(), "9786071600004")
	require.NoError(t, err)
	assert.Equal(t, "El laberinto de la soledad", res.Title)
	assert.Equal(t, "Octavio Paz", res.Author)
	assert.Equal(t, constants.GenreHistoria, res.Genre)
	assert.Equal(t, "fce", res.Source)
	require.NotNil(t, res.CoverURL)
	assert.Equal(t, "https://example.test/cover.jpg", *res.CoverURL)
}

func TestLookup_NotFoundAnywhere(t *testing.T) {
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer empty.Close()

	svc := NewMetadataService()
	svc.OpenLibraryURL = empty.URL
	svc.FCEURL = empty.URL

	_, err := svc.Lookup(context.Background(), "0000000000")
	assert.ErrorIs(t, err, ErrMetadataNotFound)
}
