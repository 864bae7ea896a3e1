// internals/features/library/metadata/dto/metadata_dto.go
package dto

// LookupResult is what the catalog lookup hands the UI when an ISBN
// resolves: enough to prefill the add-book form.
type LookupResult struct {
	ISBN     string   `json:"isbn"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subjects []string `json:"subjects,omitempty"`
	CoverURL *string  `json:"cover_url,omitempty"`
	Genre    string   `json:"genre"`
	Source   string   `json:"source"`
}
