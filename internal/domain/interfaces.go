package domain

import "context"

// FindRequest is the body posted to the search backend.
type FindRequest struct {
	Criteria []string `json:"criteria"`
}

// Finder sends descriptor criteria to a search backend and returns the
// matching wine names in the order the backend produced them.
type Finder interface {
	Find(ctx context.Context, criteria []string) ([]string, error)
}

// SearchService defines the search operation exposed to the TUI and CLI.
type SearchService interface {
	Search(ctx context.Context, names []string) ([]string, error)
}
