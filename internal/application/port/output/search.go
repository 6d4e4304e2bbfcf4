package output

import (
	"context"

	"venture-agent/internal/domain/entity"
)

// SearchPort wraps the web search/scrape service.
type SearchPort interface {
	// Search returns up to limit results with scraped markdown content.
	Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error)
	// Scrape fetches a single URL as markdown.
	Scrape(ctx context.Context, url string) (string, error)
}
