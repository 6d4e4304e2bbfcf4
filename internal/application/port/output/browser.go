package output

import (
	"context"

	"venture-agent/internal/domain/entity"
)

type BrowserPort interface {
	Navigate(ctx context.Context, url string) error
	Click(ctx context.Context, selector string) error
	Fill(ctx context.Context, selector, text string) error
	SelectOption(ctx context.Context, selector, value string) error
	UploadFiles(ctx context.Context, selector string, paths []string) error

	GetPageContent(ctx context.Context) (*entity.PageContent, error)
	Screenshot(ctx context.Context) (*entity.Screenshot, error)

	CurrentURL() string
	Close()
}
