package domain

import "context"

// PageSource identifies which tier of the fallback chain produced a page.
type PageSource string

const (
	PageSourceTemplate PageSource = "template"
	PageSourceStatic   PageSource = "static"
	PageSourceFallback PageSource = "fallback"
)

const IndexFileName = "index.html"

// Page is the transient result of resolving the landing page.
type Page struct {
	Source      PageSource
	Body        []byte
	ContentType string
	Headers     map[string]string
}

// PageUsecase resolves the landing page.
type PageUsecase interface {
	Resolve(ctx context.Context) (*Page, error)
}
