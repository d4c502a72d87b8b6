package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"ggenius-website/internal/assets"
	"ggenius-website/internal/domain"
	"ggenius-website/pkg/apperror"
	"ggenius-website/pkg/logger"
)

const (
	htmlContentType    = "text/html; charset=utf-8"
	staticCacheControl = "public, max-age=3600"
)

// pageSource tries to produce the landing page. found is false when the
// source has nothing to offer and the next one should be tried.
type pageSource func() (page *domain.Page, found bool, err error)

type pageUsecase struct {
	templatesDir string
	staticDir    string
	site         domain.SiteConfig
	fallback     []byte
}

// NewPageUsecase resolves the landing page from templatesDir/index.html,
// then staticDir/index.html, then the embedded fallback page.
func NewPageUsecase(templatesDir, staticDir string, site domain.SiteConfig) domain.PageUsecase {
	return &pageUsecase{
		templatesDir: templatesDir,
		staticDir:    staticDir,
		site:         site,
		fallback:     assets.FallbackPage,
	}
}

func (uc *pageUsecase) Resolve(ctx context.Context) (*domain.Page, error) {
	sources := []pageSource{
		uc.fromTemplate,
		uc.fromStatic,
		uc.generated,
	}

	for _, source := range sources {
		page, found, err := source()
		if err != nil {
			return nil, apperror.Resolution(fmt.Errorf("%w: %w", domain.ErrPageResolution, err))
		}
		if found {
			logger.Log.DebugContext(ctx, "Landing page resolved", "source", page.Source)
			return page, nil
		}
	}

	// generated always reports found.
	return nil, apperror.Resolution(domain.ErrPageResolution)
}

func (uc *pageUsecase) fromTemplate() (*domain.Page, bool, error) {
	path := filepath.Join(uc.templatesDir, domain.IndexFileName)
	ok, err := fileExists(path)
	if err != nil || !ok {
		return nil, false, err
	}

	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, false, fmt.Errorf("parse template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, uc.site); err != nil {
		return nil, false, fmt.Errorf("render template %s: %w", path, err)
	}

	return &domain.Page{
		Source:      domain.PageSourceTemplate,
		Body:        buf.Bytes(),
		ContentType: htmlContentType,
	}, true, nil
}

func (uc *pageUsecase) fromStatic() (*domain.Page, bool, error) {
	path := filepath.Join(uc.staticDir, domain.IndexFileName)
	ok, err := fileExists(path)
	if err != nil || !ok {
		return nil, false, err
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read static page %s: %w", path, err)
	}

	return &domain.Page{
		Source:      domain.PageSourceStatic,
		Body:        body,
		ContentType: htmlContentType,
		Headers: map[string]string{
			"Cache-Control":          staticCacheControl,
			"X-Content-Type-Options": "nosniff",
		},
	}, true, nil
}

func (uc *pageUsecase) generated() (*domain.Page, bool, error) {
	return &domain.Page{
		Source:      domain.PageSourceFallback,
		Body:        uc.fallback,
		ContentType: htmlContentType,
	}, true, nil
}

// fileExists reports whether path is an existing regular file. Errors other
// than "does not exist" are returned.
func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return !info.IsDir(), nil
}

// dirExists reports whether path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
