package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/markdown"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrInvalidEngine    = errors.New("invalid engine")
	ErrInvalidBasePath  = errors.New("invalid base path")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrNoTitle          = errors.New("page has no title")
	ErrPoolClosed       = errors.New("converter pool is closed")

	// Errors raised by internal stages, re-exported for errors.Is.
	ErrHTMLConversion        = pipeline.ErrHTMLConversion
	ErrInvalidTemplate       = pipeline.ErrInvalidTemplate
	ErrUnterminatedDelimiter = markdown.ErrUnterminatedDelimiter
	ErrTemplateNotFound      = assets.ErrTemplateNotFound
)
