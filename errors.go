package md2site

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrTemplateParse  = errors.New("page template parsing failed")
	ErrPageRender     = errors.New("page template rendering failed")
)
